package domain

// Position represents an account's holding in a single instrument,
// derived by folding the account's transaction history.
type Position struct {
	Quantity  int64
	CostBasis int64 // cents, sum of execution costs
}
