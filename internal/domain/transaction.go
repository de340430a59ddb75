package domain

import "time"

// Transaction is an immutable record of one executed buy. The price is
// the quote the order was validated against, fixed at execution time and
// never re-read from the catalog.
type Transaction struct {
	TransactionID string
	AccountID     string
	InstrumentID  string
	Quantity      int64 // always positive
	Price         int64 // cents, execution price
	ExecutedAt    time.Time
}

// Cost returns the total cash debited by this transaction in cents.
func (t *Transaction) Cost() int64 {
	return t.Quantity * t.Price
}
