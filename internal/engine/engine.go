package engine

import (
	"math"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// Engine validates and executes buy orders against an account and the
// pricing catalog. All dependencies are passed in at construction; the
// engine holds no state of its own.
type Engine struct {
	accounts    *store.AccountStore
	instruments *store.InstrumentStore
	ledger      *store.Ledger
}

// NewEngine creates an Engine backed by the given stores.
func NewEngine(accounts *store.AccountStore, instruments *store.InstrumentStore, ledger *store.Ledger) *Engine {
	return &Engine{
		accounts:    accounts,
		instruments: instruments,
		ledger:      ledger,
	}
}

// ExecuteBuy executes a buy of quantity units of the instrument for the
// account, debiting quantity*price from the account's cash and appending
// the transaction as one atomic unit.
//
// The instrument price is sampled once, when the order is validated, and
// that same value is used for the affordability check and the committed
// debit. A catalog price update arriving between validation and commit
// affects only later orders; the recorded execution price and the debit
// always agree.
//
// Failure modes, all mutation-free: ValidationError for non-positive
// quantity, domain.ErrAccountNotFound / domain.ErrInstrumentNotFound for
// unresolvable IDs, domain.ErrInsufficientFunds when cash cannot cover
// the cost.
func (e *Engine) ExecuteBuy(accountID, instrumentID string, quantity int64) (*domain.Transaction, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Message: "quantity must be a positive integer"}
	}

	acct, err := e.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}

	ins, err := e.instruments.Get(instrumentID)
	if err != nil {
		return nil, err
	}
	price := ins.Price

	// A cost that would wrap past MaxInt64 cannot be covered by any
	// balance; reject before multiplying.
	if quantity > math.MaxInt64/price {
		return nil, domain.ErrInsufficientFunds
	}

	// Validate affordability against the sampled price. Append re-checks
	// under the account lock with the same price, so a concurrent buy
	// that drains the balance between here and the commit still fails
	// cleanly instead of overdrawing.
	cost := quantity * price
	acct.Mu.Lock()
	affordable := acct.CashBalance >= cost
	acct.Mu.Unlock()
	if !affordable {
		return nil, domain.ErrInsufficientFunds
	}

	return e.ledger.Append(acct, ins.InstrumentID, quantity, price)
}
