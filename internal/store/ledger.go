package store

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/efreitasn/papertrade/internal/domain"
)

// Ledger is the append-only transaction record, keyed by account_id.
// Transactions are immutable once committed and are the sole source of
// truth for holdings: every cash debit on an account happens inside
// Append, paired with the transaction that explains it. The ledger
// holds the pricing catalog so that a transaction can never reference
// an instrument the catalog doesn't list.
type Ledger struct {
	instruments *InstrumentStore

	mu        sync.Mutex
	byAccount map[string][]*domain.Transaction
	lastAt    time.Time // floor for the next timestamp, non-decreasing
}

// NewLedger creates an empty Ledger whose transactions must reference
// instruments listed in the given catalog.
func NewLedger(instruments *InstrumentStore) *Ledger {
	return &Ledger{
		instruments: instruments,
		byAccount:   make(map[string][]*domain.Transaction),
	}
}

// Append executes the commit half of a buy: under the account's lock it
// re-reads the current cash balance, re-validates affordability against
// the price the caller validated with (never a fresher quote), debits
// quantity*price, and inserts the transaction. Either the debit and the
// insert both happen or neither does.
//
// The instrument must exist in the catalog; otherwise Append returns
// domain.ErrInstrumentNotFound, so orphan transactions cannot be
// created through the store API.
//
// Returns domain.ErrInsufficientFunds if a concurrent commit spent the
// cash between the caller's validation and this call. The account's
// lock is acquired before the ledger's, and the ledger never locks an
// account itself, so appends to different accounts do not contend.
func (l *Ledger) Append(acct *domain.Account, instrumentID string, quantity, price int64) (*domain.Transaction, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Message: "quantity must be a positive integer"}
	}
	if price <= 0 {
		return nil, &domain.ValidationError{Message: "price must be greater than 0"}
	}
	if !l.instruments.Exists(instrumentID) {
		return nil, domain.ErrInstrumentNotFound
	}

	// An order whose cost would wrap past MaxInt64 is unaffordable by
	// definition; reject before multiplying.
	if quantity > math.MaxInt64/price {
		return nil, domain.ErrInsufficientFunds
	}

	acct.Mu.Lock()
	defer acct.Mu.Unlock()

	cost := quantity * price
	if acct.CashBalance < cost {
		return nil, domain.ErrInsufficientFunds
	}
	acct.CashBalance -= cost

	l.mu.Lock()
	executedAt := time.Now()
	if executedAt.Before(l.lastAt) {
		executedAt = l.lastAt
	}
	l.lastAt = executedAt

	tx := &domain.Transaction{
		TransactionID: uuid.New().String(),
		AccountID:     acct.AccountID,
		InstrumentID:  instrumentID,
		Quantity:      quantity,
		Price:         price,
		ExecutedAt:    executedAt,
	}
	l.byAccount[acct.AccountID] = append(l.byAccount[acct.AccountID], tx)
	l.mu.Unlock()

	return tx, nil
}

// ByAccount returns the account's transactions in execution order.
// Returns an empty slice for accounts with no transactions.
func (l *Ledger) ByAccount(accountID string) []*domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	txs := l.byAccount[accountID]

	// Return a copy to avoid callers observing later appends.
	result := make([]*domain.Transaction, len(txs))
	copy(result, txs)
	return result
}
