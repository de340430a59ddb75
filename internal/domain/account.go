package domain

import (
	"sync"
	"time"
)

// Account represents a registered participant holding a cash balance.
// All cash mutations go through the ledger while Mu is held, so the
// balance and the account's transaction history always agree.
type Account struct {
	AccountID   string
	Handle      string
	Email       string // optional, unique when non-empty
	CashBalance int64  // cents, never negative
	CreatedAt   time.Time
	Mu          sync.Mutex // per-account lock for balance mutations
}
