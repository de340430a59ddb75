// Package portfolio derives holdings from the transaction ledger.
package portfolio

import (
	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// Projector answers "what does this account hold" by folding the
// account's transaction history. It keeps no derived state: holdings are
// recomputed on every call, which is cheap because the ledger is small
// and append-only.
type Projector struct {
	accounts *store.AccountStore
	ledger   *store.Ledger
}

// NewProjector creates a Projector over the given stores.
func NewProjector(accounts *store.AccountStore, ledger *store.Ledger) *Projector {
	return &Projector{
		accounts: accounts,
		ledger:   ledger,
	}
}

// Holdings returns the account's current positions keyed by instrument
// ID, folding transactions in execution order. Each position carries the
// net quantity and the total cost basis (sum of execution costs). It
// returns domain.ErrAccountNotFound if the account does not exist.
func (p *Projector) Holdings(accountID string) (map[string]domain.Position, error) {
	if !p.accounts.Exists(accountID) {
		return nil, domain.ErrAccountNotFound
	}

	positions := make(map[string]domain.Position)
	for _, tx := range p.ledger.ByAccount(accountID) {
		pos := positions[tx.InstrumentID]
		pos.Quantity += tx.Quantity
		pos.CostBasis += tx.Cost()
		positions[tx.InstrumentID] = pos
	}
	return positions, nil
}

// Transactions returns the account's full transaction history in
// execution order. It returns domain.ErrAccountNotFound if the account
// does not exist.
func (p *Projector) Transactions(accountID string) ([]*domain.Transaction, error) {
	if !p.accounts.Exists(accountID) {
		return nil, domain.ErrAccountNotFound
	}
	return p.ledger.ByAccount(accountID), nil
}
