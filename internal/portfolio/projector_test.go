package portfolio

import (
	"testing"
	"time"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

func newTestProjector(t *testing.T) (*Projector, *domain.Account, *store.Ledger) {
	t.Helper()
	accounts := store.NewAccountStore()

	instruments := store.NewInstrumentStore()
	for _, ins := range []*domain.Instrument{
		{InstrumentID: "ins-aapl", Ticker: "AAPL", Name: "Apple", Sector: "Tech", Price: 15000},
		{InstrumentID: "ins-tsla", Ticker: "TSLA", Name: "Tesla", Sector: "Auto", Price: 70000},
	} {
		if err := instruments.Add(ins); err != nil {
			t.Fatalf("add instrument: %v", err)
		}
	}
	ledger := store.NewLedger(instruments)

	acct := &domain.Account{
		AccountID:   "acct-1",
		Handle:      "alice",
		CashBalance: 10_000_000,
		CreatedAt:   time.Now(),
	}
	if err := accounts.Create(acct); err != nil {
		t.Fatalf("create account: %v", err)
	}

	return NewProjector(accounts, ledger), acct, ledger
}

func TestHoldings_AccumulatesSameInstrument(t *testing.T) {
	p, acct, ledger := newTestProjector(t)

	// Buy 10 then 5 shares of the same instrument.
	if _, err := ledger.Append(acct, "ins-aapl", 10, 15000); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := ledger.Append(acct, "ins-aapl", 5, 16000); err != nil {
		t.Fatalf("append: %v", err)
	}

	holdings, err := p.Holdings("acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos, ok := holdings["ins-aapl"]
	if !ok {
		t.Fatal("expected a position in ins-aapl")
	}
	if pos.Quantity != 15 {
		t.Errorf("got quantity %d, want 15", pos.Quantity)
	}
	// Cost basis is the sum of the two execution costs.
	if want := int64(10*15000 + 5*16000); pos.CostBasis != want {
		t.Errorf("got cost basis %d, want %d", pos.CostBasis, want)
	}
}

func TestHoldings_MultipleInstruments(t *testing.T) {
	p, acct, ledger := newTestProjector(t)

	if _, err := ledger.Append(acct, "ins-aapl", 10, 15000); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := ledger.Append(acct, "ins-tsla", 2, 70000); err != nil {
		t.Fatalf("append: %v", err)
	}

	holdings, err := p.Holdings("acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(holdings) != 2 {
		t.Fatalf("got %d positions, want 2", len(holdings))
	}
	if holdings["ins-aapl"].Quantity != 10 || holdings["ins-tsla"].Quantity != 2 {
		t.Errorf("unexpected holdings: %+v", holdings)
	}
}

func TestHoldings_EmptyForNewAccount(t *testing.T) {
	p, _, _ := newTestProjector(t)

	holdings, err := p.Holdings("acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(holdings) != 0 {
		t.Fatalf("expected empty holdings, got %+v", holdings)
	}
}

func TestHoldings_AccountNotFound(t *testing.T) {
	p, _, _ := newTestProjector(t)

	if _, err := p.Holdings("no-such-account"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestTransactions_ExecutionOrder(t *testing.T) {
	p, acct, ledger := newTestProjector(t)

	first, _ := ledger.Append(acct, "ins-aapl", 1, 100)
	second, _ := ledger.Append(acct, "ins-tsla", 2, 200)
	third, _ := ledger.Append(acct, "ins-aapl", 3, 300)

	txs, err := p.Transactions("acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}

	want := []string{first.TransactionID, second.TransactionID, third.TransactionID}
	for i, tx := range txs {
		if tx.TransactionID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, tx.TransactionID, want[i])
		}
	}
}

func TestTransactions_AccountNotFound(t *testing.T) {
	p, _, _ := newTestProjector(t)

	if _, err := p.Transactions("no-such-account"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
