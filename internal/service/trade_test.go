package service

import (
	"errors"
	"testing"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/engine"
	"github.com/efreitasn/papertrade/internal/store"
)

// tradeFixture wires the trade service to real stores for seeding.
type tradeFixture struct {
	svc         *TradeService
	accounts    *store.AccountStore
	instruments *store.InstrumentStore
	acct        *domain.Account
}

func newTradeFixture(t *testing.T) *tradeFixture {
	t.Helper()
	accounts := store.NewAccountStore()
	instruments := store.NewInstrumentStore()
	ledger := store.NewLedger(instruments)
	eng := engine.NewEngine(accounts, instruments, ledger)

	acctSvc := NewAccountService(accounts, 1000000)
	acct, err := acctSvc.Register(RegisterAccountRequest{Handle: "alice"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = instruments.Add(&domain.Instrument{
		InstrumentID: "ins-aapl",
		Ticker:       "AAPL",
		Name:         "Apple Inc.",
		Sector:       "Tech",
		Price:        15000,
	})
	if err != nil {
		t.Fatalf("add instrument: %v", err)
	}

	return &tradeFixture{
		svc:         NewTradeService(eng, instruments),
		accounts:    accounts,
		instruments: instruments,
		acct:        acct,
	}
}

func TestBuy_ByInstrumentID(t *testing.T) {
	f := newTradeFixture(t)

	tx, err := f.svc.Buy(BuyRequest{
		AccountID:    f.acct.AccountID,
		InstrumentID: "ins-aapl",
		Quantity:     10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Quantity != 10 || tx.Price != 15000 {
		t.Errorf("got quantity=%d price=%d, want 10/15000", tx.Quantity, tx.Price)
	}
	if f.acct.CashBalance != 850000 {
		t.Errorf("got cash %d, want 850000", f.acct.CashBalance)
	}
}

func TestBuy_ByTicker(t *testing.T) {
	f := newTradeFixture(t)

	tx, err := f.svc.Buy(BuyRequest{
		AccountID: f.acct.AccountID,
		Ticker:    "AAPL",
		Quantity:  1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.InstrumentID != "ins-aapl" {
		t.Errorf("ticker resolved to %s, want ins-aapl", tx.InstrumentID)
	}
}

func TestBuy_ValidationFailures(t *testing.T) {
	f := newTradeFixture(t)

	tests := []struct {
		name string
		req  BuyRequest
	}{
		{"missing account", BuyRequest{Ticker: "AAPL", Quantity: 1}},
		{"neither id nor ticker", BuyRequest{AccountID: f.acct.AccountID, Quantity: 1}},
		{"both id and ticker", BuyRequest{AccountID: f.acct.AccountID, InstrumentID: "ins-aapl", Ticker: "AAPL", Quantity: 1}},
		{"lowercase ticker", BuyRequest{AccountID: f.acct.AccountID, Ticker: "aapl", Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vErr *domain.ValidationError
			_, err := f.svc.Buy(tt.req)
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestBuy_UnknownTicker(t *testing.T) {
	f := newTradeFixture(t)

	_, err := f.svc.Buy(BuyRequest{
		AccountID: f.acct.AccountID,
		Ticker:    "MSFT",
		Quantity:  1,
	})
	if !errors.Is(err, domain.ErrInstrumentNotFound) {
		t.Fatalf("expected ErrInstrumentNotFound, got %v", err)
	}
}

func TestBuy_EngineErrorsPassThrough(t *testing.T) {
	f := newTradeFixture(t)

	_, err := f.svc.Buy(BuyRequest{
		AccountID: "no-such-account",
		Ticker:    "AAPL",
		Quantity:  1,
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	_, err = f.svc.Buy(BuyRequest{
		AccountID: f.acct.AccountID,
		Ticker:    "AAPL",
		Quantity:  100000, // cost far beyond the balance
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
