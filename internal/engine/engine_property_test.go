package engine

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// TestProperty_CashConservation verifies that for any sequence of buy
// attempts, cash never goes negative and always equals starting cash
// minus the sum of quantity*price over the committed transactions —
// no cash is created or destroyed outside registration and trades.
func TestProperty_CashConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		accounts := store.NewAccountStore()
		instruments := store.NewInstrumentStore()
		ledger := store.NewLedger(instruments)
		eng := NewEngine(accounts, instruments, ledger)

		startingCash := rapid.Int64Range(0, 10_000_000).Draw(t, "startingCash")
		acct := &domain.Account{
			AccountID:   "acct-1",
			Handle:      "acct-1",
			CashBalance: startingCash,
			CreatedAt:   time.Now(),
		}
		if err := accounts.Create(acct); err != nil {
			t.Fatalf("create account: %v", err)
		}

		numInstruments := rapid.IntRange(1, 5).Draw(t, "numInstruments")
		ids := make([]string, numInstruments)
		for i := range ids {
			ids[i] = fmt.Sprintf("ins-%d", i)
			err := instruments.Add(&domain.Instrument{
				InstrumentID: ids[i],
				Ticker:       fmt.Sprintf("T%c", 'A'+i),
				Name:         ids[i],
				Sector:       "Tech",
				Price:        rapid.Int64Range(1, 100_000).Draw(t, fmt.Sprintf("price-%d", i)),
			})
			if err != nil {
				t.Fatalf("add instrument: %v", err)
			}
		}

		numOps := rapid.IntRange(1, 30).Draw(t, "numOps")
		for op := 0; op < numOps; op++ {
			id := ids[rapid.IntRange(0, numInstruments-1).Draw(t, fmt.Sprintf("pick-%d", op))]
			qty := rapid.Int64Range(-1, 50).Draw(t, fmt.Sprintf("qty-%d", op))

			_, err := eng.ExecuteBuy("acct-1", id, qty)
			if err != nil {
				var vErr *domain.ValidationError
				if !errors.Is(err, domain.ErrInsufficientFunds) && !errors.As(err, &vErr) {
					t.Fatalf("op %d: unexpected error: %v", op, err)
				}
			}

			// I1: cash never negative.
			if acct.CashBalance < 0 {
				t.Fatalf("op %d: cash went negative: %d", op, acct.CashBalance)
			}

			// I4: starting cash equals current cash plus ledger total.
			var spent int64
			for _, tx := range ledger.ByAccount("acct-1") {
				spent += tx.Cost()
			}
			if acct.CashBalance+spent != startingCash {
				t.Fatalf("op %d: conservation violated: cash=%d spent=%d starting=%d",
					op, acct.CashBalance, spent, startingCash)
			}
		}
	})
}

// TestProperty_LedgerMatchesExecutions verifies that every successful
// buy is recorded exactly once with the quantity and price it executed
// at, and that failed buys leave no trace.
func TestProperty_LedgerMatchesExecutions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		accounts := store.NewAccountStore()
		instruments := store.NewInstrumentStore()
		ledger := store.NewLedger(instruments)
		eng := NewEngine(accounts, instruments, ledger)

		acct := &domain.Account{
			AccountID:   "acct-1",
			Handle:      "acct-1",
			CashBalance: rapid.Int64Range(0, 1_000_000).Draw(t, "startingCash"),
			CreatedAt:   time.Now(),
		}
		if err := accounts.Create(acct); err != nil {
			t.Fatalf("create account: %v", err)
		}

		price := rapid.Int64Range(1, 10_000).Draw(t, "price")
		err := instruments.Add(&domain.Instrument{
			InstrumentID: "ins-1",
			Ticker:       "TEST",
			Name:         "Test",
			Sector:       "Tech",
			Price:        price,
		})
		if err != nil {
			t.Fatalf("add instrument: %v", err)
		}

		var committed []*domain.Transaction
		numOps := rapid.IntRange(1, 25).Draw(t, "numOps")
		for op := 0; op < numOps; op++ {
			qty := rapid.Int64Range(1, 100).Draw(t, fmt.Sprintf("qty-%d", op))
			tx, err := eng.ExecuteBuy("acct-1", "ins-1", qty)
			if err == nil {
				committed = append(committed, tx)
			}
		}

		txs := ledger.ByAccount("acct-1")
		if len(txs) != len(committed) {
			t.Fatalf("ledger has %d transactions, engine committed %d", len(txs), len(committed))
		}
		for i, tx := range txs {
			if tx.TransactionID != committed[i].TransactionID {
				t.Fatalf("ledger order diverged at %d", i)
			}
			if tx.Price != price {
				t.Fatalf("transaction %d recorded price %d, catalog price was %d", i, tx.Price, price)
			}
		}
	})
}
