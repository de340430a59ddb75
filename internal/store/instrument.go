package store

import (
	"sync"

	"github.com/google/btree"

	"github.com/efreitasn/papertrade/internal/domain"
)

// tickerEntry is the catalog's ordering key: one entry per instrument,
// sorted by ticker so List returns a stable ascending order.
type tickerEntry struct {
	ticker       string
	instrumentID string
}

func tickerLess(a, b tickerEntry) bool {
	return a.ticker < b.ticker
}

// InstrumentStore is the pricing catalog: a thread-safe, read-mostly
// mapping from instrument ID to instrument, with a B-tree over tickers
// for ordered listing and a uniqueness index on ticker.
//
// Reads return copies, so a price returned by Get is a snapshot taken
// under the lock and is unaffected by later SetPrice calls.
type InstrumentStore struct {
	mu          sync.RWMutex
	instruments map[string]*domain.Instrument
	byTicker    map[string]string // ticker → instrument_id
	ordered     *btree.BTreeG[tickerEntry]
}

// NewInstrumentStore creates an empty InstrumentStore.
func NewInstrumentStore() *InstrumentStore {
	const degree = 32
	return &InstrumentStore{
		instruments: make(map[string]*domain.Instrument),
		byTicker:    make(map[string]string),
		ordered:     btree.NewG[tickerEntry](degree, tickerLess),
	}
}

// Add inserts an instrument into the catalog. It returns
// domain.ErrTickerTaken if the ticker is already listed, or a
// ValidationError if the price is not positive.
func (s *InstrumentStore) Add(ins *domain.Instrument) error {
	if ins.Price <= 0 {
		return &domain.ValidationError{Message: "instrument price must be greater than 0"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byTicker[ins.Ticker]; exists {
		return domain.ErrTickerTaken
	}

	stored := *ins
	s.instruments[ins.InstrumentID] = &stored
	s.byTicker[ins.Ticker] = ins.InstrumentID
	s.ordered.ReplaceOrInsert(tickerEntry{ticker: ins.Ticker, instrumentID: ins.InstrumentID})
	return nil
}

// Get retrieves a snapshot of an instrument by ID. It returns
// domain.ErrInstrumentNotFound if the instrument does not exist.
func (s *InstrumentStore) Get(id string) (*domain.Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ins, ok := s.instruments[id]
	if !ok {
		return nil, domain.ErrInstrumentNotFound
	}
	snapshot := *ins
	return &snapshot, nil
}

// GetByTicker retrieves a snapshot of an instrument by its ticker symbol.
// It returns domain.ErrInstrumentNotFound if the ticker is not listed.
func (s *InstrumentStore) GetByTicker(ticker string) (*domain.Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byTicker[ticker]
	if !ok {
		return nil, domain.ErrInstrumentNotFound
	}
	snapshot := *s.instruments[id]
	return &snapshot, nil
}

// List returns snapshots of all instruments in ascending ticker order.
func (s *InstrumentStore) List() []*domain.Instrument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Instrument, 0, len(s.instruments))
	s.ordered.Ascend(func(e tickerEntry) bool {
		snapshot := *s.instruments[e.instrumentID]
		result = append(result, &snapshot)
		return true
	})
	return result
}

// Exists returns true if an instrument with the given ID is listed.
func (s *InstrumentStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.instruments[id]
	return ok
}

// SetPrice updates an instrument's quoted price. This is the hook for an
// external pricing process; the trade engine never writes prices. It
// returns domain.ErrInstrumentNotFound for unknown IDs and a
// ValidationError for non-positive prices.
func (s *InstrumentStore) SetPrice(id string, price int64) error {
	if price <= 0 {
		return &domain.ValidationError{Message: "price must be greater than 0"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ins, ok := s.instruments[id]
	if !ok {
		return domain.ErrInstrumentNotFound
	}
	ins.Price = price
	return nil
}
