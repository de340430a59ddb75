package service

import (
	"fmt"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// MarketService handles instrument listing and price administration.
type MarketService struct {
	instruments *store.InstrumentStore
}

// NewMarketService creates a MarketService over the pricing catalog.
func NewMarketService(instruments *store.InstrumentStore) *MarketService {
	return &MarketService{instruments: instruments}
}

// ListInstruments returns all listed instruments in ascending ticker
// order.
func (s *MarketService) ListInstruments() []*domain.Instrument {
	return s.instruments.List()
}

// GetInstrument retrieves an instrument by ID, falling back to a ticker
// lookup when the identifier has ticker shape. This lets callers use
// either GET /instruments/{uuid} or GET /instruments/AAPL.
func (s *MarketService) GetInstrument(idOrTicker string) (*domain.Instrument, error) {
	ins, err := s.instruments.Get(idOrTicker)
	if err == nil {
		return ins, nil
	}
	if tickerRegex.MatchString(idOrTicker) {
		return s.instruments.GetByTicker(idOrTicker)
	}
	return nil, err
}

// SetPrice updates an instrument's quoted price from a dollar amount.
// This is the entry point for the external pricing process; the trade
// engine itself never writes prices.
func (s *MarketService) SetPrice(instrumentID string, dollars float64) error {
	if dollars <= 0 {
		return &domain.ValidationError{Message: "price must be greater than 0"}
	}
	cents, err := domain.DollarsToCents(dollars)
	if err != nil {
		return &domain.ValidationError{Message: fmt.Sprintf("invalid price: %v", err)}
	}
	return s.instruments.SetPrice(instrumentID, cents)
}
