package service

import (
	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/portfolio"
	"github.com/efreitasn/papertrade/internal/store"
)

// PositionView is a single holding enriched with catalog data for
// display.
type PositionView struct {
	InstrumentID string
	Ticker       string
	Name         string
	Quantity     int64
	CostBasis    int64 // cents
}

// PortfolioService answers holdings and transaction history queries.
type PortfolioService struct {
	projector   *portfolio.Projector
	instruments *store.InstrumentStore
}

// NewPortfolioService creates a PortfolioService.
func NewPortfolioService(projector *portfolio.Projector, instruments *store.InstrumentStore) *PortfolioService {
	return &PortfolioService{
		projector:   projector,
		instruments: instruments,
	}
}

// Holdings returns the account's positions in ascending ticker order,
// enriched with instrument names from the catalog.
func (s *PortfolioService) Holdings(accountID string) ([]PositionView, error) {
	positions, err := s.projector.Holdings(accountID)
	if err != nil {
		return nil, err
	}

	// Walk the catalog's ordered listing so the response order is
	// stable by ticker.
	views := make([]PositionView, 0, len(positions))
	for _, ins := range s.instruments.List() {
		pos, ok := positions[ins.InstrumentID]
		if !ok {
			continue
		}
		views = append(views, PositionView{
			InstrumentID: ins.InstrumentID,
			Ticker:       ins.Ticker,
			Name:         ins.Name,
			Quantity:     pos.Quantity,
			CostBasis:    pos.CostBasis,
		})
	}
	return views, nil
}

// Transactions returns the account's transaction history in execution
// order.
func (s *PortfolioService) Transactions(accountID string) ([]*domain.Transaction, error) {
	return s.projector.Transactions(accountID)
}
