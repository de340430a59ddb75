package service

import (
	"regexp"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/engine"
	"github.com/efreitasn/papertrade/internal/store"
)

var tickerRegex = regexp.MustCompile(`^[A-Z]{1,10}$`)

// BuyRequest represents the input for a buy order. The instrument may be
// identified by ID or by ticker, but not both.
type BuyRequest struct {
	AccountID    string
	InstrumentID string
	Ticker       string
	Quantity     int64
}

// TradeService handles buy order submission.
type TradeService struct {
	engine      *engine.Engine
	instruments *store.InstrumentStore
}

// NewTradeService creates a TradeService.
func NewTradeService(engine *engine.Engine, instruments *store.InstrumentStore) *TradeService {
	return &TradeService{
		engine:      engine,
		instruments: instruments,
	}
}

// Buy validates the request shape, resolves a ticker to its instrument
// ID if needed, and executes the buy through the engine. All engine
// failure modes pass through unchanged.
func (s *TradeService) Buy(req BuyRequest) (*domain.Transaction, error) {
	if req.AccountID == "" {
		return nil, &domain.ValidationError{Message: "account_id is required"}
	}

	if (req.InstrumentID == "") == (req.Ticker == "") {
		return nil, &domain.ValidationError{
			Message: "exactly one of instrument_id and ticker is required",
		}
	}

	instrumentID := req.InstrumentID
	if req.Ticker != "" {
		if !tickerRegex.MatchString(req.Ticker) {
			return nil, &domain.ValidationError{
				Message: "ticker must match ^[A-Z]{1,10}$",
			}
		}
		ins, err := s.instruments.GetByTicker(req.Ticker)
		if err != nil {
			return nil, err
		}
		instrumentID = ins.InstrumentID
	}

	return s.engine.ExecuteBuy(req.AccountID, instrumentID, req.Quantity)
}
