package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/service"
)

// MarketHandler handles HTTP requests for instrument endpoints.
type MarketHandler struct {
	marketSvc *service.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc *service.MarketService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// instrumentResponse is a single instrument in market responses.
type instrumentResponse struct {
	InstrumentID string  `json:"instrument_id"`
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Sector       string  `json:"sector"`
	Price        float64 `json:"price"`
}

// instrumentListResponse is the JSON response for GET /instruments.
type instrumentListResponse struct {
	Instruments []instrumentResponse `json:"instruments"`
	Total       int                  `json:"total"`
}

// setPriceRequest is the JSON request body for
// PATCH /instruments/{instrument_id}/price.
type setPriceRequest struct {
	Price float64 `json:"price"`
}

// List handles GET /instruments. Instruments are returned in ascending
// ticker order.
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	instruments := h.marketSvc.ListInstruments()

	list := make([]instrumentResponse, 0, len(instruments))
	for _, ins := range instruments {
		list = append(list, newInstrumentResponse(ins))
	}

	WriteJSON(w, http.StatusOK, instrumentListResponse{
		Instruments: list,
		Total:       len(list),
	})
}

// Get handles GET /instruments/{instrument_id}. The path parameter may
// be an instrument ID or a ticker.
func (h *MarketHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrTicker := chi.URLParam(r, "instrument_id")

	ins, err := h.marketSvc.GetInstrument(idOrTicker)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, newInstrumentResponse(ins))
}

// SetPrice handles PATCH /instruments/{instrument_id}/price.
func (h *MarketHandler) SetPrice(w http.ResponseWriter, r *http.Request) {
	instrumentID := chi.URLParam(r, "instrument_id")

	var req setPriceRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.marketSvc.SetPrice(instrumentID, req.Price); err != nil {
		WriteDomainError(w, err)
		return
	}

	ins, err := h.marketSvc.GetInstrument(instrumentID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, newInstrumentResponse(ins))
}

func newInstrumentResponse(ins *domain.Instrument) instrumentResponse {
	return instrumentResponse{
		InstrumentID: ins.InstrumentID,
		Ticker:       ins.Ticker,
		Name:         ins.Name,
		Sector:       ins.Sector,
		Price:        domain.CentsToDollars(ins.Price),
	}
}
