package handler

import (
	"net/http"

	"github.com/efreitasn/papertrade/internal/service"
)

// TradeHandler handles HTTP requests for trade endpoints.
type TradeHandler struct {
	tradeSvc *service.TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeSvc *service.TradeService) *TradeHandler {
	return &TradeHandler{tradeSvc: tradeSvc}
}

// buyRequest is the JSON request body for POST /trades.
type buyRequest struct {
	AccountID    string `json:"account_id"`
	InstrumentID string `json:"instrument_id,omitempty"`
	Ticker       string `json:"ticker,omitempty"`
	Quantity     int64  `json:"quantity"`
}

// Buy handles POST /trades.
func (h *TradeHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	tx, err := h.tradeSvc.Buy(service.BuyRequest{
		AccountID:    req.AccountID,
		InstrumentID: req.InstrumentID,
		Ticker:       req.Ticker,
		Quantity:     req.Quantity,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, newTransactionResponse(tx))
}
