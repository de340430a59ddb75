package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/service"
)

// AccountHandler handles HTTP requests for account endpoints.
type AccountHandler struct {
	accountSvc   *service.AccountService
	portfolioSvc *service.PortfolioService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc *service.AccountService, portfolioSvc *service.PortfolioService) *AccountHandler {
	return &AccountHandler{
		accountSvc:   accountSvc,
		portfolioSvc: portfolioSvc,
	}
}

// registerAccountRequest is the JSON request body for POST /accounts.
type registerAccountRequest struct {
	Handle       string   `json:"handle"`
	Email        string   `json:"email,omitempty"`
	StartingCash *float64 `json:"starting_cash,omitempty"`
}

// accountResponse is the JSON response for POST /accounts (201 Created).
type accountResponse struct {
	AccountID   string  `json:"account_id"`
	Handle      string  `json:"handle"`
	Email       string  `json:"email,omitempty"`
	CashBalance float64 `json:"cash_balance"`
	CreatedAt   string  `json:"created_at"`
}

// balanceResponse is the JSON response for GET /accounts/{account_id}/balance.
type balanceResponse struct {
	AccountID   string  `json:"account_id"`
	Handle      string  `json:"handle"`
	CashBalance float64 `json:"cash_balance"`
	CreatedAt   string  `json:"created_at"`
}

// positionResponse is a single holding in the portfolio response.
type positionResponse struct {
	InstrumentID string  `json:"instrument_id"`
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Quantity     int64   `json:"quantity"`
	CostBasis    float64 `json:"cost_basis"`
}

// portfolioResponse is the JSON response for GET /accounts/{account_id}/portfolio.
type portfolioResponse struct {
	AccountID string             `json:"account_id"`
	Positions []positionResponse `json:"positions"`
}

// transactionResponse is a single transaction in the history response.
type transactionResponse struct {
	TransactionID string  `json:"transaction_id"`
	AccountID     string  `json:"account_id"`
	InstrumentID  string  `json:"instrument_id"`
	Quantity      int64   `json:"quantity"`
	Price         float64 `json:"price"`
	Total         float64 `json:"total"`
	ExecutedAt    string  `json:"executed_at"`
}

// transactionListResponse is the JSON response for
// GET /accounts/{account_id}/transactions.
type transactionListResponse struct {
	AccountID    string                `json:"account_id"`
	Transactions []transactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// Register handles POST /accounts.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerAccountRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	acct, err := h.accountSvc.Register(service.RegisterAccountRequest{
		Handle:       req.Handle,
		Email:        req.Email,
		StartingCash: req.StartingCash,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, accountResponse{
		AccountID:   acct.AccountID,
		Handle:      acct.Handle,
		Email:       acct.Email,
		CashBalance: domain.CentsToDollars(acct.CashBalance),
		CreatedAt:   acct.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// GetBalance handles GET /accounts/{account_id}/balance.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	bal, err := h.accountSvc.GetBalance(accountID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, balanceResponse{
		AccountID:   bal.AccountID,
		Handle:      bal.Handle,
		CashBalance: domain.CentsToDollars(bal.CashBalance),
		CreatedAt:   bal.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// GetPortfolio handles GET /accounts/{account_id}/portfolio.
func (h *AccountHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	views, err := h.portfolioSvc.Holdings(accountID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	positions := make([]positionResponse, 0, len(views))
	for _, v := range views {
		positions = append(positions, positionResponse{
			InstrumentID: v.InstrumentID,
			Ticker:       v.Ticker,
			Name:         v.Name,
			Quantity:     v.Quantity,
			CostBasis:    domain.CentsToDollars(v.CostBasis),
		})
	}

	WriteJSON(w, http.StatusOK, portfolioResponse{
		AccountID: accountID,
		Positions: positions,
	})
}

// ListTransactions handles GET /accounts/{account_id}/transactions.
func (h *AccountHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	txs, err := h.portfolioSvc.Transactions(accountID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	list := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		list = append(list, newTransactionResponse(tx))
	}

	WriteJSON(w, http.StatusOK, transactionListResponse{
		AccountID:    accountID,
		Transactions: list,
		Total:        len(list),
	})
}

func newTransactionResponse(tx *domain.Transaction) transactionResponse {
	return transactionResponse{
		TransactionID: tx.TransactionID,
		AccountID:     tx.AccountID,
		InstrumentID:  tx.InstrumentID,
		Quantity:      tx.Quantity,
		Price:         domain.CentsToDollars(tx.Price),
		Total:         domain.CentsToDollars(tx.Cost()),
		ExecutedAt:    tx.ExecutedAt.UTC().Format(time.RFC3339Nano),
	}
}
