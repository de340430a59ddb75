package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/efreitasn/papertrade/internal/domain"
)

// WriteJSON writes a JSON response with the given status code and data.
// Sets Content-Type to application/json before writing the status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // Write error intentionally ignored in response helper
}

// errorResponse is the standard error response format.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a standard error response with the given status code,
// error code, and human-readable message.
func WriteError(w http.ResponseWriter, status int, errorCode, message string) {
	WriteJSON(w, status, errorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// WriteDomainError maps a service/engine error to the appropriate HTTP
// status: 400 for validation failures, 404 for unknown accounts or
// instruments, 409 for uniqueness conflicts, 422 for insufficient funds,
// 500 otherwise.
func WriteDomainError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", vErr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrInstrumentNotFound):
		WriteError(w, http.StatusNotFound, err.Error(), notFoundMessage(err))
	case errors.Is(err, domain.ErrHandleTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrTickerTaken):
		WriteError(w, http.StatusConflict, err.Error(), conflictMessage(err))
	case errors.Is(err, domain.ErrInsufficientFunds):
		WriteError(w, http.StatusUnprocessableEntity, "insufficient_funds",
			"Account cash balance cannot cover the order cost")
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

func notFoundMessage(err error) string {
	if errors.Is(err, domain.ErrInstrumentNotFound) {
		return "Instrument not found"
	}
	return "Account not found"
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return "Email is already in use"
	case errors.Is(err, domain.ErrTickerTaken):
		return "Ticker is already listed"
	default:
		return "Handle is already taken"
	}
}

// ParseJSON decodes the request body as JSON into v.
// It validates that the Content-Type header is application/json and
// returns an error for missing/incorrect content type or malformed JSON.
func ParseJSON(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	return nil
}
