package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrHandleTaken        = errors.New("handle_already_taken")
	ErrEmailTaken         = errors.New("email_already_taken")
	ErrAccountNotFound    = errors.New("account_not_found")
	ErrInstrumentNotFound = errors.New("instrument_not_found")
	ErrTickerTaken        = errors.New("ticker_already_exists")
	ErrInsufficientFunds  = errors.New("insufficient_funds")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
