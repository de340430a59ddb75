package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

var (
	handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
	emailRegex  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// RegisterAccountRequest represents the input for account registration.
// StartingCash overrides the configured default when set.
type RegisterAccountRequest struct {
	Handle       string
	Email        string
	StartingCash *float64
}

// BalanceResponse represents an account's current balance.
type BalanceResponse struct {
	AccountID   string
	Handle      string
	CashBalance int64 // cents
	CreatedAt   time.Time
}

// AccountService handles account registration and balance queries.
type AccountService struct {
	store               *store.AccountStore
	defaultStartingCash int64 // cents
}

// NewAccountService creates an AccountService. defaultStartingCash is
// the cash (in cents) granted to accounts that don't specify their own.
func NewAccountService(store *store.AccountStore, defaultStartingCash int64) *AccountService {
	return &AccountService{
		store:               store,
		defaultStartingCash: defaultStartingCash,
	}
}

// Register validates the request and creates the account with its
// starting cash balance.
func (s *AccountService) Register(req RegisterAccountRequest) (*domain.Account, error) {
	if !handleRegex.MatchString(req.Handle) {
		return nil, &domain.ValidationError{
			Message: "handle must match ^[a-zA-Z0-9_-]{1,64}$",
		}
	}

	if req.Email != "" && !emailRegex.MatchString(req.Email) {
		return nil, &domain.ValidationError{
			Message: "email must be a valid address",
		}
	}

	startingCash := s.defaultStartingCash
	if req.StartingCash != nil {
		if *req.StartingCash < 0 {
			return nil, &domain.ValidationError{
				Message: "starting_cash must be >= 0",
			}
		}
		cents, err := domain.DollarsToCents(*req.StartingCash)
		if err != nil {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("invalid starting_cash: %v", err),
			}
		}
		startingCash = cents
	}

	acct := &domain.Account{
		AccountID:   uuid.New().String(),
		Handle:      req.Handle,
		Email:       req.Email,
		CashBalance: startingCash,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Create(acct); err != nil {
		return nil, err
	}

	return acct, nil
}

// GetBalance retrieves the account's current cash balance.
func (s *AccountService) GetBalance(accountID string) (*BalanceResponse, error) {
	acct, err := s.store.Get(accountID)
	if err != nil {
		return nil, err
	}

	acct.Mu.Lock()
	cash := acct.CashBalance
	acct.Mu.Unlock()

	return &BalanceResponse{
		AccountID:   acct.AccountID,
		Handle:      acct.Handle,
		CashBalance: cash,
		CreatedAt:   acct.CreatedAt,
	}, nil
}
