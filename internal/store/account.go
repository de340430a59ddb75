package store

import (
	"sync"

	"github.com/efreitasn/papertrade/internal/domain"
)

// AccountStore is a thread-safe in-memory store for accounts, keyed by
// account_id with secondary uniqueness indexes on handle and email.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	byHandle map[string]string // handle → account_id
	byEmail  map[string]string // email → account_id (non-empty emails only)
}

// NewAccountStore creates an empty AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]*domain.Account),
		byHandle: make(map[string]string),
		byEmail:  make(map[string]string),
	}
}

// Create adds an account to the store. It returns domain.ErrHandleTaken
// if the handle is already registered, or domain.ErrEmailTaken if the
// account carries an email another account already uses.
func (s *AccountStore) Create(a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byHandle[a.Handle]; exists {
		return domain.ErrHandleTaken
	}
	if a.Email != "" {
		if _, exists := s.byEmail[a.Email]; exists {
			return domain.ErrEmailTaken
		}
	}

	s.accounts[a.AccountID] = a
	s.byHandle[a.Handle] = a.AccountID
	if a.Email != "" {
		s.byEmail[a.Email] = a.AccountID
	}
	return nil
}

// Get retrieves an account by ID. It returns domain.ErrAccountNotFound
// if the account does not exist.
func (s *AccountStore) Get(id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

// GetByHandle retrieves an account by its unique handle. It returns
// domain.ErrAccountNotFound if no account uses the handle.
func (s *AccountStore) GetByHandle(handle string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byHandle[handle]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return s.accounts[id], nil
}

// Exists returns true if an account with the given ID exists.
func (s *AccountStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.accounts[id]
	return ok
}
