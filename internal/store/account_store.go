package store

import (
	"context"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"marketplace/internal/models"
)

// AccountStore is the canonical in-memory directory of accounts, keyed by
// account name. Everything it hands out is a deep copy, so callers can only
// change stored state by saving an updated account back.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]models.Account)}
}

func (s *AccountStore) Create(_ context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Name]; ok {
		return ErrAccountExists
	}
	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return ErrAccountExists
		}
	}
	s.accounts[account.Name] = account.Clone()
	return nil
}

func (s *AccountStore) Get(_ context.Context, name string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[name]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return account.Clone(), nil
}

// FindByIdentifier resolves an account by name-or-email equality with a
// linear scan. If two accounts collide on the identifier the result is
// whichever the scan reaches first; that order is unspecified.
func (s *AccountStore) FindByIdentifier(_ context.Context, identifier string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if account.Name == identifier || account.Email == identifier {
			return account.Clone(), nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

// Save replaces an existing account. New accounts go through Create so the
// uniqueness checks cannot be bypassed.
func (s *AccountStore) Save(_ context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Name]; !ok {
		return ErrAccountNotFound
	}
	s.accounts[account.Name] = account.Clone()
	return nil
}

// List returns copies of every account, sorted by name for stable output.
func (s *AccountStore) List(_ context.Context) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := maps.Keys(s.accounts)
	slices.Sort(names)
	out := make([]models.Account, 0, len(names))
	for _, name := range names {
		out = append(out, s.accounts[name].Clone())
	}
	return out, nil
}
