package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ledgerd/ledgerd/internal/model"
	"github.com/ledgerd/ledgerd/internal/repository"
)

// MemStore is a deterministic in-memory implementation of service.Store.
// It returns the same sentinel errors as the real repository so service-level
// error mapping is exercised in unit tests.
type MemStore struct {
	mu          sync.Mutex
	users       map[string]model.User
	accounts    map[string]model.Account
	adjustments map[string][]model.BalanceAdjustment
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		users:       make(map[string]model.User),
		accounts:    make(map[string]model.Account),
		adjustments: make(map[string][]model.BalanceAdjustment),
	}
}

// CreateUser inserts a user, rejecting duplicate ids.
func (m *MemStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.ID]; exists {
		return repository.ErrUserExists
	}
	m.users[user.ID] = *user
	return nil
}

// GetUserByID retrieves a user by id.
func (m *MemStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

// ListUsers returns users whose name contains nameQuery, all users when empty.
func (m *MemStore) ListUsers(_ context.Context, nameQuery string) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []*model.User
	for _, user := range m.users {
		if nameQuery == "" || strings.Contains(user.Name, nameQuery) {
			u := user
			users = append(users, &u)
		}
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// CreateAccount inserts an account with the storage defaults (balance 0).
func (m *MemStore) CreateAccount(_ context.Context, account *model.NewAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.ID]; exists {
		return repository.ErrAccountExists
	}
	m.accounts[account.ID] = model.Account{
		ID:        account.ID,
		Balance:   0,
		OwnerID:   account.OwnerID,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetAccountByID retrieves an account by id.
func (m *MemStore) GetAccountByID(_ context.Context, id string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	return &account, nil
}

// ListAccounts returns all accounts.
func (m *MemStore) ListAccounts(_ context.Context) ([]*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var accounts []*model.Account
	for _, account := range m.accounts {
		a := account
		accounts = append(accounts, &a)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// AdjustBalance applies an additive delta and records the adjustment.
func (m *MemStore) AdjustBalance(_ context.Context, adj *model.BalanceAdjustment) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[adj.AccountID]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	account.Balance += adj.Delta
	m.accounts[adj.AccountID] = account

	recorded := *adj
	recorded.BalanceAfter = account.Balance
	recorded.CreatedAt = time.Now().UTC()
	m.adjustments[adj.AccountID] = append(m.adjustments[adj.AccountID], recorded)

	return &account, nil
}

// ListAdjustments returns the recorded adjustments for an account, newest first.
func (m *MemStore) ListAdjustments(_ context.Context, accountID string) ([]*model.BalanceAdjustment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.adjustments[accountID]
	adjustments := make([]*model.BalanceAdjustment, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		a := history[i]
		adjustments = append(adjustments, &a)
	}
	return adjustments, nil
}
