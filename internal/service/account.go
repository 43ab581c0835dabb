package service

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ledgerd/ledgerd/internal/cache"
	"github.com/ledgerd/ledgerd/internal/metrics"
	"github.com/ledgerd/ledgerd/internal/model"
	"github.com/ledgerd/ledgerd/internal/repository"
)

// AccountService handles account and balance business logic.
type AccountService struct {
	store   Store
	cache   *cache.Cache
	metrics metrics.Recorder
}

// NewAccountService creates a new AccountService.
// cache may be nil; balance reads then always hit the store.
func NewAccountService(store Store, cacheClient *cache.Cache, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		store:   store,
		cache:   cacheClient,
		metrics: recorder,
	}
}

// CreateAccountInput defines input for creating an account.
type CreateAccountInput struct {
	ID      any
	OwnerID any
}

// CreateAccount validates the input, inserts the account via its creation
// projection, and returns the row as storage persisted it (balance 0,
// created_at assigned by the schema).
//
// Owner existence is deliberately not checked; accounts may be orphaned.
func (s *AccountService) CreateAccount(ctx context.Context, input CreateAccountInput) (*model.Account, error) {
	id, err := requireString("id", input.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := requireString("owner_id", input.OwnerID)
	if err != nil {
		return nil, err
	}

	account := &model.NewAccount{
		ID:      id,
		OwnerID: ownerID,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	s.metrics.IncAccountCreated()

	return s.store.GetAccountByID(ctx, id)
}

// ListAccounts returns all accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	return s.store.ListAccounts(ctx)
}

// GetBalance returns the current balance for an account, cache-first.
func (s *AccountService) GetBalance(ctx context.Context, id string) (float64, error) {
	if s.cache != nil {
		balance, err := s.cache.GetBalance(ctx, id)
		if err == nil {
			s.metrics.IncBalanceCacheHit()
			return balance, nil
		}
		// Redis failures degrade to a store read, same as a miss.
		s.metrics.IncBalanceCacheMiss()
	}

	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}

	if s.cache != nil {
		// Backfill; a failed write only costs the next read a trip to the store.
		_ = s.cache.SetBalance(ctx, id, account.Balance)
	}

	return account.Balance, nil
}

// AdjustBalanceInput defines input for adjusting an account balance.
type AdjustBalanceInput struct {
	AccountID string
	Value     any
}

// AdjustBalance applies an additive delta to the account's balance and returns
// the updated account. The wire endpoint is phrased as "set balance" but the
// contract is additive: newBalance = currentBalance + value.
func (s *AccountService) AdjustBalance(ctx context.Context, input AdjustBalanceInput) (*model.Account, error) {
	delta, err := requireNumber("value", input.Value)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	adj := &model.BalanceAdjustment{
		ID:        ulid.Make().String(),
		AccountID: input.AccountID,
		Delta:     delta,
	}

	account, err := s.store.AdjustBalance(ctx, adj)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	s.metrics.IncBalanceAdjusted()
	s.metrics.ObserveAdjustDuration(time.Since(start))

	if s.cache != nil {
		// Invalidate so the next read sees the committed balance.
		// A failed delete is bounded by the cache TTL.
		_ = s.cache.DeleteBalance(ctx, input.AccountID)
	}

	return account, nil
}

// ListAdjustments returns the adjustment history for an account, newest first.
func (s *AccountService) ListAdjustments(ctx context.Context, id string) ([]*model.BalanceAdjustment, error) {
	if _, err := s.store.GetAccountByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return s.store.ListAdjustments(ctx, id)
}
