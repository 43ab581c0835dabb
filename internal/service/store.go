// Package service provides business logic for the application.
package service

import (
	"context"

	"github.com/ledgerd/ledgerd/internal/model"
)

// Store is the persistence contract the services depend on.
// *repository.Repository satisfies it; tests substitute an in-memory double.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context, nameQuery string) ([]*model.User, error)

	CreateAccount(ctx context.Context, account *model.NewAccount) error
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	AdjustBalance(ctx context.Context, adj *model.BalanceAdjustment) (*model.Account, error)
	ListAdjustments(ctx context.Context, accountID string) ([]*model.BalanceAdjustment, error)
}
