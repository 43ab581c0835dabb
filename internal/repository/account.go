package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ledgerd/ledgerd/internal/model"
)

// Common errors for account repository operations.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account id already exists")
)

// CreateAccount inserts a new account from its creation-time projection.
// Balance and created_at come from the schema defaults (0 and now()).
func (r *Repository) CreateAccount(ctx context.Context, account *model.NewAccount) error {
	query := `
		INSERT INTO accounts (id, owner_id)
		VALUES ($1, $2)
	`

	_, err := r.pool.Exec(ctx, query, account.ID, account.OwnerID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetAccountByID retrieves an account by its ID.
func (r *Repository) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	query := `
		SELECT id, balance, owner_id, created_at
		FROM accounts
		WHERE id = $1
	`

	var account model.Account
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Balance,
		&account.OwnerID,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return &account, nil
}

// ListAccounts retrieves all accounts.
func (r *Repository) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	query := `
		SELECT id, balance, owner_id, created_at
		FROM accounts
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(&account.ID, &account.Balance, &account.OwnerID, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// AdjustBalance applies an additive delta to an account's balance and records
// the adjustment in the audit trail, both inside one transaction.
//
// The balance change is a single UPDATE expression, so concurrent adjustments
// serialize on the row and cannot lose updates.
func (r *Repository) AdjustBalance(ctx context.Context, adj *model.BalanceAdjustment) (*model.Account, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
		RETURNING id, balance, owner_id, created_at
	`

	var account model.Account
	err = tx.QueryRow(ctx, query, adj.Delta, adj.AccountID).Scan(
		&account.ID,
		&account.Balance,
		&account.OwnerID,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to adjust balance: %w", err)
	}

	auditQuery := `
		INSERT INTO balance_adjustments (id, account_id, delta, balance_after)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.Exec(ctx, auditQuery, adj.ID, adj.AccountID, adj.Delta, account.Balance); err != nil {
		return nil, fmt.Errorf("failed to record adjustment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit adjustment: %w", err)
	}

	return &account, nil
}

// ListAdjustments retrieves the adjustment history for an account, newest first.
func (r *Repository) ListAdjustments(ctx context.Context, accountID string) ([]*model.BalanceAdjustment, error) {
	query := `
		SELECT id, account_id, delta, balance_after, created_at
		FROM balance_adjustments
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []*model.BalanceAdjustment
	for rows.Next() {
		var adj model.BalanceAdjustment
		if err := rows.Scan(&adj.ID, &adj.AccountID, &adj.Delta, &adj.BalanceAfter, &adj.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, &adj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adjustments: %w", err)
	}

	return adjustments, nil
}
