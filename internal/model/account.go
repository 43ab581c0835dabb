// Package model defines domain entities for the application.
package model

import "time"

// Account represents a monetary record owned by a user identifier.
// OwnerID is not backed by a foreign key; accounts may be orphaned.
type Account struct {
	ID        string    `json:"id"`
	Balance   float64   `json:"balance"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Adjusted returns a copy of the account with delta added to the balance.
// Balances are only ever changed additively, never assigned outright.
func (a Account) Adjusted(delta float64) Account {
	a.Balance += delta
	return a
}

// NewAccount is the creation-time projection of an Account.
// Balance and creation timestamp are assigned by storage, not by the client.
type NewAccount struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

// BalanceAdjustment records a single additive change applied to an account.
type BalanceAdjustment struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	Delta        float64   `json:"delta"`
	BalanceAfter float64   `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}
