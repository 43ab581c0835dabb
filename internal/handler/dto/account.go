package dto

// CreateAccountRequest represents the request body for creating an account.
// Balance and created_at are storage-assigned and cannot be supplied here.
type CreateAccountRequest struct {
	ID      any `json:"id"`
	OwnerID any `json:"owner_id"`
}

// AdjustBalanceRequest represents the request body for adjusting a balance.
// The value is applied additively to the current balance.
type AdjustBalanceRequest struct {
	Value any `json:"value"`
}

// BalanceResponse represents a balance read.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}
