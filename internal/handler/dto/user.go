// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// CreateUserRequest represents the request body for creating a user.
// Fields are untyped so that wrong JSON types reach the service layer and
// surface as per-field validation errors instead of a generic decode failure.
type CreateUserRequest struct {
	ID       any `json:"id"`
	Name     any `json:"name"`
	Email    any `json:"email"`
	Password any `json:"password"`
}
