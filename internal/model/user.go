// Package model defines domain entities for the application.
package model

// User represents a registered user who may own accounts.
// Passwords are stored and served as-is; hashing is out of scope here.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
