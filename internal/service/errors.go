package service

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Service errors. Messages are user-facing and end up verbatim in error
// response bodies, hence the quoted field names.
var (
	ErrUserExists      = errors.New("'id' already exists")
	ErrAccountExists   = errors.New("'id' already exists")
	ErrAccountNotFound = errors.New("'id' not found")
)

// FieldError reports a request field that is missing or has the wrong JSON type.
type FieldError struct {
	Field string
	Want  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("'%s' must be a %s", e.Field, e.Want)
}

// requireString asserts that a decoded JSON value is a string.
// Empty strings pass; only the type is enforced.
func requireString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: field, Want: "string"}
	}
	return s, nil
}

// requireNumber asserts that a decoded JSON value is a number.
func requireNumber(field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, &FieldError{Field: field, Want: "number"}
}
