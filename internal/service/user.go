package service

import (
	"context"
	"errors"

	"github.com/ledgerd/ledgerd/internal/metrics"
	"github.com/ledgerd/ledgerd/internal/model"
	"github.com/ledgerd/ledgerd/internal/repository"
)

// UserService handles user business logic.
type UserService struct {
	store   Store
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store Store, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		metrics: recorder,
	}
}

// CreateUserInput defines input for creating a user.
// Fields are untyped because the wire contract distinguishes "wrong JSON type"
// from other failures; the service owns that check.
type CreateUserInput struct {
	ID       any
	Name     any
	Email    any
	Password any
}

// CreateUser validates the input, inserts the user, and returns the row as
// storage persisted it. Duplicate ids surface as ErrUserExists via the unique
// constraint, never as a partial insert.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	id, err := requireString("id", input.ID)
	if err != nil {
		return nil, err
	}

	name, err := requireString("name", input.Name)
	if err != nil {
		return nil, err
	}

	email, err := requireString("email", input.Email)
	if err != nil {
		return nil, err
	}

	password, err := requireString("password", input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: password,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	s.metrics.IncUserCreated()

	// Re-read so the response reflects exactly what storage persisted,
	// including any storage-assigned defaults.
	return s.store.GetUserByID(ctx, id)
}

// ListUsers returns all users, or those whose name contains query as a
// case-sensitive substring.
func (s *UserService) ListUsers(ctx context.Context, query string) ([]*model.User, error) {
	return s.store.ListUsers(ctx, query)
}
