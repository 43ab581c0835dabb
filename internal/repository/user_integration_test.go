package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerd/ledgerd/internal/model"
	"github.com/ledgerd/ledgerd/internal/repository"
)

func TestCreateUserAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := &model.User{
		ID:       "u1",
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret",
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser() = %v, want nil", err)
	}

	got, err := repo.GetUserByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserByID() = %v, want nil", err)
	}

	if got.ID != user.ID || got.Name != user.Name || got.Email != user.Email {
		t.Errorf("GetUserByID() = %+v, want %+v", got, user)
	}
	// Passwords are stored verbatim, not hashed.
	if got.Password != "secret" {
		t.Errorf("Password = %q, want %q", got.Password, "secret")
	}
}

func TestCreateUserDuplicateID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := &model.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Password: "p"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser() = %v, want nil", err)
	}

	dup := &model.User{ID: "u1", Name: "Other", Email: "other@example.com", Password: "p"}
	err := repo.CreateUser(ctx, dup)
	if !errors.Is(err, repository.ErrUserExists) {
		t.Fatalf("CreateUser() duplicate = %v, want ErrUserExists", err)
	}

	// The original row is untouched.
	got, err := repo.GetUserByID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserByID() = %v, want nil", err)
	}
	if got.Name != "Ana" {
		t.Errorf("Name = %q, want %q", got.Name, "Ana")
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetUserByID(context.Background(), "missing")
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("GetUserByID() = %v, want ErrUserNotFound", err)
	}
}

func TestListUsersFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seed := []*model.User{
		{ID: "u1", Name: "Ana", Email: "ana@example.com", Password: "p"},
		{ID: "u2", Name: "Mariana", Email: "mariana@example.com", Password: "p"},
		{ID: "u3", Name: "Bruno", Email: "bruno@example.com", Password: "p"},
	}
	for _, u := range seed {
		if err := repo.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser(%s) = %v, want nil", u.ID, err)
		}
	}

	tests := []struct {
		name      string
		nameQuery string
		wantIDs   []string
	}{
		{name: "no_filter", nameQuery: "", wantIDs: []string{"u1", "u2", "u3"}},
		{name: "substring_match", nameQuery: "ana", wantIDs: []string{"u2"}},
		{name: "prefix_match", nameQuery: "Ana", wantIDs: []string{"u1"}},
		{name: "no_match", nameQuery: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.ListUsers(ctx, tt.nameQuery)
			if err != nil {
				t.Fatalf("ListUsers(%q) = %v, want nil", tt.nameQuery, err)
			}

			var gotIDs []string
			for _, u := range users {
				gotIDs = append(gotIDs, u.ID)
			}

			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("ListUsers(%q) ids = %v, want %v", tt.nameQuery, gotIDs, tt.wantIDs)
			}
			for i := range tt.wantIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("ListUsers(%q) ids = %v, want %v", tt.nameQuery, gotIDs, tt.wantIDs)
					break
				}
			}
		})
	}
}
