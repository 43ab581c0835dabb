package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerd/ledgerd/internal/metrics"
	"github.com/ledgerd/ledgerd/internal/testutil"
)

func validUserInput() CreateUserInput {
	return CreateUserInput{
		ID:       "u1",
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "p",
	}
}

func TestCreateUserFieldTypes(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateUserInput)
		wantField string
	}{
		{"id_not_string", func(in *CreateUserInput) { in.ID = 42.0 }, "id"},
		{"name_not_string", func(in *CreateUserInput) { in.Name = true }, "name"},
		{"email_not_string", func(in *CreateUserInput) { in.Email = nil }, "email"},
		{"password_not_string", func(in *CreateUserInput) { in.Password = []any{"p"} }, "password"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := testutil.NewMemStore()
			svc := NewUserService(store, nil)

			input := validUserInput()
			test.mutate(&input)

			_, err := svc.CreateUser(context.Background(), input)

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fieldErr.Field != test.wantField {
				t.Errorf("expected field %q, got %q", test.wantField, fieldErr.Field)
			}

			// No partial insert.
			users, err := store.ListUsers(context.Background(), "")
			if err != nil {
				t.Fatalf("list users: %v", err)
			}
			if len(users) != 0 {
				t.Errorf("expected no users persisted, got %d", len(users))
			}
		})
	}
}

func TestCreateUserEmptyStringsAllowed(t *testing.T) {
	svc := NewUserService(testutil.NewMemStore(), nil)

	// Only the JSON type is enforced; empty strings pass.
	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		ID:       "u1",
		Name:     "",
		Email:    "",
		Password: "",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("expected id u1, got %q", user.ID)
	}
}

func TestCreateUserDuplicateID(t *testing.T) {
	svc := NewUserService(testutil.NewMemStore(), nil)

	if _, err := svc.CreateUser(context.Background(), validUserInput()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Same id, entirely different other fields.
	input := CreateUserInput{ID: "u1", Name: "Bob", Email: "b@x.com", Password: "q"}
	_, err := svc.CreateUser(context.Background(), input)
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCreateUserReturnsPersistedRow(t *testing.T) {
	svc := NewUserService(testutil.NewMemStore(), nil)

	user, err := svc.CreateUser(context.Background(), validUserInput())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if user.Name != "Ana" || user.Email != "a@x.com" || user.Password != "p" {
		t.Errorf("unexpected persisted user: %+v", user)
	}
}

func TestCreateUserRecordsMetric(t *testing.T) {
	recorder := metrics.NewInMemory()
	svc := NewUserService(testutil.NewMemStore(), recorder)

	if _, err := svc.CreateUser(context.Background(), validUserInput()); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if got := recorder.Snapshot().UsersCreated; got != 1 {
		t.Errorf("expected 1 user created metric, got %d", got)
	}
}

func TestListUsersSubstringFilter(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewUserService(store, nil)

	seed := []CreateUserInput{
		{ID: "u1", Name: "Ana", Email: "a@x.com", Password: "p"},
		{ID: "u2", Name: "Mariana", Email: "m@x.com", Password: "p"},
		{ID: "u3", Name: "Bruno", Email: "b@x.com", Password: "p"},
	}
	for _, in := range seed {
		if _, err := svc.CreateUser(context.Background(), in); err != nil {
			t.Fatalf("seed user %v: %v", in.ID, err)
		}
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty_query_returns_all", "", []string{"u1", "u2", "u3"}},
		{"case_sensitive_match", "ana", []string{"u2"}},
		{"prefix_match", "An", []string{"u1"}},
		{"no_match", "zzz", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			users, err := svc.ListUsers(context.Background(), test.query)
			if err != nil {
				t.Fatalf("list users: %v", err)
			}
			if len(users) != len(test.wantIDs) {
				t.Fatalf("expected %d users, got %d", len(test.wantIDs), len(users))
			}
			for i, want := range test.wantIDs {
				if users[i].ID != want {
					t.Errorf("user %d: expected %s, got %s", i, want, users[i].ID)
				}
			}
		})
	}
}
