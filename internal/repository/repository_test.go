package repository_test

import (
	"context"
	"testing"

	"github.com/ledgerd/ledgerd/internal/repository"
	"github.com/ledgerd/ledgerd/internal/testutil"
)

// newTestRepository connects to the test database, serializes against other
// DB tests, and resets the schema. Skips when TEST_DATABASE_URL is not set.
func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")

	ctx := context.Background()
	repo, err := repository.New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect to test database: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("release db lock: %v", err)
		}
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return repo
}

func TestPing(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() = %v, want nil", err)
	}
}
