package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerd/ledgerd/internal/service"
	"github.com/ledgerd/ledgerd/internal/testutil"
)

// newTestRouter wires the full route table over an in-memory store,
// mirroring the production router in cmd/api.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := testutil.NewMemStore()

	userSvc := service.NewUserService(store, nil)
	accountSvc := service.NewAccountService(store, nil, nil)

	h := New()
	userHandler := NewUserHandler(userSvc, logger)
	accountHandler := NewAccountHandler(accountSvc, logger)

	r := chi.NewRouter()
	r.Get("/ping", h.Ping)
	r.Get("/users", userHandler.List)
	r.Post("/users", userHandler.Create)
	r.Get("/accounts", accountHandler.List)
	r.Post("/accounts", accountHandler.Create)
	r.Get("/accounts/{id}/balance", accountHandler.GetBalance)
	r.Put("/accounts/{id}/balance", accountHandler.AdjustBalance)
	r.Get("/accounts/{id}/adjustments", accountHandler.ListAdjustments)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
