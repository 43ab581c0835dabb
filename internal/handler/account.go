package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerd/ledgerd/internal/handler/dto"
	"github.com/ledgerd/ledgerd/internal/model"
	"github.com/ledgerd/ledgerd/internal/service"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	svc    *service.AccountService
	logger *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	if accounts == nil {
		accounts = []*model.Account{}
	}

	writeJSON(w, http.StatusOK, accounts)
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.CreateAccountInput{
		ID:      req.ID,
		OwnerID: req.OwnerID,
	}

	account, err := h.svc.CreateAccount(r.Context(), input)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("account_created",
		"account_id", account.ID,
		"owner_id", account.OwnerID,
	)

	writeJSON(w, http.StatusCreated, account)
}

// GetBalance handles GET /accounts/{id}/balance.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	balance, err := h.svc.GetBalance(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// AdjustBalance handles PUT /accounts/{id}/balance.
// The body's value is added to the current balance; this endpoint has never
// been an absolute assignment.
func (h *AccountHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.AdjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.AdjustBalanceInput{
		AccountID: id,
		Value:     req.Value,
	}

	account, err := h.svc.AdjustBalance(r.Context(), input)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("balance_adjusted",
		"account_id", account.ID,
		"balance", account.Balance,
	)

	writeJSON(w, http.StatusOK, account)
}

// ListAdjustments handles GET /accounts/{id}/adjustments.
func (h *AccountHandler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	adjustments, err := h.svc.ListAdjustments(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	if adjustments == nil {
		adjustments = []*model.BalanceAdjustment{}
	}

	writeJSON(w, http.StatusOK, adjustments)
}
