package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/adapter/http/dto"
	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/infrastructure/metrics"
	"github.com/chisomo/hospledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, code string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, code string) error
	ReactivateAccount(ctx context.Context, code string) error
	ListActive(ctx context.Context) ([]*domain.Account, error)
	ListAll(ctx context.Context) ([]*domain.Account, error)
}

// BalanceService defines the balance reads needed by AccountHandler.
type BalanceService interface {
	BalanceAsOf(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, error)
}

// AccountHandler handles chart-of-accounts HTTP requests.
type AccountHandler struct {
	accountUC AccountService
	balanceUC BalanceService
	metrics   *metrics.Metrics
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, balanceUC BalanceService, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		balanceUC: balanceUC,
		metrics:   m,
	}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	h.metrics.AccountsCreated.Inc()

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by code.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	account, err := h.accountUC.GetAccount(r.Context(), code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts. ?active=true restricts to active accounts, which is
// what entry forms use to populate their account pickers.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		accounts []*domain.Account
		err      error
	)

	if r.URL.Query().Get("active") == "true" {
		accounts, err = h.accountUC.ListActive(r.Context())
	} else {
		accounts, err = h.accountUC.ListAll(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// Deactivate removes the account from future entry selection. History is
// untouched.
func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.accountUC.DeactivateAccount(r.Context(), code); err != nil {
		writeError(w, mapDomainError(err), "failed to deactivate account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// Reactivate makes the account selectable again.
func (h *AccountHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.accountUC.ReactivateAccount(r.Context(), code); err != nil {
		writeError(w, mapDomainError(err), "failed to reactivate account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reactivated"})
}

// GetBalance returns the account's derived balance as of a date
// (?as_of=YYYY-MM-DD, defaulting to today).
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	asOf, err := parseDateQuery(r, "as_of", time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid as_of date", err.Error())
		return
	}

	balance, err := h.balanceUC.BalanceAsOf(r.Context(), code, asOf)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountCode: code,
		AsOf:        asOf.Format(dto.DateFormat),
		Balance:     balance,
	})
}
