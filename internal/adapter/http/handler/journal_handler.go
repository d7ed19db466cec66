package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chisomo/hospledger/internal/adapter/http/dto"
	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/infrastructure/metrics"
	"github.com/chisomo/hospledger/internal/usecase"
)

// JournalService defines the behavior needed by JournalHandler.
type JournalService interface {
	CreateDraft(ctx context.Context, input usecase.CreateDraftInput) (*domain.JournalEntry, error)
	UpdateDraft(ctx context.Context, id string, input usecase.UpdateDraftInput) (*domain.JournalEntry, error)
	PostEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	ReverseEntry(ctx context.Context, id, reversedBy string) (*domain.JournalEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.JournalEntry, error)
	ListByAccount(ctx context.Context, accountCode string) ([]*domain.JournalEntry, error)
}

// JournalHandler handles journal entry HTTP requests.
type JournalHandler struct {
	journalUC JournalService
	metrics   *metrics.Metrics
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalUC JournalService, m *metrics.Metrics) *JournalHandler {
	return &JournalHandler{
		journalUC: journalUC,
		metrics:   m,
	}
}

// Create creates a new draft entry.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date", err.Error())
		return
	}

	entry, err := h.journalUC.CreateDraft(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create draft", err.Error())
		return
	}

	h.metrics.EntriesDrafted.Inc()

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Get retrieves an entry by ID.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.journalUC.GetEntry(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Update replaces a draft's header fields and whole line set.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry date", err.Error())
		return
	}

	entry, err := h.journalUC.UpdateDraft(r.Context(), id, input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update draft", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Post validates and posts a draft entry.
func (h *JournalHandler) Post(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	start := time.Now()
	entry, err := h.journalUC.PostEntry(r.Context(), id)
	h.metrics.PostingDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		h.metrics.PostingFailures.WithLabelValues(postingFailureReason(err)).Inc()
		writeError(w, mapDomainError(err), "failed to post entry", err.Error())
		return
	}

	h.metrics.EntriesPosted.Inc()

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Reverse posts a mirror entry and marks the original reversed.
func (h *JournalHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ReverseEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	mirror, err := h.journalUC.ReverseEntry(r.Context(), id, req.ReversedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reverse entry", err.Error())
		return
	}

	h.metrics.EntriesReversed.Inc()

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(mirror))
}

// List lists entries with entry dates inside ?start=..&end=.. (defaulting to
// the last 30 days).
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	start, err := parseDateQuery(r, "start", now.AddDate(0, 0, -30))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start date", err.Error())
		return
	}

	end, err := parseDateQuery(r, "end", now)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end date", err.Error())
		return
	}

	entries, err := h.journalUC.ListByDateRange(r.Context(), start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// ListByAccount lists entries touching the account.
func (h *JournalHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	entries, err := h.journalUC.ListByAccount(r.Context(), code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}
