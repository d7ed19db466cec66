package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/chisomo/hospledger/internal/adapter/http/dto"
	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/infrastructure/metrics"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)
	IncomeStatement(ctx context.Context, periodStart, periodEnd time.Time) (*domain.IncomeStatement, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)
}

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	reportUC ReportService
	metrics  *metrics.Metrics
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		metrics:  m,
	}
}

// TrialBalance returns the trial balance as of ?as_of=YYYY-MM-DD (defaulting
// to today).
func (h *ReportHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseDateQuery(r, "as_of", time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid as_of date", err.Error())
		return
	}

	start := time.Now()
	report, err := h.reportUC.TrialBalance(r.Context(), asOf)
	h.metrics.ReportDuration.WithLabelValues("trial_balance").Observe(time.Since(start).Seconds())

	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute trial balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceFromDomain(report))
}

// IncomeStatement returns the income statement for ?start=..&end=.. Both
// bounds are required; a statement without a period is meaningless.
func (h *ReportHandler) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("start") == "" || r.URL.Query().Get("end") == "" {
		writeError(w, http.StatusBadRequest, "missing period", "start and end query parameters are required")
		return
	}

	periodStart, err := parseDateQuery(r, "start", time.Time{})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start date", err.Error())
		return
	}

	periodEnd, err := parseDateQuery(r, "end", time.Time{})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end date", err.Error())
		return
	}

	start := time.Now()
	statement, err := h.reportUC.IncomeStatement(r.Context(), periodStart, periodEnd)
	h.metrics.ReportDuration.WithLabelValues("income_statement").Observe(time.Since(start).Seconds())

	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute income statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeStatementFromDomain(statement))
}

// BalanceSheet returns the balance sheet as of ?as_of=YYYY-MM-DD (defaulting
// to today).
func (h *ReportHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseDateQuery(r, "as_of", time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid as_of date", err.Error())
		return
	}

	start := time.Now()
	sheet, err := h.reportUC.BalanceSheet(r.Context(), asOf)
	h.metrics.ReportDuration.WithLabelValues("balance_sheet").Observe(time.Since(start).Seconds())

	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceSheetFromDomain(sheet))
}
