package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chisomo/hospledger/internal/adapter/http/dto"
	"github.com/chisomo/hospledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Validation errors
// are 422 so callers can distinguish a rejected entry from a malformed
// request; state errors are 409 because the caller's next move is a
// different operation, not a corrected payload.
func mapDomainError(err error) int {
	var (
		invalidAccount *domain.InvalidAccountError
		ambiguousLine  *domain.AmbiguousLineError
		unbalanced     *domain.UnbalancedEntryError
	)

	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrDuplicateAccountCode),
		errors.Is(err, domain.ErrEntryNotEditable),
		errors.Is(err, domain.ErrEntryAlreadyPosted),
		errors.Is(err, domain.ErrEntryNotPostable),
		errors.Is(err, domain.ErrEntryNotReversible):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInsufficientLines),
		errors.Is(err, domain.ErrMissingAccountCode),
		errors.As(err, &invalidAccount),
		errors.As(err, &ambiguousLine),
		errors.As(err, &unbalanced):
		return http.StatusUnprocessableEntity

	case errors.Is(err, domain.ErrInvalidAccountType),
		errors.Is(err, domain.ErrInvalidAccountCode):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// postingFailureReason labels a posting error for metrics.
func postingFailureReason(err error) string {
	var (
		invalidAccount *domain.InvalidAccountError
		ambiguousLine  *domain.AmbiguousLineError
		unbalanced     *domain.UnbalancedEntryError
	)

	switch {
	case errors.As(err, &unbalanced):
		return "unbalanced"
	case errors.As(err, &invalidAccount):
		return "invalid_account"
	case errors.As(err, &ambiguousLine):
		return "ambiguous_line"
	case errors.Is(err, domain.ErrInsufficientLines):
		return "insufficient_lines"
	case errors.Is(err, domain.ErrEntryAlreadyPosted):
		return "already_posted"
	case errors.Is(err, domain.ErrEntryNotFound):
		return "not_found"
	default:
		return "other"
	}
}

// parseDateQuery parses a YYYY-MM-DD query parameter, defaulting when absent.
func parseDateQuery(r *http.Request, key string, defaultValue time.Time) (time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue, nil
	}
	return time.Parse(dto.DateFormat, val)
}
