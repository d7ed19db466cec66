package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/usecase"
)

// DateFormat is the wire format for entry and report dates.
const DateFormat = "2006-01-02"

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code: r.Code,
		Name: r.Name,
		Type: domain.AccountType(r.Type),
	}
}

// LineRequest represents one journal line in a request.
type LineRequest struct {
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo,omitempty"`
}

// CreateEntryRequest represents a request to create a draft journal entry.
type CreateEntryRequest struct {
	EntryDate   string        `json:"entry_date"`
	Description string        `json:"description"`
	Reference   string        `json:"reference"`
	CreatedBy   string        `json:"created_by"`
	Lines       []LineRequest `json:"lines"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateDraftInput, error) {
	entryDate, err := parseDate(r.EntryDate)
	if err != nil {
		return usecase.CreateDraftInput{}, err
	}

	return usecase.CreateDraftInput{
		EntryDate:   entryDate,
		Description: r.Description,
		Reference:   r.Reference,
		CreatedBy:   r.CreatedBy,
		Lines:       linesToInput(r.Lines),
	}, nil
}

// UpdateEntryRequest represents a request to replace a draft's header and
// full line set.
type UpdateEntryRequest struct {
	EntryDate   string        `json:"entry_date"`
	Description string        `json:"description"`
	Reference   string        `json:"reference"`
	Lines       []LineRequest `json:"lines"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateEntryRequest) ToUseCaseInput() (usecase.UpdateDraftInput, error) {
	entryDate, err := parseDate(r.EntryDate)
	if err != nil {
		return usecase.UpdateDraftInput{}, err
	}

	return usecase.UpdateDraftInput{
		EntryDate:   entryDate,
		Description: r.Description,
		Reference:   r.Reference,
		Lines:       linesToInput(r.Lines),
	}, nil
}

// ReverseEntryRequest represents a request to reverse a posted entry.
type ReverseEntryRequest struct {
	ReversedBy string `json:"reversed_by"`
}

func linesToInput(lines []LineRequest) []usecase.LineInput {
	result := make([]usecase.LineInput, len(lines))
	for i, l := range lines {
		result[i] = usecase.LineInput{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
		}
	}
	return result
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
