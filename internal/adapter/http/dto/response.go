package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Code:      a.Code,
		Name:      a.Name,
		Type:      string(a.Type),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// LineResponse represents a journal line in API responses.
type LineResponse struct {
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo,omitempty"`
}

// EntryResponse represents a journal entry in API responses.
type EntryResponse struct {
	ID          string         `json:"id"`
	EntryDate   string         `json:"entry_date"`
	Description string         `json:"description"`
	Reference   string         `json:"reference"`
	Status      string         `json:"status"`
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	PostedAt    *time.Time     `json:"posted_at,omitempty"`
	Lines       []LineResponse `json:"lines"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.JournalEntry) *EntryResponse {
	lines := make([]LineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = LineResponse{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
		}
	}

	return &EntryResponse{
		ID:          e.ID,
		EntryDate:   e.EntryDate.Format(DateFormat),
		Description: e.Description,
		Reference:   e.Reference,
		Status:      string(e.Status),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		PostedAt:    e.PostedAt,
		Lines:       lines,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// BalanceResponse represents a derived account balance.
type BalanceResponse struct {
	AccountCode string          `json:"account_code"`
	AsOf        string          `json:"as_of"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceRowResponse is one account row of a trial balance.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents a trial balance report.
type TrialBalanceResponse struct {
	AsOf        string                    `json:"as_of"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"total_debit"`
	TotalCredit decimal.Decimal           `json:"total_credit"`
	Balanced    bool                      `json:"balanced"`
}

// TrialBalanceFromDomain converts a domain trial balance to a response.
func TrialBalanceFromDomain(r *domain.TrialBalanceReport) *TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}

	return &TrialBalanceResponse{
		AsOf:        r.AsOf.Format(DateFormat),
		Rows:        rows,
		TotalDebit:  r.TotalDebit,
		TotalCredit: r.TotalCredit,
		Balanced:    r.Balanced,
	}
}

// StatementLineResponse is one account line of a financial statement.
type StatementLineResponse struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents an income statement.
type IncomeStatementResponse struct {
	PeriodStart   string                  `json:"period_start"`
	PeriodEnd     string                  `json:"period_end"`
	Revenue       []StatementLineResponse `json:"revenue"`
	Expenses      []StatementLineResponse `json:"expenses"`
	TotalRevenue  decimal.Decimal         `json:"total_revenue"`
	TotalExpenses decimal.Decimal         `json:"total_expenses"`
	NetResult     decimal.Decimal         `json:"net_result"`
}

// IncomeStatementFromDomain converts a domain income statement to a response.
func IncomeStatementFromDomain(s *domain.IncomeStatement) *IncomeStatementResponse {
	return &IncomeStatementResponse{
		PeriodStart:   s.PeriodStart.Format(DateFormat),
		PeriodEnd:     s.PeriodEnd.Format(DateFormat),
		Revenue:       statementLines(s.Revenue),
		Expenses:      statementLines(s.Expenses),
		TotalRevenue:  s.TotalRevenue,
		TotalExpenses: s.TotalExpenses,
		NetResult:     s.NetResult,
	}
}

// BalanceSheetResponse represents a balance sheet.
type BalanceSheetResponse struct {
	AsOf             string                  `json:"as_of"`
	Assets           []StatementLineResponse `json:"assets"`
	Liabilities      []StatementLineResponse `json:"liabilities"`
	Equity           []StatementLineResponse `json:"equity"`
	TotalAssets      decimal.Decimal         `json:"total_assets"`
	TotalLiabilities decimal.Decimal         `json:"total_liabilities"`
	TotalEquity      decimal.Decimal         `json:"total_equity"`
}

// BalanceSheetFromDomain converts a domain balance sheet to a response.
func BalanceSheetFromDomain(s *domain.BalanceSheet) *BalanceSheetResponse {
	return &BalanceSheetResponse{
		AsOf:             s.AsOf.Format(DateFormat),
		Assets:           statementLines(s.Assets),
		Liabilities:      statementLines(s.Liabilities),
		Equity:           statementLines(s.Equity),
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		TotalEquity:      s.TotalEquity,
	}
}

func statementLines(lines []domain.StatementLine) []StatementLineResponse {
	result := make([]StatementLineResponse, len(lines))
	for i, l := range lines {
		result[i] = StatementLineResponse{
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Amount:      l.Amount,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
