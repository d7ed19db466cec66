package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/usecase"
	"github.com/chisomo/hospledger/internal/usecase/mocks"
)

type reportFixture struct {
	journal   *usecase.JournalUseCase
	accounts  *usecase.AccountUseCase
	reporting *usecase.ReportingUseCase
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	accountRepo := mocks.NewMockAccountRepository()
	journalRepo := mocks.NewMockJournalRepository()
	reportingRepo := mocks.NewMockReportingRepository()
	reportingRepo.FromJournal(journalRepo, accountRepo)

	for _, a := range []*domain.Account{
		{Code: "1000", Name: "Cash on Hand", Type: domain.TypeAsset, IsActive: true},
		{Code: "2100", Name: "Accounts Payable", Type: domain.TypeLiability, IsActive: true},
		{Code: "3000", Name: "Retained Earnings", Type: domain.TypeEquity, IsActive: true},
		{Code: "4100", Name: "OPD Revenue", Type: domain.TypeRevenue, IsActive: true},
		{Code: "5200", Name: "Drug Expense", Type: domain.TypeExpense, IsActive: true},
	} {
		if err := accountRepo.Create(context.Background(), a); err != nil {
			t.Fatalf("seed account %s: %v", a.Code, err)
		}
	}

	journal := usecase.NewJournalUseCase(
		mocks.NewMockTransactionManager(),
		journalRepo,
		accountRepo,
		mocks.NewMockIDGenerator(),
		mocks.PassthroughRetrier{},
		nil,
		zerolog.Nop(),
	)

	return &reportFixture{
		journal:   journal,
		accounts:  usecase.NewAccountUseCase(accountRepo),
		reporting: usecase.NewReportingUseCase(reportingRepo, accountRepo),
	}
}

func (f *reportFixture) mustPost(t *testing.T, entryDate time.Time, lines ...usecase.LineInput) *domain.JournalEntry {
	t.Helper()

	entry, err := f.journal.CreateDraft(context.Background(), usecase.CreateDraftInput{
		EntryDate: entryDate,
		CreatedBy: "tester",
		Lines:     lines,
	})
	if err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	posted, err := f.journal.PostEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("PostEntry: %v", err)
	}
	return posted
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTrialBalance_BalancedTotals(t *testing.T) {
	f := newReportFixture(t)

	asOf := date(2026, 3, 31)
	f.mustPost(t, date(2026, 3, 10),
		usecase.LineInput{AccountCode: "1000", Debit: dec("800.00")},
		usecase.LineInput{AccountCode: "4100", Credit: dec("800.00")},
	)
	f.mustPost(t, date(2026, 3, 12),
		usecase.LineInput{AccountCode: "5200", Debit: dec("150.00")},
		usecase.LineInput{AccountCode: "2100", Credit: dec("150.00")},
	)

	report, err := f.reporting.TrialBalance(context.Background(), asOf)
	if err != nil {
		t.Fatalf("TrialBalance: %v", err)
	}

	if !report.Balanced {
		t.Error("expected balanced report")
	}
	if !report.TotalDebit.Equal(report.TotalCredit) {
		t.Errorf("totals differ: debit %s, credit %s", report.TotalDebit, report.TotalCredit)
	}
	if !report.TotalDebit.Equal(dec("950.00")) {
		t.Errorf("total debit = %s, want 950.00", report.TotalDebit)
	}

	// Every active account appears, including the untouched equity account.
	if len(report.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(report.Rows))
	}
	for i := 1; i < len(report.Rows); i++ {
		if report.Rows[i].AccountCode < report.Rows[i-1].AccountCode {
			t.Errorf("rows not ordered by code: %s before %s", report.Rows[i-1].AccountCode, report.Rows[i].AccountCode)
		}
	}
}

func TestTrialBalance_ColumnFlipOnNegativeBalance(t *testing.T) {
	f := newReportFixture(t)

	// Cash goes net credit: an overdrawn debit-normal account must show in
	// the credit column rather than as a negative debit.
	f.mustPost(t, date(2026, 3, 10),
		usecase.LineInput{AccountCode: "5200", Debit: dec("200.00")},
		usecase.LineInput{AccountCode: "1000", Credit: dec("200.00")},
	)

	report, err := f.reporting.TrialBalance(context.Background(), date(2026, 3, 31))
	if err != nil {
		t.Fatalf("TrialBalance: %v", err)
	}

	var cash *domain.TrialBalanceRow
	for i := range report.Rows {
		if report.Rows[i].AccountCode == "1000" {
			cash = &report.Rows[i]
		}
	}
	if cash == nil {
		t.Fatal("cash row missing")
	}
	if !cash.Debit.IsZero() || !cash.Credit.Equal(dec("200.00")) {
		t.Errorf("cash row = debit %s credit %s, want credit 200.00", cash.Debit, cash.Credit)
	}
	if !report.Balanced {
		t.Error("expected balanced report")
	}
}

func TestTrialBalance_InactiveAccounts(t *testing.T) {
	f := newReportFixture(t)

	f.mustPost(t, date(2026, 3, 10),
		usecase.LineInput{AccountCode: "1000", Debit: dec("300.00")},
		usecase.LineInput{AccountCode: "4100", Credit: dec("300.00")},
	)

	// Inactive with history stays on the report; inactive without drops off.
	if err := f.accounts.DeactivateAccount(context.Background(), "4100"); err != nil {
		t.Fatalf("DeactivateAccount: %v", err)
	}
	if err := f.accounts.DeactivateAccount(context.Background(), "3000"); err != nil {
		t.Fatalf("DeactivateAccount: %v", err)
	}

	report, err := f.reporting.TrialBalance(context.Background(), date(2026, 3, 31))
	if err != nil {
		t.Fatalf("TrialBalance: %v", err)
	}

	codes := make(map[string]bool)
	for _, row := range report.Rows {
		codes[row.AccountCode] = true
	}
	if !codes["4100"] {
		t.Error("inactive account with nonzero balance missing from report")
	}
	if codes["3000"] {
		t.Error("inactive account with zero balance should be dropped")
	}
	if !report.Balanced {
		t.Error("deactivation must not unbalance past reports")
	}
}

func TestIncomeStatement_PeriodDelta(t *testing.T) {
	f := newReportFixture(t)

	// February activity must not leak into the March statement.
	f.mustPost(t, date(2026, 2, 20),
		usecase.LineInput{AccountCode: "1000", Debit: dec("1000.00")},
		usecase.LineInput{AccountCode: "4100", Credit: dec("1000.00")},
	)
	f.mustPost(t, date(2026, 3, 5),
		usecase.LineInput{AccountCode: "1000", Debit: dec("400.00")},
		usecase.LineInput{AccountCode: "4100", Credit: dec("400.00")},
	)
	f.mustPost(t, date(2026, 3, 18),
		usecase.LineInput{AccountCode: "5200", Debit: dec("120.00")},
		usecase.LineInput{AccountCode: "2100", Credit: dec("120.00")},
	)

	statement, err := f.reporting.IncomeStatement(context.Background(), date(2026, 3, 1), date(2026, 3, 31))
	if err != nil {
		t.Fatalf("IncomeStatement: %v", err)
	}

	if !statement.TotalRevenue.Equal(dec("400.00")) {
		t.Errorf("revenue = %s, want 400.00", statement.TotalRevenue)
	}
	if !statement.TotalExpenses.Equal(dec("120.00")) {
		t.Errorf("expenses = %s, want 120.00", statement.TotalExpenses)
	}
	if !statement.NetResult.Equal(dec("280.00")) {
		t.Errorf("net result = %s, want 280.00", statement.NetResult)
	}
	if len(statement.Revenue) != 1 || statement.Revenue[0].AccountCode != "4100" {
		t.Errorf("revenue lines = %+v", statement.Revenue)
	}
}

func TestBalanceSheet(t *testing.T) {
	f := newReportFixture(t)

	f.mustPost(t, date(2026, 3, 10),
		usecase.LineInput{AccountCode: "1000", Debit: dec("500.00")},
		usecase.LineInput{AccountCode: "3000", Credit: dec("500.00")},
	)
	f.mustPost(t, date(2026, 3, 12),
		usecase.LineInput{AccountCode: "1000", Debit: dec("250.00")},
		usecase.LineInput{AccountCode: "2100", Credit: dec("250.00")},
	)

	sheet, err := f.reporting.BalanceSheet(context.Background(), date(2026, 3, 31))
	if err != nil {
		t.Fatalf("BalanceSheet: %v", err)
	}

	if !sheet.TotalAssets.Equal(dec("750.00")) {
		t.Errorf("assets = %s, want 750.00", sheet.TotalAssets)
	}
	if !sheet.TotalLiabilities.Equal(dec("250.00")) {
		t.Errorf("liabilities = %s, want 250.00", sheet.TotalLiabilities)
	}
	if !sheet.TotalEquity.Equal(dec("500.00")) {
		t.Errorf("equity = %s, want 500.00", sheet.TotalEquity)
	}
	if !sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)) {
		t.Error("accounting equation violated")
	}
}

func TestTrialBalance_AsOfDateCutoff(t *testing.T) {
	f := newReportFixture(t)

	f.mustPost(t, date(2026, 3, 10),
		usecase.LineInput{AccountCode: "1000", Debit: dec("100.00")},
		usecase.LineInput{AccountCode: "4100", Credit: dec("100.00")},
	)
	f.mustPost(t, date(2026, 4, 2),
		usecase.LineInput{AccountCode: "1000", Debit: dec("60.00")},
		usecase.LineInput{AccountCode: "4100", Credit: dec("60.00")},
	)

	report, err := f.reporting.TrialBalance(context.Background(), date(2026, 3, 31))
	if err != nil {
		t.Fatalf("TrialBalance: %v", err)
	}

	if !report.TotalDebit.Equal(dec("100.00")) {
		t.Errorf("total debit = %s, want 100.00 (April entry excluded)", report.TotalDebit)
	}
}
