package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

// ReportingUseCase composes aggregated posted activity into a trial balance
// and basic financial statements. Reports are stateless pure computations;
// each call reads a fresh snapshot and two calls without intervening posts
// return identical output.
type ReportingUseCase struct {
	reportingRepo ReportingRepository
	accountRepo   AccountRepository
}

// NewReportingUseCase creates a new ReportingUseCase.
func NewReportingUseCase(reportingRepo ReportingRepository, accountRepo AccountRepository) *ReportingUseCase {
	return &ReportingUseCase{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

// TrialBalance lists every active account, plus any inactive account whose
// posted history leaves a nonzero balance, with its net balance on the
// appropriate column as of asOf.
func (uc *ReportingUseCase) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, err := uc.accountRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	activity, err := uc.reportingRepo.ActivityAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}

	activityByCode := make(map[string]domain.AccountActivity, len(activity))
	for _, act := range activity {
		activityByCode[act.AccountCode] = act
	}

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	// accounts come back ordered by code, so rows are too.
	for _, account := range accounts {
		act, hasActivity := activityByCode[account.Code]
		if !hasActivity {
			if !account.IsActive {
				continue
			}

			act = domain.AccountActivity{
				AccountCode: account.Code,
				AccountName: account.Name,
				AccountType: account.Type,
				IsActive:    account.IsActive,
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
			}
		}

		if !account.IsActive && act.NetBalance().IsZero() {
			continue
		}

		row := domain.TrialBalanceRowFor(act)
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}

	diff := report.TotalDebit.Sub(report.TotalCredit).Abs()
	report.Balanced = diff.LessThan(domain.BalanceTolerance)

	return report, nil
}

// IncomeStatement nets revenue against expenses for entries dated inside
// [periodStart, periodEnd]. Revenue and expense accounts are flow accounts:
// the statement uses period activity, not cumulative as-of balances, even
// though the ledger itself never closes them.
func (uc *ReportingUseCase) IncomeStatement(ctx context.Context, periodStart, periodEnd time.Time) (*domain.IncomeStatement, error) {
	activity, err := uc.reportingRepo.ActivityForPeriod(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	statement := &domain.IncomeStatement{
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, act := range activity {
		line := domain.StatementLine{
			AccountCode: act.AccountCode,
			AccountName: act.AccountName,
			Amount:      act.NetBalance(),
		}

		switch act.AccountType {
		case domain.TypeRevenue:
			statement.Revenue = append(statement.Revenue, line)
			statement.TotalRevenue = statement.TotalRevenue.Add(line.Amount)
		case domain.TypeExpense:
			statement.Expenses = append(statement.Expenses, line)
			statement.TotalExpenses = statement.TotalExpenses.Add(line.Amount)
		}
	}

	statement.NetResult = statement.TotalRevenue.Sub(statement.TotalExpenses)

	return statement, nil
}

// BalanceSheet reports cumulative as-of balances for asset, liability and
// equity accounts.
func (uc *ReportingUseCase) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	activity, err := uc.reportingRepo.ActivityAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}

	sheet := &domain.BalanceSheet{
		AsOf:             asOf,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, act := range activity {
		line := domain.StatementLine{
			AccountCode: act.AccountCode,
			AccountName: act.AccountName,
			Amount:      act.NetBalance(),
		}

		switch act.AccountType {
		case domain.TypeAsset:
			sheet.Assets = append(sheet.Assets, line)
			sheet.TotalAssets = sheet.TotalAssets.Add(line.Amount)
		case domain.TypeLiability:
			sheet.Liabilities = append(sheet.Liabilities, line)
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(line.Amount)
		case domain.TypeEquity:
			sheet.Equity = append(sheet.Equity, line)
			sheet.TotalEquity = sheet.TotalEquity.Add(line.Amount)
		}
	}

	return sheet, nil
}
