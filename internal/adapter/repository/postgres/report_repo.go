package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/infrastructure/postgres/generated"
)

// ReportingRepository implements usecase.ReportingRepository. Each method is
// a single aggregate statement, so concurrent posting can never split one
// entry's lines across a report.
type ReportingRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewReportingRepository creates a new ReportingRepository.
func NewReportingRepository(pool *pgxpool.Pool) *ReportingRepository {
	return &ReportingRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// ActivityAsOf sums debits and credits per account over entries dated up to
// and including asOf.
func (r *ReportingRepository) ActivityAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error) {
	rows, err := r.queries.AggregateActivityAsOf(ctx, timeToPgDate(asOf))
	if err != nil {
		return nil, err
	}

	activity := make([]domain.AccountActivity, 0, len(rows))
	for _, row := range rows {
		activity = append(activity, domain.AccountActivity{
			AccountCode: row.Code,
			AccountName: row.Name,
			AccountType: domain.AccountType(row.Type),
			IsActive:    row.IsActive,
			Debit:       numericToDecimal(row.Debit),
			Credit:      numericToDecimal(row.Credit),
		})
	}

	return activity, nil
}

// ActivityForPeriod sums debits and credits per account over entries dated
// inside [start, end].
func (r *ReportingRepository) ActivityForPeriod(ctx context.Context, start, end time.Time) ([]domain.AccountActivity, error) {
	rows, err := r.queries.AggregateActivityForPeriod(ctx, generated.AggregateActivityForPeriodParams{
		EntryDate:   timeToPgDate(start),
		EntryDate_2: timeToPgDate(end),
	})
	if err != nil {
		return nil, err
	}

	activity := make([]domain.AccountActivity, 0, len(rows))
	for _, row := range rows {
		activity = append(activity, domain.AccountActivity{
			AccountCode: row.Code,
			AccountName: row.Name,
			AccountType: domain.AccountType(row.Type),
			IsActive:    row.IsActive,
			Debit:       numericToDecimal(row.Debit),
			Credit:      numericToDecimal(row.Credit),
		})
	}

	return activity, nil
}

// AccountActivityAsOf is ActivityAsOf restricted to the given accounts.
// Accounts without activity produce no row.
func (r *ReportingRepository) AccountActivityAsOf(ctx context.Context, codes []string, asOf time.Time) ([]domain.AccountActivity, error) {
	rows, err := r.queries.AggregateAccountActivityAsOf(ctx, generated.AggregateAccountActivityAsOfParams{
		EntryDate: timeToPgDate(asOf),
		Column2:   codes,
	})
	if err != nil {
		return nil, err
	}

	activity := make([]domain.AccountActivity, 0, len(rows))
	for _, row := range rows {
		activity = append(activity, domain.AccountActivity{
			AccountCode: row.Code,
			AccountName: row.Name,
			AccountType: domain.AccountType(row.Type),
			IsActive:    row.IsActive,
			Debit:       numericToDecimal(row.Debit),
			Credit:      numericToDecimal(row.Credit),
		})
	}

	return activity, nil
}
