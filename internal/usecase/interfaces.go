package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	GetByCodes(ctx context.Context, codes []string) ([]*domain.Account, error)
	SetActive(ctx context.Context, code string, active bool, updatedAt time.Time) error
	List(ctx context.Context, activeOnly bool) ([]*domain.Account, error)
}

// JournalRepository defines data access for journal entries and their lines.
type JournalRepository interface {
	CreateEntry(ctx context.Context, tx Transaction, entry *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	// GetByIDForUpdate locks the entry header row for the length of tx.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.JournalEntry, error)
	// ReplaceDraft rewrites the header fields and the full line set of a draft.
	ReplaceDraft(ctx context.Context, tx Transaction, entry *domain.JournalEntry) error
	SetStatus(ctx context.Context, tx Transaction, id string, status domain.EntryStatus, postedAt *time.Time, updatedAt time.Time) error
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.JournalEntry, error)
	ListByAccount(ctx context.Context, accountCode string) ([]*domain.JournalEntry, error)
}

// ReportingRepository aggregates posted line activity per account. Drafts
// never contribute; reversed entries remain in the aggregate and their posted
// mirrors cancel them. Each call is a single statement so the result is a
// consistent snapshot.
type ReportingRepository interface {
	ActivityAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error)
	ActivityForPeriod(ctx context.Context, start, end time.Time) ([]domain.AccountActivity, error)
	AccountActivityAsOf(ctx context.Context, codes []string, asOf time.Time) ([]domain.AccountActivity, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when storage reports a transient conflict.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// BalanceCache memoizes derived balances keyed by (account, asOfDate). It is
// a pure optimization: a miss or an error always falls through to the
// aggregate query, and Invalidate discards every cached value at once. Get
// reports the cache generation it observed; Set stores under that generation,
// so a recomputed value cannot outlive an invalidation that raced the
// recompute.
type BalanceCache interface {
	Get(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, int64, bool, error)
	Set(ctx context.Context, accountCode string, asOf time.Time, balance decimal.Decimal, gen int64) error
	Invalidate(ctx context.Context) error
}
