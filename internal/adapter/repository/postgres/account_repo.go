package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/infrastructure/postgres/generated"
)

const pgErrUniqueViolation = "23505"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.queries.CreateAccount(ctx, generated.CreateAccountParams{
		Code:      account.Code,
		Name:      account.Name,
		Type:      string(account.Type),
		IsActive:  account.IsActive,
		CreatedAt: timeToPgTimestamptz(account.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(account.UpdatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateAccountCode
		}

		return err
	}

	return nil
}

// GetByCode retrieves an account by its code.
func (r *AccountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// GetByCodes retrieves the accounts matching the given codes. Codes with no
// matching account are silently absent from the result.
func (r *AccountRepository) GetByCodes(ctx context.Context, codes []string) ([]*domain.Account, error) {
	rows, err := r.queries.GetAccountsByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

// SetActive flips the account's active flag.
func (r *AccountRepository) SetActive(ctx context.Context, code string, active bool, updatedAt time.Time) error {
	affected, err := r.queries.SetAccountActive(ctx, generated.SetAccountActiveParams{
		Code:      code,
		IsActive:  active,
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// List retrieves accounts ordered by code.
func (r *AccountRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Account, error) {
	var (
		rows []generated.Account
		err  error
	)

	if activeOnly {
		rows, err = r.queries.ListActiveAccounts(ctx)
	} else {
		rows, err = r.queries.ListAccounts(ctx)
	}
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		Code:      row.Code,
		Name:      row.Name,
		Type:      domain.AccountType(row.Type),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func decimalToNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric

	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("convert %s to numeric: %w", d, err)
	}

	return n, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}
