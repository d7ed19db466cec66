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

	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/infrastructure/postgres/generated"
	"github.com/chisomo/hospledger/internal/usecase"
)

const pgErrForeignKeyViolation = "23503"

// JournalRepository implements usecase.JournalRepository. Entry headers and
// lines live in separate tables; writes that touch both always run inside
// the caller's transaction.
type JournalRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateEntry inserts an entry header and its lines.
func (r *JournalRepository) CreateEntry(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	if err := queries.CreateJournalEntry(ctx, generated.CreateJournalEntryParams{
		ID:          entry.ID,
		EntryDate:   timeToPgDate(entry.EntryDate),
		Description: entry.Description,
		Reference:   entry.Reference,
		Status:      string(entry.Status),
		CreatedBy:   entry.CreatedBy,
		CreatedAt:   timeToPgTimestamptz(entry.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(entry.UpdatedAt),
		PostedAt:    timePtrToPgTimestamptz(entry.PostedAt),
	}); err != nil {
		return err
	}

	return insertLines(ctx, queries, entry.ID, entry.Lines)
}

// GetByID retrieves an entry with its lines.
func (r *JournalRepository) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row, err := r.queries.GetJournalEntry(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	lines, err := r.queries.GetJournalLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return rowToEntry(row, lines), nil
}

// GetByIDForUpdate retrieves an entry with its lines, locking the header row
// for the length of the transaction.
func (r *JournalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.JournalEntry, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	row, err := queries.GetJournalEntryForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	lines, err := queries.GetJournalLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return rowToEntry(row, lines), nil
}

// ReplaceDraft rewrites the header fields and the whole line set. The caller
// holds the row lock and has already checked the entry is a draft.
func (r *JournalRepository) ReplaceDraft(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	if err := queries.UpdateJournalEntryHeader(ctx, generated.UpdateJournalEntryHeaderParams{
		ID:          entry.ID,
		EntryDate:   timeToPgDate(entry.EntryDate),
		Description: entry.Description,
		Reference:   entry.Reference,
		UpdatedAt:   timeToPgTimestamptz(entry.UpdatedAt),
	}); err != nil {
		return err
	}

	if err := queries.DeleteJournalLines(ctx, entry.ID); err != nil {
		return err
	}

	return insertLines(ctx, queries, entry.ID, entry.Lines)
}

// SetStatus updates the entry's status and timestamps.
func (r *JournalRepository) SetStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.EntryStatus, postedAt *time.Time, updatedAt time.Time) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	affected, err := queries.SetJournalEntryStatus(ctx, generated.SetJournalEntryStatusParams{
		ID:        id,
		Status:    string(status),
		PostedAt:  timePtrToPgTimestamptz(postedAt),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// ListByDateRange retrieves entries with entry dates in [start, end],
// ordered by entry date then id.
func (r *JournalRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.ListJournalEntriesByDateRange(ctx, generated.ListJournalEntriesByDateRangeParams{
		EntryDate:   timeToPgDate(start),
		EntryDate_2: timeToPgDate(end),
	})
	if err != nil {
		return nil, err
	}

	return r.attachLines(ctx, rows)
}

// ListByAccount retrieves entries carrying at least one line on the account.
func (r *JournalRepository) ListByAccount(ctx context.Context, accountCode string) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.ListJournalEntriesByAccount(ctx, accountCode)
	if err != nil {
		return nil, err
	}

	return r.attachLines(ctx, rows)
}

func (r *JournalRepository) attachLines(ctx context.Context, rows []generated.JournalEntry) ([]*domain.JournalEntry, error) {
	if len(rows) == 0 {
		return []*domain.JournalEntry{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	lines, err := r.queries.GetJournalLinesForEntries(ctx, ids)
	if err != nil {
		return nil, err
	}

	byEntry := make(map[string][]generated.JournalLine, len(rows))
	for _, line := range lines {
		byEntry[line.EntryID] = append(byEntry[line.EntryID], line)
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row, byEntry[row.ID]))
	}

	return entries, nil
}

func insertLines(ctx context.Context, queries *generated.Queries, entryID string, lines []domain.JournalLine) error {
	for i, line := range lines {
		debit, err := decimalToNumeric(line.Debit)
		if err != nil {
			return fmt.Errorf("line %d debit: %w", i, err)
		}

		credit, err := decimalToNumeric(line.Credit)
		if err != nil {
			return fmt.Errorf("line %d credit: %w", i, err)
		}

		if err := queries.CreateJournalLine(ctx, generated.CreateJournalLineParams{
			EntryID:     entryID,
			LineOrdinal: int32(i),
			AccountCode: line.AccountCode,
			Debit:       debit,
			Credit:      credit,
			Memo:        line.Memo,
		}); err != nil {
			return mapLineInsertError(err, i, line.AccountCode)
		}
	}

	return nil
}

// mapLineInsertError translates a foreign key violation on the line's account
// reference into the domain error callers report as a validation failure.
func mapLineInsertError(err error, line int, accountCode string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
		return &domain.InvalidAccountError{Line: line, AccountCode: accountCode}
	}

	return err
}

func rowToEntry(row generated.JournalEntry, lineRows []generated.JournalLine) *domain.JournalEntry {
	lines := make([]domain.JournalLine, 0, len(lineRows))
	for _, l := range lineRows {
		lines = append(lines, domain.JournalLine{
			AccountCode: l.AccountCode,
			Debit:       numericToDecimal(l.Debit),
			Credit:      numericToDecimal(l.Credit),
			Memo:        l.Memo,
		})
	}

	return &domain.JournalEntry{
		ID:          row.ID,
		EntryDate:   row.EntryDate.Time,
		Description: row.Description,
		Reference:   row.Reference,
		Status:      domain.EntryStatus(row.Status),
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
		PostedAt:    pgTimestamptzToTimePtr(row.PostedAt),
		Lines:       lines,
	}
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func pgTimestamptzToTimePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}

	t := ts.Time

	return &t
}
