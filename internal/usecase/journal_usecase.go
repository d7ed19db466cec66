package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

// JournalUseCase owns journal entries and their draft/posted/reversed
// lifecycle. Posting runs inside a row-level transaction on the entry so
// validation and the status transition are one atomic unit.
type JournalUseCase struct {
	txManager   TransactionManager
	journalRepo JournalRepository
	accountRepo AccountRepository
	idGen       IDGenerator
	retrier     Retrier
	cache       BalanceCache
	logger      zerolog.Logger
}

// NewJournalUseCase creates a new JournalUseCase. cache may be nil.
func NewJournalUseCase(
	txManager TransactionManager,
	journalRepo JournalRepository,
	accountRepo AccountRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache BalanceCache,
	logger zerolog.Logger,
) *JournalUseCase {
	return &JournalUseCase{
		txManager:   txManager,
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		idGen:       idGen,
		retrier:     retrier,
		cache:       cache,
		logger:      logger,
	}
}

// LineInput is one journal line in a draft request.
type LineInput struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Memo        string
}

// CreateDraftInput represents input for creating a draft entry.
type CreateDraftInput struct {
	EntryDate   time.Time
	Description string
	Reference   string
	CreatedBy   string
	Lines       []LineInput
}

// CreateDraft stores a new draft entry. Balance is not checked here; only
// that every line names an account. Full validation happens at post time.
func (uc *JournalUseCase) CreateDraft(ctx context.Context, input CreateDraftInput) (*domain.JournalEntry, error) {
	lines, err := linesFromInput(input.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	entry := &domain.JournalEntry{
		ID:          uc.idGen.Generate(),
		EntryDate:   input.EntryDate,
		Description: input.Description,
		Reference:   input.Reference,
		Status:      domain.StatusDraft,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		Lines:       lines,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.journalRepo.CreateEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateDraftInput represents input for replacing a draft's header and lines.
type UpdateDraftInput struct {
	EntryDate   time.Time
	Description string
	Reference   string
	Lines       []LineInput
}

// UpdateDraft replaces the header fields and the whole line set of a draft.
// Line replacement is whole-set rather than incremental so a partially
// applied update can never exist.
func (uc *JournalUseCase) UpdateDraft(ctx context.Context, id string, input UpdateDraftInput) (*domain.JournalEntry, error) {
	lines, err := linesFromInput(input.Lines)
	if err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	entry, err := uc.journalRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.StatusDraft {
		return nil, domain.ErrEntryNotEditable
	}

	entry.EntryDate = input.EntryDate
	entry.Description = input.Description
	entry.Reference = input.Reference
	entry.Lines = lines
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.journalRepo.ReplaceDraft(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// PostEntry validates a draft and transitions it to posted. On validation
// failure the entry is left untouched and the specific validator error is
// returned. The row lock on the entry header prevents a concurrent writer
// from mutating the draft between validation and the status flip.
func (uc *JournalUseCase) PostEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	var posted *domain.JournalEntry

	err := uc.retrier.Retry(ctx, func() error {
		entry, err := uc.postOnce(ctx, id)
		if err != nil {
			return err
		}

		posted = entry

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateBalances(ctx)

	return posted, nil
}

func (uc *JournalUseCase) postOnce(ctx context.Context, id string) (*domain.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	entry, err := uc.journalRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.resolveAccounts(ctx, entry)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidatePosting(entry, accounts); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.journalRepo.SetStatus(ctx, tx, entry.ID, domain.StatusPosted, &now, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	entry.Status = domain.StatusPosted
	entry.PostedAt = &now
	entry.UpdatedAt = now

	return entry, nil
}

// ReverseEntry reverses a posted entry by creating and posting a mirror
// entry with debits and credits swapped, then marking the original reversed.
// The original's lines are never mutated. The mirror carries the original's
// entry date so balances net out for every as-of date the original affected.
func (uc *JournalUseCase) ReverseEntry(ctx context.Context, id, reversedBy string) (*domain.JournalEntry, error) {
	var mirror *domain.JournalEntry

	err := uc.retrier.Retry(ctx, func() error {
		entry, err := uc.reverseOnce(ctx, id, reversedBy)
		if err != nil {
			return err
		}

		mirror = entry

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateBalances(ctx)

	return mirror, nil
}

func (uc *JournalUseCase) reverseOnce(ctx context.Context, id, reversedBy string) (*domain.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	original, err := uc.journalRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if !original.Status.CanTransition(domain.StatusReversed) {
		return nil, domain.ErrEntryNotReversible
	}

	now := time.Now().UTC()

	reference := ReversalReferencePrefix + original.Reference
	if original.Reference == "" {
		reference = ReversalReferencePrefix + original.ID
	}

	mirror := &domain.JournalEntry{
		ID:          uc.idGen.Generate(),
		EntryDate:   original.EntryDate,
		Description: fmt.Sprintf("Reversal of %s", original.ID),
		Reference:   reference,
		Status:      domain.StatusPosted,
		CreatedBy:   reversedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		PostedAt:    &now,
		Lines:       original.ReversalLines(),
	}

	if err := uc.journalRepo.CreateEntry(ctx, tx, mirror); err != nil {
		return nil, err
	}

	if err := uc.journalRepo.SetStatus(ctx, tx, original.ID, domain.StatusReversed, original.PostedAt, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return mirror, nil
}

// GetEntry retrieves a journal entry with its lines.
func (uc *JournalUseCase) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return uc.journalRepo.GetByID(ctx, id)
}

// ListByDateRange lists entries with entry dates in [start, end].
func (uc *JournalUseCase) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.JournalEntry, error) {
	return uc.journalRepo.ListByDateRange(ctx, start, end)
}

// ListByAccount lists entries that carry at least one line on the account.
func (uc *JournalUseCase) ListByAccount(ctx context.Context, accountCode string) ([]*domain.JournalEntry, error) {
	return uc.journalRepo.ListByAccount(ctx, accountCode)
}

func (uc *JournalUseCase) resolveAccounts(ctx context.Context, entry *domain.JournalEntry) (map[string]*domain.Account, error) {
	codes := entry.AccountCodes()

	accounts, err := uc.accountRepo.GetByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	m := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.Code] = a
	}

	return m, nil
}

// invalidateBalances discards memoized balances after the posted history
// changed. The cache is reconstructive, so a failed invalidation is logged
// and the write still succeeds; readers fall back to the aggregate query.
func (uc *JournalUseCase) invalidateBalances(ctx context.Context) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to invalidate balance cache")
	}
}

func linesFromInput(inputs []LineInput) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(inputs))
	for i, in := range inputs {
		code := strings.TrimSpace(in.AccountCode)
		if code == "" {
			return nil, fmt.Errorf("%w (line %d)", domain.ErrMissingAccountCode, i)
		}

		lines[i] = domain.JournalLine{
			AccountCode: code,
			Debit:       in.Debit,
			Credit:      in.Credit,
			Memo:        in.Memo,
		}
	}

	return lines, nil
}
