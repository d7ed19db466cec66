package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/usecase"
)

// MockAccountRepository is an in-memory AccountRepository. Behavior can be
// overridden per method via the XxxFunc fields.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc     func(ctx context.Context, account *domain.Account) error
	GetByCodeFunc  func(ctx context.Context, code string) (*domain.Account, error)
	GetByCodesFunc func(ctx context.Context, codes []string) ([]*domain.Account, error)
	SetActiveFunc  func(ctx context.Context, code string, active bool, updatedAt time.Time) error
	ListFunc       func(ctx context.Context, activeOnly bool) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Code]; ok {
		return domain.ErrDuplicateAccountCode
	}
	m.accounts[account.Code] = account
	return nil
}

func (m *MockAccountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[code]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByCodes(ctx context.Context, codes []string) ([]*domain.Account, error) {
	if m.GetByCodesFunc != nil {
		return m.GetByCodesFunc(ctx, codes)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, code := range codes {
		if a, ok := m.accounts[code]; ok {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) SetActive(ctx context.Context, code string, active bool, updatedAt time.Time) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, code, active, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[code]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.IsActive = active
	a.UpdatedAt = updatedAt
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		if activeOnly && !a.IsActive {
			continue
		}
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

// MockJournalRepository is an in-memory JournalRepository.
type MockJournalRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.JournalEntry

	CreateEntryFunc      func(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.JournalEntry, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.JournalEntry, error)
	ReplaceDraftFunc     func(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error
	SetStatusFunc        func(ctx context.Context, tx usecase.Transaction, id string, status domain.EntryStatus, postedAt *time.Time, updatedAt time.Time) error
	ListByDateRangeFunc  func(ctx context.Context, start, end time.Time) ([]*domain.JournalEntry, error)
	ListByAccountFunc    func(ctx context.Context, accountCode string) ([]*domain.JournalEntry, error)
}

func NewMockJournalRepository() *MockJournalRepository {
	return &MockJournalRepository{entries: make(map[string]*domain.JournalEntry)}
}

func (m *MockJournalRepository) CreateEntry(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	if m.CreateEntryFunc != nil {
		return m.CreateEntryFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *entry
	m.entries[entry.ID] = &copied
	return nil
}

func (m *MockJournalRepository) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockJournalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.JournalEntry, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockJournalRepository) ReplaceDraft(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	if m.ReplaceDraftFunc != nil {
		return m.ReplaceDraftFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.entries[entry.ID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	if stored.Status != domain.StatusDraft {
		return domain.ErrEntryNotEditable
	}
	copied := *entry
	m.entries[entry.ID] = &copied
	return nil
}

func (m *MockJournalRepository) SetStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.EntryStatus, postedAt *time.Time, updatedAt time.Time) error {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, tx, id, status, postedAt, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return domain.ErrEntryNotFound
	}
	e.Status = status
	e.PostedAt = postedAt
	e.UpdatedAt = updatedAt
	return nil
}

func (m *MockJournalRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.JournalEntry, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.JournalEntry
	for _, e := range m.entries {
		if !e.EntryDate.Before(start) && !e.EntryDate.After(end) {
			copied := *e
			entries = append(entries, &copied)
		}
	}
	return entries, nil
}

func (m *MockJournalRepository) ListByAccount(ctx context.Context, accountCode string) ([]*domain.JournalEntry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountCode)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.JournalEntry
	for _, e := range m.entries {
		for _, l := range e.Lines {
			if l.AccountCode == accountCode {
				copied := *e
				entries = append(entries, &copied)
				break
			}
		}
	}
	return entries, nil
}

// PostedActivity aggregates the posted entries held by the mock into
// per-account debit/credit totals, the way the reporting queries do.
func (m *MockJournalRepository) PostedActivity(accounts map[string]*domain.Account, start, end time.Time) []domain.AccountActivity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totals := make(map[string]*domain.AccountActivity)
	for _, e := range m.entries {
		// Reversed entries stay in the aggregate; their mirrors cancel them.
		if e.Status == domain.StatusDraft || e.EntryDate.Before(start) || e.EntryDate.After(end) {
			continue
		}
		for _, l := range e.Lines {
			act, ok := totals[l.AccountCode]
			if !ok {
				account := accounts[l.AccountCode]
				act = &domain.AccountActivity{
					AccountCode: l.AccountCode,
					AccountName: account.Name,
					AccountType: account.Type,
					IsActive:    account.IsActive,
					Debit:       decimal.Zero,
					Credit:      decimal.Zero,
				}
				totals[l.AccountCode] = act
			}
			act.Debit = act.Debit.Add(l.Debit)
			act.Credit = act.Credit.Add(l.Credit)
		}
	}

	var result []domain.AccountActivity
	for _, act := range totals {
		result = append(result, *act)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AccountCode < result[j].AccountCode })
	return result
}

// MockReportingRepository serves canned activity, or derives it from a
// MockJournalRepository when wired via FromJournal.
type MockReportingRepository struct {
	Activity []domain.AccountActivity

	ActivityAsOfFunc        func(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error)
	ActivityForPeriodFunc   func(ctx context.Context, start, end time.Time) ([]domain.AccountActivity, error)
	AccountActivityAsOfFunc func(ctx context.Context, codes []string, asOf time.Time) ([]domain.AccountActivity, error)
}

func NewMockReportingRepository() *MockReportingRepository {
	return &MockReportingRepository{}
}

// FromJournal derives all three queries from the journal mock's posted state.
func (m *MockReportingRepository) FromJournal(journal *MockJournalRepository, accounts *MockAccountRepository) {
	snapshot := func() map[string]*domain.Account {
		accounts.mu.RLock()
		defer accounts.mu.RUnlock()
		copied := make(map[string]*domain.Account, len(accounts.accounts))
		for k, v := range accounts.accounts {
			copied[k] = v
		}
		return copied
	}

	var earliest time.Time

	m.ActivityAsOfFunc = func(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error) {
		return journal.PostedActivity(snapshot(), earliest, asOf), nil
	}
	m.ActivityForPeriodFunc = func(ctx context.Context, start, end time.Time) ([]domain.AccountActivity, error) {
		return journal.PostedActivity(snapshot(), start, end), nil
	}
	m.AccountActivityAsOfFunc = func(ctx context.Context, codes []string, asOf time.Time) ([]domain.AccountActivity, error) {
		wanted := make(map[string]bool, len(codes))
		for _, c := range codes {
			wanted[c] = true
		}
		var result []domain.AccountActivity
		for _, act := range journal.PostedActivity(snapshot(), earliest, asOf) {
			if wanted[act.AccountCode] {
				result = append(result, act)
			}
		}
		return result, nil
	}
}

func (m *MockReportingRepository) ActivityAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error) {
	if m.ActivityAsOfFunc != nil {
		return m.ActivityAsOfFunc(ctx, asOf)
	}
	return m.Activity, nil
}

func (m *MockReportingRepository) ActivityForPeriod(ctx context.Context, start, end time.Time) ([]domain.AccountActivity, error) {
	if m.ActivityForPeriodFunc != nil {
		return m.ActivityForPeriodFunc(ctx, start, end)
	}
	return m.Activity, nil
}

func (m *MockReportingRepository) AccountActivityAsOf(ctx context.Context, codes []string, asOf time.Time) ([]domain.AccountActivity, error) {
	if m.AccountActivityAsOfFunc != nil {
		return m.AccountActivityAsOfFunc(ctx, codes, asOf)
	}
	return m.Activity, nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockIDGenerator returns sequential deterministic IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("entry-%04d", m.counter)
}

// PassthroughRetrier runs the operation once without retrying.
type PassthroughRetrier struct{}

func (PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}
