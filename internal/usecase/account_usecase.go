package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/chisomo/hospledger/internal/domain"
)

// AccountUseCase handles chart-of-accounts business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Code string
	Name string
	Type domain.AccountType
}

// CreateAccount adds an account to the chart of accounts.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	code := strings.TrimSpace(input.Code)
	if err := domain.ValidateAccountCode(code); err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, domain.ErrInvalidAccountType
	}

	now := time.Now().UTC()

	account := &domain.Account{
		Code:      code,
		Name:      strings.TrimSpace(input.Name),
		Type:      input.Type,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by code.
func (uc *AccountUseCase) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	return uc.accountRepo.GetByCode(ctx, code)
}

// DeactivateAccount soft-disables an account. Deactivation only blocks the
// account from new draft lines; posted history is untouched.
func (uc *AccountUseCase) DeactivateAccount(ctx context.Context, code string) error {
	return uc.accountRepo.SetActive(ctx, code, false, time.Now().UTC())
}

// ReactivateAccount re-enables a deactivated account.
func (uc *AccountUseCase) ReactivateAccount(ctx context.Context, code string) error {
	return uc.accountRepo.SetActive(ctx, code, true, time.Now().UTC())
}

// ListActive lists active accounts ordered by code ascending.
func (uc *AccountUseCase) ListActive(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx, true)
}

// ListAll lists every account, active or not, ordered by code ascending.
func (uc *AccountUseCase) ListAll(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx, false)
}
