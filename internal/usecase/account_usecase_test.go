package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chisomo/hospledger/internal/domain"
	"github.com/chisomo/hospledger/internal/usecase"
	"github.com/chisomo/hospledger/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateAccountInput
		seed    []*domain.Account
		wantErr error
	}{
		{
			name:  "creates asset account",
			input: usecase.CreateAccountInput{Code: "1000", Name: "Cash on Hand", Type: domain.TypeAsset},
		},
		{
			name:  "trims surrounding whitespace",
			input: usecase.CreateAccountInput{Code: " 1000 ", Name: " Cash ", Type: domain.TypeAsset},
		},
		{
			name:    "rejects duplicate code",
			input:   usecase.CreateAccountInput{Code: "1000", Name: "Cash", Type: domain.TypeAsset},
			seed:    []*domain.Account{{Code: "1000", Name: "Cash", Type: domain.TypeAsset, IsActive: true}},
			wantErr: domain.ErrDuplicateAccountCode,
		},
		{
			name:    "rejects unknown type",
			input:   usecase.CreateAccountInput{Code: "1000", Name: "Cash", Type: "bank"},
			wantErr: domain.ErrInvalidAccountType,
		},
		{
			name:    "rejects empty code",
			input:   usecase.CreateAccountInput{Code: "  ", Name: "Cash", Type: domain.TypeAsset},
			wantErr: domain.ErrInvalidAccountCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			for _, a := range tt.seed {
				if err := repo.Create(context.Background(), a); err != nil {
					t.Fatalf("seed: %v", err)
				}
			}

			uc := usecase.NewAccountUseCase(repo)
			account, err := uc.CreateAccount(context.Background(), tt.input)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateAccount() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr == nil {
				if account.Code != "1000" {
					t.Errorf("code = %q, want trimmed %q", account.Code, "1000")
				}
				if !account.IsActive {
					t.Error("new accounts must be active")
				}
			}
		})
	}
}

func TestAccountUseCase_DeactivateAccount(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(repo)

	if _, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code: "1000", Name: "Cash", Type: domain.TypeAsset,
	}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	if err := uc.DeactivateAccount(context.Background(), "1000"); err != nil {
		t.Fatalf("DeactivateAccount: %v", err)
	}

	account, err := uc.GetAccount(context.Background(), "1000")
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if account.IsActive {
		t.Error("expected account to be inactive")
	}

	if err := uc.DeactivateAccount(context.Background(), "9999"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}

	if err := uc.ReactivateAccount(context.Background(), "1000"); err != nil {
		t.Fatalf("ReactivateAccount: %v", err)
	}

	account, _ = uc.GetAccount(context.Background(), "1000")
	if !account.IsActive {
		t.Error("expected account to be active again")
	}
}

func TestAccountUseCase_ListActive(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(repo)

	for _, in := range []usecase.CreateAccountInput{
		{Code: "4100", Name: "OPD Revenue", Type: domain.TypeRevenue},
		{Code: "1000", Name: "Cash", Type: domain.TypeAsset},
		{Code: "2100", Name: "Suppliers Payable", Type: domain.TypeLiability},
	} {
		if _, err := uc.CreateAccount(context.Background(), in); err != nil {
			t.Fatalf("CreateAccount(%s): %v", in.Code, err)
		}
	}

	if err := uc.DeactivateAccount(context.Background(), "2100"); err != nil {
		t.Fatalf("DeactivateAccount: %v", err)
	}

	active, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}

	if len(active) != 2 {
		t.Fatalf("expected 2 active accounts, got %d", len(active))
	}

	if active[0].Code != "1000" || active[1].Code != "4100" {
		t.Errorf("expected accounts ordered by code, got %s, %s", active[0].Code, active[1].Code)
	}

	all, err := uc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 accounts in full list, got %d", len(all))
	}
}
