package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

func TestAccountType_Valid(t *testing.T) {
	for _, at := range domain.AccountTypes {
		if !at.Valid() {
			t.Errorf("expected %q to be valid", at)
		}
	}

	for _, at := range []domain.AccountType{"", "bank", "ASSET", "income"} {
		if at.Valid() {
			t.Errorf("expected %q to be invalid", at)
		}
	}
}

func TestAccountType_NormalBalance(t *testing.T) {
	debit := decimal.RequireFromString("500.00")
	credit := decimal.RequireFromString("120.00")

	tests := []struct {
		accountType domain.AccountType
		want        string
	}{
		{domain.TypeAsset, "380"},
		{domain.TypeExpense, "380"},
		{domain.TypeLiability, "-380"},
		{domain.TypeEquity, "-380"},
		{domain.TypeRevenue, "-380"},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			got := tt.accountType.NormalBalance(debit, credit)
			if got.String() != tt.want {
				t.Errorf("NormalBalance = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateAccountCode(t *testing.T) {
	if err := domain.ValidateAccountCode("1000"); err != nil {
		t.Errorf("unexpected error for valid code: %v", err)
	}

	if err := domain.ValidateAccountCode(""); err != domain.ErrInvalidAccountCode {
		t.Errorf("expected ErrInvalidAccountCode for empty code, got %v", err)
	}

	if err := domain.ValidateAccountCode("   "); err != domain.ErrInvalidAccountCode {
		t.Errorf("expected ErrInvalidAccountCode for blank code, got %v", err)
	}

	if err := domain.ValidateAccountCode("12345678901234567"); err != domain.ErrInvalidAccountCode {
		t.Errorf("expected ErrInvalidAccountCode for overlong code, got %v", err)
	}
}
