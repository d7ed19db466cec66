package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account within the chart of accounts.
type AccountType string

const (
	TypeAsset     AccountType = "asset"
	TypeLiability AccountType = "liability"
	TypeEquity    AccountType = "equity"
	TypeRevenue   AccountType = "revenue"
	TypeExpense   AccountType = "expense"
)

// AccountTypes lists all valid account types.
var AccountTypes = []AccountType{TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense}

// Valid reports whether t is one of the closed set of account types.
func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	}
	return false
}

// DebitNormal reports whether accounts of this type increase with debits.
// Asset and expense accounts are debit-normal; liability, equity and revenue
// accounts are credit-normal.
func (t AccountType) DebitNormal() bool {
	return t == TypeAsset || t == TypeExpense
}

// NormalBalance returns the net balance for an account of this type with the
// given posted debit and credit totals, signed so that the account's normal
// side is positive.
func (t AccountType) NormalBalance(debit, credit decimal.Decimal) decimal.Decimal {
	if t.DebitNormal() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

const maxAccountCodeLength = 16

// Account is one entry in the chart of accounts. Codes are stable identifiers
// like "1000"; accounts with transaction history are deactivated rather than
// deleted.
type Account struct {
	Code      string
	Name      string
	Type      AccountType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateAccountCode validates an account code for new accounts.
func ValidateAccountCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxAccountCodeLength {
		return ErrInvalidAccountCode
	}
	return nil
}
