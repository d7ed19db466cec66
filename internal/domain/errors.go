package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Account errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrDuplicateAccountCode = errors.New("account code already exists")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountCode   = errors.New("invalid account code")

	// Journal entry errors
	ErrEntryNotFound      = errors.New("journal entry not found")
	ErrEntryNotEditable   = errors.New("journal entry is not editable")
	ErrEntryAlreadyPosted = errors.New("journal entry is already posted")
	ErrEntryNotPostable   = errors.New("journal entry cannot be posted")
	ErrEntryNotReversible = errors.New("only posted journal entries can be reversed")
	ErrInsufficientLines  = errors.New("journal entry requires at least two lines")
	ErrMissingAccountCode = errors.New("journal line is missing an account code")
)

// InvalidAccountError reports a line whose account does not resolve to an
// active account.
type InvalidAccountError struct {
	Line        int
	AccountCode string
}

func (e *InvalidAccountError) Error() string {
	return fmt.Sprintf("line %d: account %q is not an active account", e.Line, e.AccountCode)
}

// AmbiguousLineError reports a line that does not carry exactly one of
// debit/credit as a positive amount.
type AmbiguousLineError struct {
	Line int
}

func (e *AmbiguousLineError) Error() string {
	return fmt.Sprintf("line %d: exactly one of debit or credit must be positive", e.Line)
}

// UnbalancedEntryError reports an entry whose debits and credits differ by
// at least one cent.
type UnbalancedEntryError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
	Diff   decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry out of balance by %s (debits %s, credits %s)",
		e.Diff.StringFixed(2), e.Debit.StringFixed(2), e.Credit.StringFixed(2))
}
