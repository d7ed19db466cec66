package domain

import "github.com/shopspring/decimal"

// BalanceTolerance absorbs sub-cent rounding in the double-entry check.
// Monetary values are 2-decimal fixed-point, so any difference of one cent or
// more is a genuine imbalance.
var BalanceTolerance = decimal.RequireFromString("0.01")

// ValidatePosting checks whether a journal entry may transition from draft to
// posted. accounts maps account codes to their chart entries; missing codes
// are treated as unresolvable.
//
// Checks run in order: draft status, minimum two lines, every line on an
// active account, every line with exactly one positive side, and the
// double-entry balance invariant. All failures are recoverable by the caller
// fixing the entry and resubmitting.
func ValidatePosting(entry *JournalEntry, accounts map[string]*Account) error {
	switch entry.Status {
	case StatusDraft:
	case StatusPosted:
		return ErrEntryAlreadyPosted
	default:
		return ErrEntryNotPostable
	}

	if len(entry.Lines) < 2 {
		return ErrInsufficientLines
	}

	// Account resolution runs over every line before the amount checks, so
	// an unresolvable account is always reported ahead of an ambiguous line.
	for i, line := range entry.Lines {
		account, ok := accounts[line.AccountCode]
		if !ok || !account.IsActive {
			return &InvalidAccountError{Line: i, AccountCode: line.AccountCode}
		}
	}

	for i, line := range entry.Lines {
		if !exactlyOneSide(line) {
			return &AmbiguousLineError{Line: i}
		}
	}

	debit := entry.TotalDebit()
	credit := entry.TotalCredit()

	diff := debit.Sub(credit).Abs()
	if diff.GreaterThanOrEqual(BalanceTolerance) {
		return &UnbalancedEntryError{Debit: debit, Credit: credit, Diff: diff}
	}

	return nil
}

// exactlyOneSide reports whether the line has a positive debit and zero
// credit, or vice versa. Negative amounts never qualify.
func exactlyOneSide(line JournalLine) bool {
	debitSet := line.Debit.IsPositive() && line.Credit.IsZero()
	creditSet := line.Credit.IsPositive() && line.Debit.IsZero()
	return debitSet != creditSet
}
