package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft    EntryStatus = "draft"
	StatusPosted   EntryStatus = "posted"
	StatusReversed EntryStatus = "reversed"
)

// statusTransitions is the allowed-transition table. Posting is irreversible;
// a posted entry can only move to reversed (via a mirror entry, never by
// mutating its lines).
var statusTransitions = map[EntryStatus]map[EntryStatus]bool{
	StatusDraft:  {StatusPosted: true},
	StatusPosted: {StatusReversed: true},
}

// CanTransition reports whether the status may move to target.
func (s EntryStatus) CanTransition(target EntryStatus) bool {
	return statusTransitions[s][target]
}

// Valid reports whether s is a known status.
func (s EntryStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPosted, StatusReversed:
		return true
	}
	return false
}

// JournalLine is a single debit or credit within a journal entry. Exactly one
// of Debit/Credit is positive; both are in the base currency with 2 decimal
// places.
type JournalLine struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Memo        string
}

// JournalEntry is one double-entry transaction: a header plus an ordered set
// of lines. Drafts are mutable; posted entries are immutable history.
type JournalEntry struct {
	ID          string
	EntryDate   time.Time
	Description string
	Reference   string
	Status      EntryStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PostedAt    *time.Time
	Lines       []JournalLine
}

// TotalDebit sums the debit side of all lines.
func (e *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// AccountCodes returns the distinct account codes referenced by the lines,
// in first-seen order.
func (e *JournalEntry) AccountCodes() []string {
	seen := make(map[string]bool, len(e.Lines))

	var codes []string
	for _, l := range e.Lines {
		if !seen[l.AccountCode] {
			seen[l.AccountCode] = true
			codes = append(codes, l.AccountCode)
		}
	}

	return codes
}

// ReversalLines returns the line set of a mirror entry: each line with its
// debit and credit swapped, memos preserved.
func (e *JournalEntry) ReversalLines() []JournalLine {
	lines := make([]JournalLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLine{
			AccountCode: l.AccountCode,
			Debit:       l.Credit,
			Credit:      l.Debit,
			Memo:        l.Memo,
		}
	}
	return lines
}
