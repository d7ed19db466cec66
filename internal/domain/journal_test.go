package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

func TestEntryStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from    domain.EntryStatus
		to      domain.EntryStatus
		allowed bool
	}{
		{domain.StatusDraft, domain.StatusPosted, true},
		{domain.StatusPosted, domain.StatusReversed, true},
		{domain.StatusDraft, domain.StatusReversed, false},
		{domain.StatusPosted, domain.StatusDraft, false},
		{domain.StatusReversed, domain.StatusPosted, false},
		{domain.StatusReversed, domain.StatusDraft, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestJournalEntry_Totals(t *testing.T) {
	entry := &domain.JournalEntry{
		Lines: []domain.JournalLine{
			{AccountCode: "1000", Debit: decimal.RequireFromString("300.00")},
			{AccountCode: "1010", Debit: decimal.RequireFromString("200.00")},
			{AccountCode: "4000", Credit: decimal.RequireFromString("500.00")},
		},
	}

	if got := entry.TotalDebit(); got.String() != "500" {
		t.Errorf("TotalDebit = %s, want 500", got)
	}

	if got := entry.TotalCredit(); got.String() != "500" {
		t.Errorf("TotalCredit = %s, want 500", got)
	}
}

func TestJournalEntry_AccountCodes(t *testing.T) {
	entry := &domain.JournalEntry{
		Lines: []domain.JournalLine{
			{AccountCode: "1000"},
			{AccountCode: "4000"},
			{AccountCode: "1000"},
		},
	}

	codes := entry.AccountCodes()
	if len(codes) != 2 || codes[0] != "1000" || codes[1] != "4000" {
		t.Errorf("AccountCodes = %v, want [1000 4000]", codes)
	}
}

func TestJournalEntry_ReversalLines(t *testing.T) {
	entry := &domain.JournalEntry{
		Lines: []domain.JournalLine{
			{AccountCode: "1000", Debit: decimal.RequireFromString("750.00"), Memo: "cash"},
			{AccountCode: "4100", Credit: decimal.RequireFromString("750.00"), Memo: "opd revenue"},
		},
	}

	lines := entry.ReversalLines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 reversal lines, got %d", len(lines))
	}

	if !lines[0].Credit.Equal(decimal.RequireFromString("750.00")) || !lines[0].Debit.IsZero() {
		t.Errorf("expected first line flipped to credit, got debit=%s credit=%s", lines[0].Debit, lines[0].Credit)
	}

	if !lines[1].Debit.Equal(decimal.RequireFromString("750.00")) || !lines[1].Credit.IsZero() {
		t.Errorf("expected second line flipped to debit, got debit=%s credit=%s", lines[1].Debit, lines[1].Credit)
	}

	if lines[0].Memo != "cash" {
		t.Errorf("expected memo preserved, got %q", lines[0].Memo)
	}
}
