package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is the posted debit/credit totals for one account over some
// window, as aggregated by the storage layer.
type AccountActivity struct {
	AccountCode string
	AccountName string
	AccountType AccountType
	IsActive    bool
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// NetBalance returns the activity's balance signed to the account's normal
// side.
func (a AccountActivity) NetBalance() decimal.Decimal {
	return a.AccountType.NormalBalance(a.Debit, a.Credit)
}

// TrialBalanceRow is one account in a trial balance. The net balance sits in
// the Debit or Credit column per the account's normal side; a negative net
// balance flips to the opposite column so anomalies stay visible.
type TrialBalanceRow struct {
	AccountCode string
	AccountName string
	AccountType AccountType
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// TrialBalanceReport lists every account's balance split into debit/credit
// columns as of a date, with column totals and a balanced flag.
type TrialBalanceReport struct {
	AsOf        time.Time
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
}

// StatementLine is one account's contribution to a financial statement
// section.
type StatementLine struct {
	AccountCode string
	AccountName string
	Amount      decimal.Decimal
}

// IncomeStatement nets revenue against expenses over a period. Revenue and
// expense accounts are flow accounts: the statement uses period activity, not
// cumulative as-of balances.
type IncomeStatement struct {
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Revenue       []StatementLine
	Expenses      []StatementLine
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetResult     decimal.Decimal
}

// BalanceSheet reports cumulative as-of balances for asset, liability and
// equity accounts.
type BalanceSheet struct {
	AsOf             time.Time
	Assets           []StatementLine
	Liabilities      []StatementLine
	Equity           []StatementLine
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

// TrialBalanceRowFor places an account's net balance on its normal side, or
// the opposite column when the computed balance is negative.
func TrialBalanceRowFor(activity AccountActivity) TrialBalanceRow {
	row := TrialBalanceRow{
		AccountCode: activity.AccountCode,
		AccountName: activity.AccountName,
		AccountType: activity.AccountType,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
	}

	net := activity.NetBalance()

	debitSide := activity.AccountType.DebitNormal()
	if net.IsNegative() {
		debitSide = !debitSide
		net = net.Neg()
	}

	if debitSide {
		row.Debit = net
	} else {
		row.Credit = net
	}

	return row
}
