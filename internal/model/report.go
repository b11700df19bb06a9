package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row of a per-account ledger.
type LedgerEntry struct {
	EntryID     string
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal // cumulative debit - cumulative credit
}

// TrialBalanceRow expresses one account's final balance on its natural side.
// At most one of Debit and Credit is non-zero.
type TrialBalanceRow struct {
	Account string
	Type    AccountType
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// AccountAmount is an account with its natural-side balance.
type AccountAmount struct {
	Account string
	Amount  decimal.Decimal
}

// IncomeStatement summarizes revenue and expense.
type IncomeStatement struct {
	Revenue   decimal.Decimal
	Expense   decimal.Decimal
	NetIncome decimal.Decimal
	Revenues  []AccountAmount
	Expenses  []AccountAmount
}

// BalanceSheet summarizes assets, liabilities and equity. Equity includes
// NetIncome; no closing entry is posted to the journal.
type BalanceSheet struct {
	Assets         decimal.Decimal
	Liabilities    decimal.Decimal
	Equity         decimal.Decimal
	NetIncome      decimal.Decimal
	AssetLines     []AccountAmount
	LiabilityLines []AccountAmount
	EquityLines    []AccountAmount
}
