package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/id"
)

// Transaction is one double-entry event as handed to the engine.
type Transaction struct {
	Date          time.Time
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal // must be >= 0
	Description   string
}

// RawTransaction is an un-parsed input row (CSV upload, JSON body, sample data).
type RawTransaction struct {
	Date          string
	DebitAccount  string
	CreditAccount string
	Amount        string
	Description   string
}

// JournalLine is one side of one transaction.
type JournalLine struct {
	EntryID     string          // "YYYY-MM-NNNx" where x = a (debit), b (credit)
	Date        time.Time       //nolint:revive // plain field name is clearest
	Account     string          //nolint:revive
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Description string
}

// EntryGroup returns the base entry ID (without leg suffix).
// "2025-11-001a" -> "2025-11-001"
func (l JournalLine) EntryGroup() string {
	return id.EntryGroup(l.EntryID)
}

