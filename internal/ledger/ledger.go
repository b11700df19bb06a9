// Package ledger groups journal lines per account and carries a running
// balance through each group.
package ledger

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/model"
)

// Ledgers holds one ordered ledger per account. It is read-only once built.
type Ledgers struct {
	byAccount map[string][]model.LedgerEntry
	order     []string
}

// Build makes one pass over the journal, appending each line to its
// account's ledger with balance = cumulative debit - cumulative credit.
// Every name in accounts gets a ledger, empty when it has no lines.
// Lines for accounts outside the list still get a ledger.
func Build(lines []model.JournalLine, accounts []string) *Ledgers {
	l := &Ledgers{
		byAccount: make(map[string][]model.LedgerEntry, len(accounts)),
		order:     make([]string, 0, len(accounts)),
	}
	for _, name := range accounts {
		if _, ok := l.byAccount[name]; ok {
			continue
		}
		l.byAccount[name] = []model.LedgerEntry{}
		l.order = append(l.order, name)
	}

	running := make(map[string]decimal.Decimal, len(accounts))
	for _, line := range lines {
		entries, ok := l.byAccount[line.Account]
		if !ok {
			l.order = append(l.order, line.Account)
		}
		bal := running[line.Account].Add(line.Debit).Sub(line.Credit)
		running[line.Account] = bal
		l.byAccount[line.Account] = append(entries, model.LedgerEntry{
			EntryID:     line.EntryID,
			Date:        line.Date,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Balance:     bal,
		})
	}
	return l
}

// Accounts returns account names in the order given to Build, followed by
// any extra names first seen in the journal.
func (l *Ledgers) Accounts() []string {
	return slices.Clone(l.order)
}

// Known reports whether name has a ledger (possibly empty).
func (l *Ledgers) Known(name string) bool {
	_, ok := l.byAccount[name]
	return ok
}

// Entries returns a copy of the ledger for name. Unknown names yield an
// empty ledger: "never used" and "no activity" look the same to callers.
func (l *Ledgers) Entries(name string) []model.LedgerEntry {
	entries, ok := l.byAccount[name]
	if !ok {
		return []model.LedgerEntry{}
	}
	return slices.Clone(entries)
}

// Balance returns the final running balance for name, zero when empty.
func (l *Ledgers) Balance(name string) decimal.Decimal {
	entries := l.byAccount[name]
	if len(entries) == 0 {
		return decimal.Zero
	}
	return entries[len(entries)-1].Balance
}
