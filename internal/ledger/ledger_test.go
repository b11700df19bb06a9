package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibook-dev/minibook/internal/journal"
	"github.com/minibook-dev/minibook/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func buildJournal(t *testing.T, txns ...model.Transaction) []model.JournalLine {
	t.Helper()
	lines, err := journal.Build(txns)
	require.NoError(t, err)
	return lines
}

func tx(d time.Time, debit, credit, amount string) model.Transaction {
	return model.Transaction{Date: d, DebitAccount: debit, CreditAccount: credit, Amount: dec(amount)}
}

func TestBuild_RunningBalance(t *testing.T) {
	lines := buildJournal(t,
		tx(date(2025, 11, 1), "Cash", "Revenue", "5000000"),
		tx(date(2025, 11, 15), "Salary Expense", "Cash", "800000"),
		tx(date(2025, 11, 20), "Cash", "Accounts Receivable", "2000000"),
	)
	l := Build(lines, []string{"Cash", "Accounts Receivable", "Revenue", "Salary Expense"})

	cash := l.Entries("Cash")
	require.Len(t, cash, 3)
	assert.True(t, cash[0].Balance.Equal(dec("5000000")))
	assert.True(t, cash[1].Balance.Equal(dec("4200000")))
	assert.True(t, cash[2].Balance.Equal(dec("6200000")))
	assert.True(t, cash[1].Credit.Equal(dec("800000")))
	assert.Equal(t, "2025-11-002b", cash[1].EntryID)

	assert.True(t, l.Balance("Cash").Equal(dec("6200000")))
	assert.True(t, l.Balance("Revenue").Equal(dec("-5000000")))
	assert.True(t, l.Balance("Accounts Receivable").Equal(dec("-2000000")))
	assert.True(t, l.Balance("Salary Expense").Equal(dec("800000")))
}

func TestBuild_BalancesSumToZero(t *testing.T) {
	lines := buildJournal(t,
		tx(date(2025, 11, 1), "Cash", "Revenue", "10.10"),
		tx(date(2025, 11, 2), "Inventory", "Accounts Payable", "3.03"),
		tx(date(2025, 11, 3), "Accounts Payable", "Cash", "1.01"),
	)
	names := []string{"Cash", "Inventory", "Accounts Payable", "Revenue"}
	l := Build(lines, names)

	sum := decimal.Zero
	for _, n := range names {
		sum = sum.Add(l.Balance(n))
	}
	assert.True(t, sum.IsZero(), "sum of all balances should be zero, got %s", sum)
}

func TestBuild_ZeroActivityAccount(t *testing.T) {
	lines := buildJournal(t, tx(date(2025, 11, 1), "Cash", "Revenue", "1"))
	l := Build(lines, []string{"Cash", "Revenue", "Dormant"})

	assert.True(t, l.Known("Dormant"))
	entries := l.Entries("Dormant")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.True(t, l.Balance("Dormant").IsZero())
	assert.Equal(t, []string{"Cash", "Revenue", "Dormant"}, l.Accounts())
}

func TestEntries_Unknown(t *testing.T) {
	l := Build(nil, nil)
	assert.False(t, l.Known("Nope"))
	entries := l.Entries("Nope")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.True(t, l.Balance("Nope").IsZero())
}

func TestBuild_AccountNotListed(t *testing.T) {
	lines := buildJournal(t, tx(date(2025, 11, 1), "Cash", "Revenue", "1"))
	l := Build(lines, []string{"Cash"})
	assert.True(t, l.Known("Revenue"))
	assert.Equal(t, []string{"Cash", "Revenue"}, l.Accounts())
}

func TestBuild_SameAccountBothSides(t *testing.T) {
	lines := buildJournal(t, tx(date(2025, 11, 1), "Cash", "Cash", "7"))
	l := Build(lines, []string{"Cash"})
	entries := l.Entries("Cash")
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Balance.Equal(dec("7")))
	assert.True(t, entries[1].Balance.IsZero())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	lines := buildJournal(t, tx(date(2025, 11, 1), "Cash", "Revenue", "1"))
	l := Build(lines, []string{"Cash", "Revenue"})
	e := l.Entries("Cash")
	e[0].Balance = dec("999")
	assert.True(t, l.Balance("Cash").Equal(dec("1")))
}

func TestBuild_Idempotent(t *testing.T) {
	lines := buildJournal(t,
		tx(date(2025, 11, 1), "Cash", "Revenue", "5"),
		tx(date(2025, 11, 2), "Salary Expense", "Cash", "2"),
	)
	names := []string{"Cash", "Revenue", "Salary Expense"}
	a := Build(lines, names)
	b := Build(lines, names)
	for _, n := range names {
		assert.Equal(t, a.Entries(n), b.Entries(n))
	}
}
