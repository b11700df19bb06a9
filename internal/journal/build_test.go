package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func tx(d time.Time, debit, credit, amount, desc string) model.Transaction {
	return model.Transaction{Date: d, DebitAccount: debit, CreditAccount: credit, Amount: dec(amount), Description: desc}
}

func TestBuild_SingleTransaction(t *testing.T) {
	lines, err := Build([]model.Transaction{
		tx(date(2025, 11, 1), "Cash", "Revenue", "5000000", "Penjualan jasa A"),
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "2025-11-001a", lines[0].EntryID)
	assert.Equal(t, "Cash", lines[0].Account)
	assert.True(t, lines[0].Debit.Equal(dec("5000000")))
	assert.True(t, lines[0].Credit.IsZero())

	assert.Equal(t, "2025-11-001b", lines[1].EntryID)
	assert.Equal(t, "Revenue", lines[1].Account)
	assert.True(t, lines[1].Debit.IsZero())
	assert.True(t, lines[1].Credit.Equal(dec("5000000")))
	assert.Equal(t, "Penjualan jasa A", lines[1].Description)
}

func TestBuild_SortsByDateStable(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2025, 11, 20), "Cash", "Accounts Receivable", "2000000", "late"),
		tx(date(2025, 11, 5), "Cash", "Revenue", "1", "same-day first"),
		tx(date(2025, 11, 1), "Cash", "Revenue", "5", "earliest"),
		tx(date(2025, 11, 5), "Bank", "Revenue", "2", "same-day second"),
	}
	orig := append([]model.Transaction(nil), txns...)

	lines, err := Build(txns)
	require.NoError(t, err)
	require.Len(t, lines, 8)

	var descs []string
	for i := 0; i < len(lines); i += 2 {
		descs = append(descs, lines[i].Description)
		assert.Equal(t, lines[i].Description, lines[i+1].Description, "legs of one entry stay adjacent")
		assert.False(t, lines[i].Debit.IsZero(), "debit leg first")
		assert.False(t, lines[i+1].Credit.IsZero(), "credit leg second")
	}
	assert.Equal(t, []string{"earliest", "same-day first", "same-day second", "late"}, descs)
	assert.Equal(t, orig, txns, "input must not be reordered")
}

func TestBuild_EntryIDsPerMonth(t *testing.T) {
	lines, err := Build([]model.Transaction{
		tx(date(2025, 11, 30), "Cash", "Revenue", "1", ""),
		tx(date(2025, 12, 1), "Cash", "Revenue", "1", ""),
		tx(date(2025, 11, 2), "Cash", "Revenue", "1", ""),
	})
	require.NoError(t, err)
	var ids []string
	for _, l := range lines {
		ids = append(ids, l.EntryID)
	}
	assert.Equal(t, []string{
		"2025-11-001a", "2025-11-001b",
		"2025-11-002a", "2025-11-002b",
		"2025-12-001a", "2025-12-001b",
	}, ids)
}

func TestBuild_DoubleEntryInvariant(t *testing.T) {
	txns := []model.Transaction{
		tx(date(2025, 11, 1), "Cash", "Revenue", "0.10", ""),
		tx(date(2025, 11, 2), "Cash", "Revenue", "0.20", ""),
		tx(date(2025, 11, 3), "Salary Expense", "Cash", "33.33", ""),
		tx(date(2025, 11, 4), "Cash", "Cash", "7", "degenerate but permitted"),
		tx(date(2025, 11, 5), "Cash", "Revenue", "0", "zero amount"),
	}
	lines, err := Build(txns)
	require.NoError(t, err)

	// Holds exactly at every prefix, not just for the whole journal.
	for n := 0; n <= len(lines); n += 2 {
		debit, credit := Totals(lines[:n])
		assert.True(t, debit.Equal(credit), "prefix %d: %s != %s", n, debit, credit)
	}
	debit, _ := Totals(lines)
	assert.True(t, debit.Equal(dec("40.63")), "got %s", debit)
}

func TestBuild_Empty(t *testing.T) {
	lines, err := Build(nil)
	require.NoError(t, err)
	assert.Empty(t, lines)

	debit, credit := Totals(lines)
	assert.True(t, debit.IsZero())
	assert.True(t, credit.IsZero())
}

func TestBuild_Malformed(t *testing.T) {
	good := tx(date(2025, 11, 1), "Cash", "Revenue", "100", "")
	tests := []struct {
		name  string
		bad   model.Transaction
		field string
	}{
		{"negative amount", tx(date(2025, 11, 2), "Cash", "Revenue", "-100", ""), "amount"},
		{"missing date", tx(time.Time{}, "Cash", "Revenue", "100", ""), "date"},
		{"missing debit account", tx(date(2025, 11, 2), " ", "Revenue", "100", ""), "debit_account"},
		{"missing credit account", tx(date(2025, 11, 2), "Cash", "", "100", ""), "credit_account"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Build([]model.Transaction{good, tt.bad})
			require.Error(t, err)
			assert.Nil(t, lines, "no partial journal")
			assert.ErrorIs(t, err, errs.ErrMalformedTransaction)

			var me *errs.MalformedError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, 2, me.Row)
			assert.Equal(t, tt.field, me.Field)
		})
	}
}
