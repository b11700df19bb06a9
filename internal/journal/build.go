package journal

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/id"
	"github.com/minibook-dev/minibook/internal/model"
)

// Build expands every transaction into a debit leg and a credit leg.
//
// Rows are checked in input order first, so a MalformedError names the row
// as the caller supplied it. The transactions are then stable-sorted by date
// on a copy; same-day transactions keep their input order and each emits its
// debit leg before its credit leg. txns is never modified.
func Build(txns []model.Transaction) ([]model.JournalLine, error) {
	for i, txn := range txns {
		if err := checkTransaction(i+1, txn); err != nil {
			return nil, err
		}
	}

	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b model.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	seq := id.NewSequencer()
	lines := make([]model.JournalLine, 0, 2*len(sorted))
	for _, txn := range sorted {
		entryID := seq.Next(txn.Date.Year(), int(txn.Date.Month()))
		lines = append(lines,
			model.JournalLine{
				EntryID:     id.FormatLegID(entryID, 0),
				Date:        txn.Date,
				Account:     txn.DebitAccount,
				Debit:       txn.Amount,
				Credit:      decimal.Zero,
				Description: txn.Description,
			},
			model.JournalLine{
				EntryID:     id.FormatLegID(entryID, 1),
				Date:        txn.Date,
				Account:     txn.CreditAccount,
				Debit:       decimal.Zero,
				Credit:      txn.Amount,
				Description: txn.Description,
			},
		)
	}
	return lines, nil
}

func checkTransaction(row int, txn model.Transaction) error {
	switch {
	case txn.Date.IsZero():
		return &errs.MalformedError{Row: row, Field: "date", Reason: "required"}
	case strings.TrimSpace(txn.DebitAccount) == "":
		return &errs.MalformedError{Row: row, Field: "debit_account", Reason: "required"}
	case strings.TrimSpace(txn.CreditAccount) == "":
		return &errs.MalformedError{Row: row, Field: "credit_account", Reason: "required"}
	case txn.Amount.IsNegative():
		return &errs.MalformedError{Row: row, Field: "amount", Value: txn.Amount.String(), Reason: "must not be negative"}
	}
	return nil
}

// Totals returns the sum of the debit column and the sum of the credit column.
func Totals(lines []model.JournalLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}
