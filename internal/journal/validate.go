package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/id"
	"github.com/minibook-dev/minibook/internal/model"
)

// Invariant numbers reported in ValidationError.
const (
	InvariantBalanced = 1 // sum(debits) == sum(credits) per entry
	InvariantOneSided = 2 // no leg carries both a debit and a credit
	InvariantAccount  = 3 // every leg references a known account
	InvariantTwoLegs  = 4 // every entry has exactly two legs
	InvariantPeriod   = 5 // every leg's date falls in its entry ID's month
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account name exists in the chart of accounts.
type AccountChecker interface {
	Exists(name string) bool
}

// ValidateLines checks a built journal. Any violation means the builder
// produced something it must not; callers surface it rather than repair it.
func ValidateLines(lines []model.JournalLine, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	groups := make(map[string][]model.JournalLine)
	var groupOrder []string
	for _, line := range lines {
		g := line.EntryGroup()
		if _, seen := groups[g]; !seen {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], line)
	}

	for _, g := range groupOrder {
		groupLines := groups[g]
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, line := range groupLines {
			totalDebit = totalDebit.Add(line.Debit)
			totalCredit = totalCredit.Add(line.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantBalanced,
				EntryID:     g,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.String(), totalCredit.String()),
			})
		}
		if len(groupLines) != 2 {
			errs = append(errs, ValidationError{
				Invariant:   InvariantTwoLegs,
				EntryID:     g,
				Description: fmt.Sprintf("entry has %d legs, want 2", len(groupLines)),
			})
		}
		errs = append(errs, checkPeriod(g, groupLines)...)
	}

	for _, line := range lines {
		// Zero-amount transactions leave both columns empty, which is fine.
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			errs = append(errs, ValidationError{
				Invariant:   InvariantOneSided,
				EntryID:     line.EntryID,
				Description: "leg carries both debit and credit",
			})
		}

		if !accounts.Exists(line.Account) {
			errs = append(errs, ValidationError{
				Invariant:   InvariantAccount,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("unknown account %q", line.Account),
			})
		}
	}

	return errs
}

func checkPeriod(group string, lines []model.JournalLine) []ValidationError {
	year, month, _, err := id.ParseEntryID(group)
	if err != nil {
		return []ValidationError{{Invariant: InvariantPeriod, EntryID: group, Description: err.Error()}}
	}
	var errs []ValidationError
	for _, line := range lines {
		if line.Date.Year() != year || int(line.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   InvariantPeriod,
				EntryID:     line.EntryID,
				Description: fmt.Sprintf("dated %s outside %04d-%02d", line.Date.Format("2006-01-02"), year, month),
			})
		}
	}
	return errs
}
