package book

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/model"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006/01/02"}

// ParseTransactions converts raw rows into transactions. Account names and
// descriptions are trimmed. The first failing row is reported as a
// *errs.MalformedError with its 1-based row number.
func ParseTransactions(raw []model.RawTransaction) ([]model.Transaction, error) {
	txns := make([]model.Transaction, 0, len(raw))
	for i, r := range raw {
		row := i + 1
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, &errs.MalformedError{Row: row, Field: "date", Value: r.Date, Reason: err.Error()}
		}
		amount, err := parseAmount(r.Amount)
		if err != nil {
			return nil, &errs.MalformedError{Row: row, Field: "amount", Value: r.Amount, Reason: err.Error()}
		}
		txns = append(txns, model.Transaction{
			Date:          date,
			DebitAccount:  strings.TrimSpace(r.DebitAccount),
			CreditAccount: strings.TrimSpace(r.CreditAccount),
			Amount:        amount,
			Description:   strings.TrimSpace(r.Description),
		})
	}
	return txns, nil
}

var (
	errRequired  = errors.New("required")
	errNotDate   = errors.New("not a date (want YYYY-MM-DD)")
	errNotNumber = errors.New("not a number")
	// 0001-01-01 is time.Time's zero value, which the journal reads as unset.
	errDateRange = errors.New("out of range (earliest date is 0001-01-02)")
)

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errRequired
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			if day.IsZero() {
				return time.Time{}, errDateRange
			}
			return day, nil
		}
	}
	return time.Time{}, errNotDate
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errRequired
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errNotNumber
	}
	return d, nil
}
