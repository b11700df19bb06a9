package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minibook-dev/minibook/internal/model"
)

// CSVHeader is the upload format: one row per transaction.
var CSVHeader = []string{"date", "account_debit", "account_credit", "amount", "description"}

var requiredColumns = []string{"date", "account_debit", "account_credit", "amount"}

// CSVParser reads transactions.csv. Columns are matched by header name,
// so order is free and extra columns are ignored. description is optional.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV with a header row.
func (p *CSVParser) Parse(r io.Reader) ([]model.RawTransaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("CSV header missing column %q", name)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var txns []model.RawTransaction
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", row, err)
		}
		if blank(rec) {
			continue
		}
		txns = append(txns, model.RawTransaction{
			Date:          field(rec, "date"),
			DebitAccount:  field(rec, "account_debit"),
			CreditAccount: field(rec, "account_credit"),
			Amount:        field(rec, "amount"),
			Description:   field(rec, "description"),
		})
	}
	return txns, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// WriteCSV writes raw rows in the upload format.
func WriteCSV(w io.Writer, txns []model.RawTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		if err := cw.Write([]string{t.Date, t.DebitAccount, t.CreditAccount, t.Amount, t.Description}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
