package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/minibook-dev/minibook/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,account,debit,credit,description"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colEntryID = 0
	colDate    = 1
	colAccount = 2
	colDebit   = 3
	colCredit  = 4
	colDesc    = 5
)

// WriteLines writes journal lines as CSV (including header).
func WriteLines(w io.Writer, lines []model.JournalLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLine converts a JournalLine to a CSV row. Both amount columns are
// always written so the file sums cleanly in a spreadsheet.
func MarshalLine(line model.JournalLine) []string {
	row := make([]string, numFields)
	row[colEntryID] = line.EntryID
	row[colDate] = line.Date.Format(dateFormat)
	row[colAccount] = line.Account
	row[colDebit] = line.Debit.StringFixed(2)
	row[colCredit] = line.Credit.StringFixed(2)
	row[colDesc] = line.Description
	return row
}
