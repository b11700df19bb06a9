package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/minibook-dev/minibook/internal/model"
)

// Header is the CSV header for accounts.csv.
var Header = []string{"account", "classification", "normal_side"}

const (
	numFields  = 3
	colName    = 0
	colType    = 1
	colNatural = 2
)

// WriteAccounts writes the classified chart as CSV (including header).
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colNatural] = string(acct.Type.NormalSide())
	return row
}
