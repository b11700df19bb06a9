package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/minibook-dev/minibook/internal/model"
)

// TrialBalanceHeader is the CSV header for trial_balance.csv.
var TrialBalanceHeader = []string{"account", "classification", "debit", "credit"}

// WriteTrialBalance writes the trial balance as CSV followed by a TOTAL row.
func WriteTrialBalance(w io.Writer, rows []model.TrialBalanceRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(TrialBalanceHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		rec := []string{r.Account, string(r.Type), r.Debit.StringFixed(2), r.Credit.StringFixed(2)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	debit, credit := Totals(rows)
	if err := cw.Write([]string{"TOTAL", "", debit.StringFixed(2), credit.StringFixed(2)}); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
