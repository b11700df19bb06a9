package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/report"
)

func newTrialBalanceCommand(a *app) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Show the trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, s, err := a.derive(cmd)
			if err != nil {
				return err
			}
			rows := b.TrialBalance()
			if csvPath != "" {
				return writeTo(cmd, csvPath, func(w io.Writer) error {
					return report.WriteTrialBalance(w, rows)
				})
			}

			money := s.cfg.Money()
			out := cmd.OutOrStdout()
			tw := newTable(out)
			fmt.Fprintln(tw, "ACCOUNT\tCLASSIFICATION\tDEBIT\tCREDIT")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Account, r.Type,
					blankZero(money.Format, r.Debit), blankZero(money.Format, r.Credit))
			}
			debit, credit := b.TrialBalanceTotals()
			fmt.Fprintf(tw, "TOTAL\t\t%s\t%s\n", money.Format(debit), money.Format(credit))
			if err := tw.Flush(); err != nil {
				return err
			}

			if report.CheckBalanced(rows, b.Tolerance()) == nil {
				fmt.Fprintln(out, "Trial balance is balanced.")
			} else {
				fmt.Fprintln(out, "Trial balance is NOT balanced.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", `write trial balance CSV to FILE ("-" for stdout)`)
	return cmd
}
