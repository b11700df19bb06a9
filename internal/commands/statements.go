package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatementsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "statements",
		Short: "Show the income statement and balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, s, err := a.derive(cmd)
			if err != nil {
				return err
			}
			money := s.cfg.Money()
			is := b.IncomeStatement()
			bs := b.BalanceSheet()

			out := cmd.OutOrStdout()
			if name := s.cfg.Business.Name; name != "" {
				fmt.Fprintf(out, "%s\n\n", name)
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "INCOME STATEMENT\t")
			for _, r := range is.Revenues {
				fmt.Fprintf(tw, "  %s\t%s\n", r.Account, money.Format(r.Amount))
			}
			fmt.Fprintf(tw, "Total Revenue\t%s\n", money.Format(is.Revenue))
			for _, e := range is.Expenses {
				fmt.Fprintf(tw, "  %s\t%s\n", e.Account, money.Format(e.Amount))
			}
			fmt.Fprintf(tw, "Total Expense\t%s\n", money.Format(is.Expense))
			fmt.Fprintf(tw, "Net Income\t%s\n", money.Format(is.NetIncome))
			fmt.Fprintln(tw, "\t")

			fmt.Fprintln(tw, "BALANCE SHEET\t")
			for _, l := range bs.AssetLines {
				fmt.Fprintf(tw, "  %s\t%s\n", l.Account, money.Format(l.Amount))
			}
			fmt.Fprintf(tw, "Total Assets\t%s\n", money.Format(bs.Assets))
			for _, l := range bs.LiabilityLines {
				fmt.Fprintf(tw, "  %s\t%s\n", l.Account, money.Format(l.Amount))
			}
			fmt.Fprintf(tw, "Total Liabilities\t%s\n", money.Format(bs.Liabilities))
			for _, l := range bs.EquityLines {
				fmt.Fprintf(tw, "  %s\t%s\n", l.Account, money.Format(l.Amount))
			}
			fmt.Fprintf(tw, "  Net Income\t%s\n", money.Format(bs.NetIncome))
			fmt.Fprintf(tw, "Total Equity\t%s\n", money.Format(bs.Equity))
			fmt.Fprintf(tw, "Liabilities + Equity\t%s\n", money.Format(bs.Liabilities.Add(bs.Equity)))
			return tw.Flush()
		},
	}
}
