package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/book"
	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/report"
)

func newLedgerCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger [ACCOUNT]",
		Short: "Show the ledger of one account, or of every account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, s, err := a.derive(cmd)
			if err != nil {
				return err
			}
			money := s.cfg.Money()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if _, err := b.LookupLedger(args[0]); err != nil {
					s.log.Warn().Err(err).Str("kind", errs.Kind(err)).Msg("account not used by any transaction")
				}
				return printLedger(out, b, args[0], money)
			}
			for i, acct := range b.Accounts() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := printLedger(out, b, acct.Name, money); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printLedger(out io.Writer, b *book.Book, name string, money report.Money) error {
	fmt.Fprintf(out, "== %s ==\n", name)
	entries := b.Ledger(name)
	if len(entries) == 0 {
		fmt.Fprintln(out, "(no entries)")
		return nil
	}
	tw := newTable(out)
	fmt.Fprintln(tw, "ENTRY\tDATE\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.EntryID, e.Date.Format("2006-01-02"), e.Description,
			blankZero(money.Format, e.Debit), blankZero(money.Format, e.Credit), money.Format(e.Balance))
	}
	return tw.Flush()
}

// blankZero formats d, leaving zero amounts empty like a paper ledger.
func blankZero(format func(decimal.Decimal) string, d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return format(d)
}
