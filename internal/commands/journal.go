package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/journal"
)

func newJournalCommand(a *app) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the general journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, s, err := a.derive(cmd)
			if err != nil {
				return err
			}
			lines := b.Journal()
			if csvPath != "" {
				return writeTo(cmd, csvPath, func(w io.Writer) error {
					return journal.WriteLines(w, lines)
				})
			}

			money := s.cfg.Money()
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ENTRY\tDATE\tACCOUNT\tDEBIT\tCREDIT\tDESCRIPTION")
			for _, l := range lines {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					l.EntryID, l.Date.Format("2006-01-02"), l.Account,
					blankZero(money.Format, l.Debit), blankZero(money.Format, l.Credit), l.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", `write journal CSV to FILE ("-" for stdout)`)
	return cmd
}
