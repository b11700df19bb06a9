package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/accounts"
	"github.com/minibook-dev/minibook/internal/model"
)

func newAccountsCommand(a *app) *cobra.Command {
	var csvOut, showRules bool
	var typeName string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List every account with its classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showRules {
				return printRules(cmd, a)
			}

			b, _, err := a.derive(cmd)
			if err != nil {
				return err
			}

			list := b.Accounts()
			if typeName != "" {
				t := model.AccountType(strings.ToLower(typeName))
				if !t.Valid() {
					return fmt.Errorf("unknown account type %q", typeName)
				}
				list = b.AccountsByType(t)
			}
			if csvOut {
				return accounts.WriteAccounts(cmd.OutOrStdout(), list)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ACCOUNT\tCLASSIFICATION\tNORMAL SIDE")
			for _, acct := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", acct.Name, acct.Type, acct.Type.NormalSide())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&csvOut, "csv", false, "write CSV to stdout")
	cmd.Flags().StringVar(&typeName, "type", "", "only list one classification (asset, liability, equity, revenue, expense)")
	cmd.Flags().BoolVar(&showRules, "rules", false, "print the classification rules in evaluation order")
	return cmd
}

// printRules shows the configured rules followed by the built-in ones.
func printRules(cmd *cobra.Command, a *app) error {
	s, err := a.open(cmd)
	if err != nil {
		return err
	}
	classifier, err := s.cfg.Classifier()
	if err != nil {
		return err
	}

	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, "#\tCLASSIFICATION\tKEYWORDS")
	for i, r := range classifier.Rules() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, r.Type, strings.Join(r.Keywords, ", "))
	}
	fmt.Fprintf(tw, "-\t%s\t(anything else)\n", accounts.FallbackType)
	return tw.Flush()
}
