package commands

import (
	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/buildinfo"
	"github.com/minibook-dev/minibook/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "minibook",
		Short:   "Double-entry bookkeeping from a list of transactions",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.FileName, "config file")
	pf.StringVarP(&a.inputPath, "input", "i", "", "transactions file (.csv or .json)")
	pf.BoolVar(&a.useSample, "sample", false, "use the built-in sample transactions")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(a),
		newJournalCommand(a),
		newLedgerCommand(a),
		newTrialBalanceCommand(a),
		newStatementsCommand(a),
		newReportCommand(a),
		newServeCommand(a),
	)

	return rootCmd
}
