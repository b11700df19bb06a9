package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/book"
	"github.com/minibook-dev/minibook/internal/config"
	"github.com/minibook-dev/minibook/internal/importer"
)

func newInitCommand() *cobra.Command {
	var name string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create minibook.yaml and a sample transactions.csv",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name, force)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func runInit(out io.Writer, dir, name string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	txPath := filepath.Join(dir, defaultInput)
	if !force {
		for _, p := range []string{cfgPath, txPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", p)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", p, err)
			}
		}
	}

	// Write minibook.yaml.
	if err := config.Save(cfgPath, config.Default(name)); err != nil {
		return err
	}

	// Write the sample transactions.
	f, err := os.Create(txPath)
	if err != nil {
		return fmt.Errorf("creating transactions: %w", err)
	}
	if err := importer.WriteCSV(f, book.SampleRaw()); err != nil {
		f.Close()
		return fmt.Errorf("writing transactions: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}

	fmt.Fprintf(out, "Initialized minibook in %s\n", dir)
	return nil
}
