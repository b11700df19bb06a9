package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/report"
)

func newReportCommand(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a standalone HTML report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, s, err := a.derive(cmd)
			if err != nil {
				return err
			}
			doc := b.Document(s.cfg.Business.Name, s.cfg.Money())
			return writeTo(cmd, outPath, func(w io.Writer) error {
				return report.RenderHTML(w, doc)
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "report.html", `output file ("-" for stdout)`)
	return cmd
}
