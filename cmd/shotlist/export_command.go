package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/shotlist/internal/export"
	"github.com/nhle/shotlist/internal/gateway"
	"github.com/nhle/shotlist/internal/logging"
)

func newExportCommand(cc *commandContext) *cobra.Command {
	var formatFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a project to PDF, PNG, or CSV without opening the editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			project, err := loadProject(args[0])
			if err != nil {
				return err
			}

			output := outputFlag
			if output == "" {
				base := strings.TrimSuffix(args[0], gateway.FileExt)
				output = base + "." + string(format)
			}

			exporter := export.New(export.PNGRenderer{}, logging.Discard())
			report, err := exporter.Export(project, format, output)
			if err != nil {
				return err
			}

			for _, f := range report.Files {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Clean(f))
			}
			if len(report.FailedPages) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d page(s) failed to render\n",
					len(report.FailedPages))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "pdf", "Output format: pdf, png, or csv")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (defaults next to the input file)")

	return cmd
}
