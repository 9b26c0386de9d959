package cmd

import (
	"errors"
	"fmt"

	csvexport "github.com/bnema/swapbot/internal/adapters/export/csv"
	"github.com/bnema/swapbot/internal/adapters/history/community"
	"github.com/bnema/swapbot/internal/application"
	"github.com/spf13/cobra"
)

func newExportCmd(app *app) *cobra.Command {
	var anonymized bool
	var output string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the trade history to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if anonymized && app.cfg.HMACSecret == "" {
				return errors.New("export --anon requires hmac_secret")
			}
			if output == "" {
				output = app.cfg.History.Output
			}

			session, err := requireWebSession(cmd.Context(), app.store)
			if err != nil {
				return err
			}

			source, err := community.NewSource(app.cfg.CommunityURL, app.cfg.ProfileID, session, 0)
			if err != nil {
				return err
			}
			sink, err := csvexport.NewSink(output)
			if err != nil {
				return err
			}
			exporter := application.NewHistoryExporter(source, sink, app.cfg.HMACSecret, app.cfg.History.MaxPages, app.logger)

			var result application.ExportResult
			if quiet {
				result, err = exporter.Export(cmd.Context(), anonymized)
			} else {
				result, err = exportWithProgress(cmd.Context(), cmd.ErrOrStderr(), exporter, anonymized)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d records from %d pages to %s\n", result.Records, result.Pages, sink.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&anonymized, "anon", false, "Replace user profile links with keyed hashes")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default history.output)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not show page progress")

	return cmd
}
