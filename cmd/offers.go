package cmd

import (
	"fmt"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/spf13/cobra"
)

func newOffersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "offers",
		Short: "Run the trade offer helper once and wait for it to finish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			poller := app.newPoller(&domain.TradingState{}, ports.NopMetrics{})

			run, err := poller.AcceptAll(cmd.Context(), true)
			if err != nil {
				return err
			}
			select {
			case <-run.Done():
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			if err := run.Err(); err != nil {
				return fmt.Errorf("offer helper: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "offer helper finished")
			return err
		},
	}
}
