package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	statusadapter "github.com/bnema/swapbot/internal/adapters/render/status"
	"github.com/bnema/swapbot/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show configuration, persisted state and the running bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := application.LoadStatus(cmd.Context(), app.store, app.baseStatus())
			if err != nil {
				return err
			}
			report.Live = app.fetchLive(cmd.Context())

			return writeStatusOutput(cmd, app, report, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func (a *app) baseStatus() application.StatusReport {
	return application.StatusReport{
		ProfileID:     a.cfg.ProfileID,
		OwnerID:       a.cfg.OwnerID,
		Environment:   a.cfg.Environment,
		StateBackend:  a.cfg.State.Backend,
		StateLocation: a.stateLocation,
		RecordsURL:    a.cfg.Records.URL,
		MetricsListen: a.cfg.MetricsListen,
		Blacklisted:   len(a.cfg.Blacklist),
		Whitelisted:   len(a.cfg.Whitelist),
	}
}

// fetchLive asks a running bot's operator endpoint for its state. Nil when unreachable.
func (a *app) fetchLive(ctx context.Context) *application.LiveStatus {
	if a.cfg.MetricsListen == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+a.cfg.MetricsListen+"/state", nil)
	if err != nil {
		return nil
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Debug("operator endpoint unreachable", "err", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var live application.LiveStatus
	if err := json.NewDecoder(resp.Body).Decode(&live); err != nil {
		a.logger.Debug("decode operator state failed", "err", err)
		return nil
	}
	return &live
}

func writeStatusOutput(cmd *cobra.Command, app *app, report application.StatusReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), statusadapter.Render(report, statusadapter.RenderOptions{ConfigFile: app.cfg.File}))
	return err
}
