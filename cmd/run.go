package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/swapbot/internal/adapters/bridge"
	csvexport "github.com/bnema/swapbot/internal/adapters/export/csv"
	"github.com/bnema/swapbot/internal/adapters/helper"
	"github.com/bnema/swapbot/internal/adapters/history/community"
	httpadapter "github.com/bnema/swapbot/internal/adapters/http"
	promadapter "github.com/bnema/swapbot/internal/adapters/metrics/prometheus"
	"github.com/bnema/swapbot/internal/application"
	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the bot against a protocol sidecar on stdin/stdout",
		Long:  "run speaks newline-delimited JSON with the protocol sidecar over stdin and stdout. Logs go to stderr.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runBot(ctx, app, cmd)
		},
	}
}

func runBot(ctx context.Context, app *app, cmd *cobra.Command) error {
	link := bridge.New(cmd.InOrStdin(), cmd.OutOrStdout(), app.logger, bridge.WithLogOnDetails(app.logOnDetails(ctx)))
	defer link.Close()

	metrics := promadapter.New()
	bot, err := app.newBot(link, metrics)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- link.Serve(ctx)
	}()

	if app.cfg.MetricsListen != "" {
		server, err := httpadapter.Listen(app.cfg.MetricsListen, httpadapter.NewHandler(bot, metrics.Handler()), app.logger)
		if err != nil {
			return err
		}
		go func() {
			if err := server.Serve(ctx); err != nil {
				app.logger.Error("operator endpoint stopped", "err", err)
			}
		}()
	}

	runErr := bot.Run(ctx)
	cancel()
	if err := <-serveErr; err != nil {
		return errors.Join(runErr, err)
	}

	return runErr
}

// newBot assembles the application services around one protocol client.
func (a *app) newBot(link *bridge.Bridge, metrics ports.Metrics) (*application.Bot, error) {
	cfg := a.cfg
	policy := a.policy()
	links := a.links()
	messages := application.DefaultMessages(links)
	state := &domain.TradingState{}
	credentials := &application.WebCredentials{}
	records := application.NewBestEffortRecords(a.recordSink(), a.logger)

	friends := application.NewFriendManager(link, records, policy, nil, application.FriendTimings{
		WelcomeDelay:    cfg.Friends.WelcomeDelay,
		WelcomeGap:      cfg.Friends.WelcomeGap,
		AutoRemoveAfter: cfg.Friends.AutoRemoveAfter,
	}, messages, a.logger)

	gatekeeper := application.NewGatekeeper(link, policy, state, messages, metrics, a.logger)

	orchestrator := application.NewOrchestrator(application.OrchestratorDeps{
		Client:      link,
		Sessions:    link,
		State:       state,
		Credentials: credentials,
		Links:       links,
		Records:     records,
		Messages:    messages,
		Metrics:     metrics,
		Logger:      a.logger,
		MaxMessages: cfg.MaxTradeMessages,
	})

	poller := a.newPoller(state, metrics)

	sink, err := csvexport.NewSink(cfg.History.Output)
	if err != nil {
		return nil, err
	}
	source := community.NewLiveSource(cfg.CommunityURL, cfg.ProfileID, credentials.Get, 0)
	exporter := application.NewHistoryExporter(source, sink, cfg.HMACSecret, cfg.History.MaxPages, a.logger)

	console := application.NewConsole(link, policy, state, friends, poller, exporter, messages, a.logger)

	return application.NewBot(application.BotDeps{
		Client:            link,
		Store:             a.store,
		State:             state,
		Credentials:       credentials,
		Friends:           friends,
		Gatekeeper:        gatekeeper,
		Orchestrator:      orchestrator,
		Poller:            poller,
		Console:           console,
		Records:           records,
		Logger:            a.logger,
		ReconnectInterval: cfg.ReconnectInterval,
	}), nil
}

func (a *app) newPoller(state *domain.TradingState, metrics ports.Metrics) *application.OfferPoller {
	launcher := helper.NewLauncher(a.cfg.Environment, a.cfg.Offers.Script, a.logger)
	if a.cfg.Offers.Command != "" {
		launcher.Binary = a.cfg.Offers.Command
	}

	timings := application.OfferTimings{Delay: a.cfg.Offers.Delay, GuardTimeout: a.cfg.Offers.WindowsTimeout}
	return application.NewOfferPoller(state, launcher, nil, application.GuardReleaseFor(a.cfg.Environment), timings, metrics, a.logger)
}

// logOnDetails combines the configured account with the persisted sentry and server list.
func (a *app) logOnDetails(ctx context.Context) bridge.LogOnDetails {
	details := bridge.LogOnDetails{AccountName: a.cfg.Account.Name, Password: a.cfg.Account.Password}

	if sentry, err := a.store.Sentry(ctx); err == nil {
		details.Sentry = sentry
	} else if !errors.Is(err, domain.ErrStateNotFound) {
		a.logger.Warn("load sentry failed", "err", err)
	}
	if servers, err := a.store.Servers(ctx); err == nil {
		details.Servers = servers
	} else if !errors.Is(err, domain.ErrStateNotFound) {
		a.logger.Warn("load servers failed", "err", err)
	}

	return details
}

func requireWebSession(ctx context.Context, store ports.StateStore) (domain.WebSession, error) {
	session, err := store.WebSession(ctx)
	if errors.Is(err, domain.ErrStateNotFound) || (err == nil && session.Empty()) {
		return domain.WebSession{}, errors.New("no web session stored yet; run the bot once to establish one")
	}
	if err != nil {
		return domain.WebSession{}, fmt.Errorf("load web session: %w", err)
	}
	return session, nil
}
