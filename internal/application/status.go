package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
)

// StatusReport summarizes configuration, persisted restart state and, when reachable, the
// running bot.
type StatusReport struct {
	ProfileID     string
	OwnerID       string
	Environment   string
	StateBackend  string
	StateLocation string
	RecordsURL    string
	MetricsListen string
	Blacklisted   int
	Whitelisted   int

	Servers    []string
	HasSentry  bool
	WebSession bool
	Cookies    int

	Live *LiveStatus
}

type LiveStatus struct {
	domain.TradingSnapshot
	LiveSessions int `json:"liveSessions"`
}

// LoadStatus fills the persisted fields of report from store. Missing entries stay empty.
func LoadStatus(ctx context.Context, store ports.StateStore, report StatusReport) (StatusReport, error) {
	servers, err := store.Servers(ctx)
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		return report, fmt.Errorf("load servers: %w", err)
	}
	report.Servers = servers

	sentry, err := store.Sentry(ctx)
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		return report, fmt.Errorf("load sentry: %w", err)
	}
	report.HasSentry = len(sentry) > 0

	session, err := store.WebSession(ctx)
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		return report, fmt.Errorf("load web session: %w", err)
	}
	report.WebSession = !session.Empty()
	report.Cookies = len(session.Cookies)

	return report, nil
}
