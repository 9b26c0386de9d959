package ports

import (
	"context"

	"github.com/bnema/swapbot/internal/domain"
)

// StateStore persists the small amount of local state that survives restarts.
// Getters return domain.ErrStateNotFound when nothing was stored yet.
type StateStore interface {
	Servers(ctx context.Context) ([]string, error)
	SaveServers(ctx context.Context, servers []string) error
	Sentry(ctx context.Context) ([]byte, error)
	SaveSentry(ctx context.Context, blob []byte) error
	WebSession(ctx context.Context) (domain.WebSession, error)
	SaveWebSession(ctx context.Context, session domain.WebSession) error
}
