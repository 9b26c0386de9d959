package ports

import (
	"context"

	"github.com/bnema/swapbot/internal/domain"
)

// TradeSession is one live trade negotiation with a single counterparty.
type TradeSession interface {
	Open(ctx context.Context, partner domain.UserID, web domain.WebSession) error
	Events() <-chan domain.SessionEvent

	SendChat(ctx context.Context, text string) error
	// LoadInventory returns domain.ErrNoInventory when the fetch yields nothing.
	LoadInventory(ctx context.Context, appID, contextID string) ([]domain.Item, error)
	AddItem(ctx context.Context, item domain.Item) error
	Ready(ctx context.Context) error
	Confirm(ctx context.Context) error
	// GivenItems returns what the counterparty put into the finished trade.
	GivenItems(ctx context.Context) ([]domain.Item, error)
}

type SessionFactory interface {
	NewSession() TradeSession
}
