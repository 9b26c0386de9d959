package ports

import (
	"context"

	"github.com/bnema/swapbot/internal/domain"
)

type RecordSink interface {
	UserAdded(ctx context.Context, id domain.UserID) error
	UserRemoved(ctx context.Context, id domain.UserID) error
	TradeAccepted(ctx context.Context, id domain.UserID) error
	TradeDeclined(ctx context.Context, id domain.UserID) error
	PostTradeItem(ctx context.Context, record domain.TradeItemRecord) error
}
