package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

const defaultRecordTimeout = 30 * time.Second

// BestEffortRecords delivers record-service notifications in the background.
// Failures are logged and never retried; Flush waits for in-flight deliveries.
type BestEffortRecords struct {
	sink    ports.RecordSink
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewBestEffortRecords(sink ports.RecordSink, logger *slog.Logger) *BestEffortRecords {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &BestEffortRecords{sink: sink, logger: logger, timeout: defaultRecordTimeout}
}

func (r *BestEffortRecords) UserAdded(ctx context.Context, id domain.UserID) {
	r.deliver(ctx, "user added", slog.String("user", string(id)), func(ctx context.Context) error {
		return r.sink.UserAdded(ctx, id)
	})
}

func (r *BestEffortRecords) UserRemoved(ctx context.Context, id domain.UserID) {
	r.deliver(ctx, "user removed", slog.String("user", string(id)), func(ctx context.Context) error {
		return r.sink.UserRemoved(ctx, id)
	})
}

func (r *BestEffortRecords) TradeAccepted(ctx context.Context, id domain.UserID) {
	r.deliver(ctx, "trade accepted", slog.String("user", string(id)), func(ctx context.Context) error {
		return r.sink.TradeAccepted(ctx, id)
	})
}

func (r *BestEffortRecords) PostTradeItem(ctx context.Context, record domain.TradeItemRecord) {
	r.deliver(ctx, "trade item", slog.String("item", record.Item.CompositeID()), func(ctx context.Context) error {
		return r.sink.PostTradeItem(ctx, record)
	})
}

func (r *BestEffortRecords) Flush() {
	r.wg.Wait()
}

func (r *BestEffortRecords) deliver(ctx context.Context, what string, attr slog.Attr, call func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		if err := call(callCtx); err != nil {
			r.logger.Error("record service call failed", "call", what, attr, "err", err)
			return
		}
		r.logger.Debug("record service call delivered", "call", what, attr)
	}()
}
