package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

// GuardRelease selects how the in-flight guard is cleared after the helper is launched.
type GuardRelease string

const (
	// GuardReleaseOnExit clears the guard when the helper process exits.
	GuardReleaseOnExit GuardRelease = "exit"
	// GuardReleaseAfterTimeout clears the guard after a fixed delay. Used where the launched
	// process detaches immediately and its exit says nothing about the helper.
	GuardReleaseAfterTimeout GuardRelease = "timeout"
)

func GuardReleaseFor(environment string) GuardRelease {
	if environment == "windows" {
		return GuardReleaseAfterTimeout
	}
	return GuardReleaseOnExit
}

type OfferTimings struct {
	Delay        time.Duration
	GuardTimeout time.Duration
}

func DefaultOfferTimings() OfferTimings {
	return OfferTimings{
		Delay:        10 * time.Second,
		GuardTimeout: 5 * time.Minute,
	}
}

type OfferPoller struct {
	state   *domain.TradingState
	helper  ports.OfferHelper
	clock   ports.Clock
	release GuardRelease
	timings OfferTimings
	metrics ports.Metrics
	logger  *slog.Logger
}

func NewOfferPoller(state *domain.TradingState, helper ports.OfferHelper, clock ports.Clock, release GuardRelease, timings OfferTimings, metrics ports.Metrics, logger *slog.Logger) *OfferPoller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &OfferPoller{
		state:   state,
		helper:  helper,
		clock:   clock,
		release: release,
		timings: timings,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleOffersPending schedules an unforced acceptance run once the offers had time to settle.
func (p *OfferPoller) HandleOffersPending(ctx context.Context, event domain.TradeOffersPending) {
	p.logger.Info("trade offers pending", "count", event.Count)
	if event.Count <= 0 {
		return
	}
	if !p.state.CanTrade() {
		p.logger.Info("cannot accept trade offers yet")
		return
	}

	detached := context.WithoutCancel(ctx)
	p.clock.AfterFunc(p.timings.Delay, func() {
		if _, err := p.AcceptAll(detached, false); err != nil {
			p.logger.Info("trade offer acceptance skipped", "err", err)
		}
	})
}

// AcceptAll launches the acceptance helper. Without force it refuses while paused or while a
// previous run still holds the guard.
func (p *OfferPoller) AcceptAll(ctx context.Context, force bool) (ports.OfferRun, error) {
	if err := p.state.BeginOfferRun(force); err != nil {
		return nil, err
	}
	p.metrics.OfferRunStarted()

	if p.release == GuardReleaseAfterTimeout {
		p.clock.AfterFunc(p.timings.GuardTimeout, p.state.EndOfferRun)
	}

	run, err := p.helper.Start(ctx)
	if err != nil {
		p.state.EndOfferRun()
		return nil, fmt.Errorf("launch offer helper: %w", err)
	}
	p.logger.Info("offer helper launched", "force", force)

	if p.release == GuardReleaseOnExit {
		go func() {
			<-run.Done()
			if err := run.Err(); err != nil {
				p.logger.Error("offer helper exited", "err", err)
			} else {
				p.logger.Info("offer helper exited")
			}
			p.state.EndOfferRun()
		}()
	}

	return run, nil
}
