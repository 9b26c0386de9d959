package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

const DefaultReconnectInterval = time.Minute

type BotDeps struct {
	Client       ports.Client
	Store        ports.StateStore
	State        *domain.TradingState
	Credentials  *WebCredentials
	Friends      *FriendManager
	Gatekeeper   *Gatekeeper
	Orchestrator *Orchestrator
	Poller       *OfferPoller
	Console      *Console
	Records      *BestEffortRecords
	Clock        ports.Clock
	Logger       *slog.Logger

	ReconnectInterval time.Duration
}

// Bot consumes protocol events and routes them to the component that owns each concern.
type Bot struct {
	deps BotDeps

	mu   sync.Mutex
	live map[domain.UserID]struct{}
	wg   sync.WaitGroup
}

func NewBot(deps BotDeps) *Bot {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.ReconnectInterval <= 0 {
		deps.ReconnectInterval = DefaultReconnectInterval
	}
	if deps.Credentials == nil {
		deps.Credentials = &WebCredentials{}
	}

	return &Bot{deps: deps, live: map[domain.UserID]struct{}{}}
}

// Run processes events until ctx is cancelled or the event stream closes. Live trade sessions
// and pending record deliveries are drained before it returns.
func (b *Bot) Run(ctx context.Context) error {
	b.restoreWebSession(ctx)

	if err := b.deps.Client.LogOn(ctx); err != nil {
		b.deps.Logger.Error("log on failed", "err", err)
	}

	reconnect := make(chan struct{}, 1)
	timer := b.scheduleReconnect(reconnect)
	defer func() {
		timer.Stop()
		b.wg.Wait()
		if b.deps.Console != nil {
			b.deps.Console.Wait()
		}
		if b.deps.Records != nil {
			b.deps.Records.Flush()
		}
	}()

	events := b.deps.Client.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reconnect:
			b.reconnect(ctx)
			timer = b.scheduleReconnect(reconnect)
		case event, ok := <-events:
			if !ok {
				b.deps.Logger.Info("event stream closed")
				return nil
			}
			b.Dispatch(ctx, event)
		}
	}
}

// Dispatch handles a single event. Session starts are handed to their own goroutine; every other
// handler runs to completion before Dispatch returns.
func (b *Bot) Dispatch(ctx context.Context, event domain.Event) {
	logger := b.deps.Logger

	switch ev := event.(type) {
	case domain.LoggedOn:
		logger.Info("logged on")
		b.deps.State.SetCanTrade(false)
		b.setPersona(ctx, domain.PersonaOnline)
	case domain.LoggedOff:
		logger.Warn("logged off")
		b.deps.State.SetCanTrade(false)
	case domain.ProtocolError:
		logger.Error("protocol error", "message", ev.Message)
		b.deps.State.SetCanTrade(false)
	case domain.ServersUpdated:
		if err := b.deps.Store.SaveServers(ctx, ev.Servers); err != nil {
			logger.Error("persist server list failed", "err", err)
		}
	case domain.SentryUpdated:
		if err := b.deps.Store.SaveSentry(ctx, ev.Blob); err != nil {
			logger.Error("persist sentry failed", "err", err)
		}
	case domain.WebSessionEstablished:
		b.handleWebSession(ctx, ev.Session)
	case domain.RelationshipChanged:
		if err := b.deps.Friends.HandleRelationship(ctx, ev); err != nil {
			logger.Error("relationship change failed", "user", string(ev.User), "err", err)
		}
	case domain.FriendMessage:
		if b.deps.Console == nil {
			logger.Debug("friend message without console", "user", string(ev.User))
			return
		}
		if err := b.deps.Console.HandleMessage(ctx, ev); err != nil {
			logger.Error("owner command failed", "text", ev.Text, "err", err)
		}
	case domain.TradeProposed:
		if err := b.deps.Gatekeeper.HandleProposal(ctx, ev); err != nil {
			logger.Error("trade proposal failed", "user", string(ev.User), "err", err)
		}
	case domain.SessionStarted:
		b.startSession(ctx, ev.User)
	case domain.TradeOffersPending:
		b.deps.Poller.HandleOffersPending(ctx, ev)
	default:
		logger.Warn("unhandled event", "kind", string(event.Kind()))
	}
}

func (b *Bot) handleWebSession(ctx context.Context, session domain.WebSession) {
	b.deps.Credentials.Set(session)
	if err := b.deps.Store.SaveWebSession(ctx, session); err != nil {
		b.deps.Logger.Error("persist web session failed", "err", err)
	}
	b.deps.Logger.Info("web session established")

	if !b.deps.State.Paused() {
		b.setPersona(ctx, domain.PersonaLookingToTrade)
	}
	b.deps.State.SetCanTrade(true)
}

func (b *Bot) startSession(ctx context.Context, user domain.UserID) {
	b.mu.Lock()
	if _, busy := b.live[user]; busy {
		b.mu.Unlock()
		b.deps.Logger.Warn("trade session already live", "user", string(user))
		return
	}
	b.live[user] = struct{}{}
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			b.mu.Lock()
			delete(b.live, user)
			b.mu.Unlock()
		}()

		report, err := b.deps.Orchestrator.Run(ctx, user)
		if err != nil {
			b.deps.Logger.Error("trade session failed", "user", string(user), "err", err)
			return
		}
		if report != nil {
			b.deps.Logger.Info("trade session finished",
				"user", string(user),
				"status", string(report.Status),
				"claimed", len(report.Claimed),
				"given", len(report.Given),
			)
		}
	}()
}

// LiveSessions reports how many trade sessions are currently running.
func (b *Bot) LiveSessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}

func (b *Bot) Snapshot() domain.TradingSnapshot {
	return b.deps.State.Snapshot()
}

func (b *Bot) reconnect(ctx context.Context) {
	if b.deps.Client.LoggedOn() {
		return
	}
	b.deps.Logger.Info("reconnecting")
	if err := b.deps.Client.LogOn(ctx); err != nil {
		b.deps.Logger.Error("reconnect failed", "err", err)
	}
}

func (b *Bot) scheduleReconnect(fire chan<- struct{}) ports.Timer {
	return b.deps.Clock.AfterFunc(b.deps.ReconnectInterval, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
}

func (b *Bot) restoreWebSession(ctx context.Context) {
	session, err := b.deps.Store.WebSession(ctx)
	switch {
	case errors.Is(err, domain.ErrStateNotFound):
		return
	case err != nil:
		b.deps.Logger.Warn("load web session failed", "err", err)
		return
	}
	b.deps.Credentials.Set(session)
}

func (b *Bot) setPersona(ctx context.Context, state domain.PersonaState) {
	if err := b.deps.Client.SetPersonaState(ctx, state); err != nil {
		b.deps.Logger.Error("set persona state failed", "state", string(state), "err", err)
	}
}
