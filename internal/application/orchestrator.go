package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/google/uuid"
)

const DefaultMaxTradeMessages = 50

// WebCredentials holds the current web session the trade sessions are opened with.
type WebCredentials struct {
	mu      sync.RWMutex
	session domain.WebSession
}

func (c *WebCredentials) Get() domain.WebSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.WebSession{SessionID: c.session.SessionID, Cookies: append([]string(nil), c.session.Cookies...)}
}

func (c *WebCredentials) Set(session domain.WebSession) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

// SessionReport is what an orchestrated session ended with.
type SessionReport struct {
	User    domain.UserID
	Status  domain.SessionStatus
	TradeID string
	Claimed []domain.Item
	Given   []domain.Item
}

type Orchestrator struct {
	client      ports.Client
	sessions    ports.SessionFactory
	state       *domain.TradingState
	credentials *WebCredentials
	links       InventoryLinks
	resolver    *Resolver
	records     *BestEffortRecords
	messages    Messages
	metrics     ports.Metrics
	logger      *slog.Logger

	maxMessages int
	newTradeID  func() string
}

type OrchestratorDeps struct {
	Client      ports.Client
	Sessions    ports.SessionFactory
	State       *domain.TradingState
	Credentials *WebCredentials
	Links       InventoryLinks
	Records     *BestEffortRecords
	Messages    Messages
	Metrics     ports.Metrics
	Logger      *slog.Logger
	MaxMessages int
	NewTradeID  func() string
}

func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	if deps.Metrics == nil {
		deps.Metrics = ports.NopMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.MaxMessages <= 0 {
		deps.MaxMessages = DefaultMaxTradeMessages
	}
	if deps.NewTradeID == nil {
		deps.NewTradeID = uuid.NewString
	}
	if deps.Credentials == nil {
		deps.Credentials = &WebCredentials{}
	}

	return &Orchestrator{
		client:      deps.Client,
		sessions:    deps.Sessions,
		state:       deps.State,
		credentials: deps.Credentials,
		links:       deps.Links,
		resolver:    NewResolver(deps.Links, deps.Logger),
		records:     deps.Records,
		messages:    deps.Messages,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		maxMessages: deps.MaxMessages,
		newTradeID:  deps.NewTradeID,
	}
}

// negotiation is the per-session state owned by one Run call.
type negotiation struct {
	user     domain.UserID
	session  ports.TradeSession
	messages int
	claimed  []domain.Item
}

// Run drives one trade session from start to end and blocks until the session ends.
// It returns a nil report when the session was never opened.
func (o *Orchestrator) Run(ctx context.Context, user domain.UserID) (*SessionReport, error) {
	if !o.state.CanTrade() {
		o.logger.Info("not ready to trade", "user", string(user))
		o.sendDirect(ctx, user, o.messages.NotReady)
		return nil, nil
	}

	session := o.sessions.NewSession()
	if err := session.Open(ctx, user, o.credentials.Get()); err != nil {
		return nil, fmt.Errorf("open trade session with %s: %w", user, err)
	}
	o.logger.Info("trade session opened", "user", string(user))

	if !o.state.Paused() {
		o.setPersona(ctx, domain.PersonaBusy)
	}

	n := &negotiation{user: user, session: session}
	o.chat(n, o.messages.Instructions()...).Run(ctx, o.logger)
	o.logger.Info("instruction messages sent", "user", string(user))

	status := o.negotiate(ctx, n)
	return o.end(ctx, n, status), nil
}

func (o *Orchestrator) negotiate(ctx context.Context, n *negotiation) domain.SessionStatus {
	events := n.session.Events()
	for {
		select {
		case <-ctx.Done():
			o.logger.Warn("trade session abandoned", "user", string(n.user), "err", ctx.Err())
			return domain.SessionStatusUnknown
		case event, ok := <-events:
			if !ok {
				o.logger.Warn("trade session closed without end event", "user", string(n.user))
				return domain.SessionStatusUnknown
			}

			switch ev := event.(type) {
			case domain.SessionChat:
				o.handleChat(ctx, n, ev.Text)
			case domain.SessionReady:
				o.handleReady(ctx, n)
			case domain.SessionEnded:
				return ev.Status
			default:
				o.logger.Warn("unhandled session event", "kind", string(event.SessionKind()))
			}
		}
	}
}

func (o *Orchestrator) handleChat(ctx context.Context, n *negotiation, text string) {
	n.messages++
	if n.messages >= o.maxMessages {
		o.metrics.ChatIgnored()
		return
	}
	o.logger.Info("trade chat", "user", string(n.user), "text", text)

	switch {
	case !o.links.IsOwnInventory(text):
		o.chat(n, o.messages.BadLink).Run(ctx, o.logger)
	case o.links.IsBarePage(text):
		lines := append([]string{o.messages.WrongLink}, o.messages.TakeInstructions...)
		o.chat(n, lines...).Run(ctx, o.logger)
	default:
		o.claim(ctx, n, text)
	}
}

func (o *Orchestrator) claim(ctx context.Context, n *negotiation, text string) {
	item, ok := o.resolver.Resolve(ctx, n.session, text)
	if !ok {
		o.logger.Info("no item resolved", "user", string(n.user), "text", text)
		o.chat(n, o.messages.ItemNotFound).Run(ctx, o.logger)
		return
	}

	if err := n.session.AddItem(ctx, item); err != nil {
		o.logger.Info("item add rejected", "user", string(n.user), "item", item.CompositeID(), "err", err)
		o.chat(n, o.messages.CantAdd).Run(ctx, o.logger)
		return
	}

	n.claimed = append(n.claimed, item)
	o.chat(n, o.messages.ItemAdded).Run(ctx, o.logger)
}

func (o *Orchestrator) handleReady(ctx context.Context, n *negotiation) {
	o.logger.Info("counterparty ready", "user", string(n.user))

	if err := n.session.Ready(ctx); err != nil {
		o.logger.Error("mark ready failed", "user", string(n.user), "err", err)
		return
	}
	if err := n.session.Confirm(ctx); err != nil {
		o.logger.Error("confirm trade failed", "user", string(n.user), "err", err)
		return
	}
	o.logger.Info("trade confirmed", "user", string(n.user))
}

func (o *Orchestrator) end(ctx context.Context, n *negotiation, status domain.SessionStatus) *SessionReport {
	o.logger.Info("trade ended", "user", string(n.user), "status", string(status))
	o.metrics.SessionEnded(status)

	if !o.state.Paused() {
		o.setPersona(ctx, domain.PersonaLookingToTrade)
	}

	report := &SessionReport{User: n.user, Status: status, Claimed: n.claimed}
	if status != domain.SessionStatusComplete {
		return report
	}

	o.records.TradeAccepted(ctx, n.user)

	given, err := n.session.GivenItems(ctx)
	if err != nil {
		o.logger.Error("fetch given items failed", "user", string(n.user), "err", err)
	}
	report.Given = given
	report.TradeID = o.newTradeID()

	for _, item := range n.claimed {
		o.records.PostTradeItem(ctx, domain.TradeItemRecord{User: n.user, TradeID: report.TradeID, Item: item, Claimed: true})
	}
	for _, item := range given {
		o.records.PostTradeItem(ctx, domain.TradeItemRecord{User: n.user, TradeID: report.TradeID, Item: item, Claimed: false})
	}
	o.metrics.ItemsRecorded(true, len(n.claimed))
	o.metrics.ItemsRecorded(false, len(given))

	o.sendDirect(ctx, n.user, o.messages.TradeComplete)
	return report
}

func (o *Orchestrator) chat(n *negotiation, lines ...string) Sequence {
	return chatSequence(n.session.SendChat, lines...)
}

func (o *Orchestrator) sendDirect(ctx context.Context, user domain.UserID, text string) {
	if err := o.client.SendMessage(ctx, user, text); err != nil {
		o.logger.Error("send message failed", "user", string(user), "err", err)
	}
}

func (o *Orchestrator) setPersona(ctx context.Context, state domain.PersonaState) {
	if err := o.client.SetPersonaState(ctx, state); err != nil {
		o.logger.Error("set persona state failed", "state", string(state), "err", err)
	}
}
