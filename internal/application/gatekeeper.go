package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

const (
	OutcomeAccepted    = "accepted"
	OutcomeBlacklisted = "blacklisted"
	OutcomeNotReady    = "not_ready"
	OutcomePaused      = "paused"
)

type Decision struct {
	Allow   bool
	Outcome string
	// Message is sent to the counterparty before the rejection. Empty means a silent reject.
	Message string
}

type Gatekeeper struct {
	client   ports.Client
	policy   domain.Policy
	state    *domain.TradingState
	messages Messages
	metrics  ports.Metrics
	logger   *slog.Logger
}

func NewGatekeeper(client ports.Client, policy domain.Policy, state *domain.TradingState, messages Messages, metrics ports.Metrics, logger *slog.Logger) *Gatekeeper {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Gatekeeper{
		client:   client,
		policy:   policy,
		state:    state,
		messages: messages,
		metrics:  metrics,
		logger:   logger,
	}
}

func (g *Gatekeeper) Decide(id domain.UserID) Decision {
	switch {
	case g.policy.IsBlacklisted(id):
		return Decision{Outcome: OutcomeBlacklisted}
	case !g.state.CanTrade():
		return Decision{Outcome: OutcomeNotReady, Message: g.messages.NotReady}
	case g.state.Paused() && !g.policy.IsOwner(id):
		return Decision{Outcome: OutcomePaused, Message: g.messages.Paused}
	default:
		return Decision{Allow: true, Outcome: OutcomeAccepted}
	}
}

// HandleProposal decides a trade proposal and answers it through the protocol.
func (g *Gatekeeper) HandleProposal(ctx context.Context, proposal domain.TradeProposed) error {
	decision := g.Decide(proposal.User)
	g.metrics.ProposalDecided(decision.Outcome)
	g.logger.Info("trade proposal decided",
		"proposal", string(proposal.ProposalID),
		"user", string(proposal.User),
		"outcome", decision.Outcome,
	)

	if decision.Message != "" {
		if err := g.client.SendMessage(ctx, proposal.User, decision.Message); err != nil {
			g.logger.Error("send rejection message failed", "user", string(proposal.User), "err", err)
		}
	}

	if err := g.client.RespondToTrade(ctx, proposal.ProposalID, decision.Allow); err != nil {
		return fmt.Errorf("respond to trade proposal %s: %w", proposal.ProposalID, err)
	}

	return nil
}
