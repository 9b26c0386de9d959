package ports

import (
	"context"

	"github.com/bnema/swapbot/internal/domain"
)

// Client is the social side of the trading protocol: login, friends, chat, presence and proposals.
type Client interface {
	Events() <-chan domain.Event
	LogOn(ctx context.Context) error
	LoggedOn() bool

	// Friends returns the protocol's current relationship list.
	Friends(ctx context.Context) (map[domain.UserID]domain.Relationship, error)
	AddFriend(ctx context.Context, id domain.UserID) error
	RemoveFriend(ctx context.Context, id domain.UserID) error

	SendMessage(ctx context.Context, id domain.UserID, text string) error
	SetPersonaState(ctx context.Context, state domain.PersonaState) error
	SetGamesPlayed(ctx context.Context, gameIDs []string) error

	RespondToTrade(ctx context.Context, proposal domain.ProposalID, accept bool) error
}
