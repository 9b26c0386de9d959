package bridge

import (
	"context"
	"fmt"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
)

var _ ports.Client = (*Bridge)(nil)

func (b *Bridge) Events() <-chan domain.Event {
	return b.events.out
}

func (b *Bridge) LogOn(ctx context.Context) error {
	return b.call(ctx, "logOn", b.logOn, nil)
}

// LoggedOn follows the logged_on and logged_off events seen so far.
func (b *Bridge) LoggedOn() bool {
	return b.loggedOn.Load()
}

func (b *Bridge) Friends(ctx context.Context) (map[domain.UserID]domain.Relationship, error) {
	var raw map[domain.UserID]string
	if err := b.call(ctx, "friends", nil, &raw); err != nil {
		return nil, err
	}

	friends := make(map[domain.UserID]domain.Relationship, len(raw))
	for id, value := range raw {
		rel := domain.Relationship(value)
		if !rel.Valid() {
			return nil, fmt.Errorf("friends: unknown relationship %q for %s", value, id)
		}
		friends[id] = rel
	}

	return friends, nil
}

func (b *Bridge) AddFriend(ctx context.Context, id domain.UserID) error {
	return b.call(ctx, "addFriend", userArgs{User: id}, nil)
}

func (b *Bridge) RemoveFriend(ctx context.Context, id domain.UserID) error {
	return b.call(ctx, "removeFriend", userArgs{User: id}, nil)
}

func (b *Bridge) SendMessage(ctx context.Context, id domain.UserID, text string) error {
	return b.call(ctx, "sendMessage", messageArgs{User: id, Text: text}, nil)
}

func (b *Bridge) SetPersonaState(ctx context.Context, state domain.PersonaState) error {
	return b.call(ctx, "setPersonaState", personaArgs{State: state}, nil)
}

func (b *Bridge) SetGamesPlayed(ctx context.Context, gameIDs []string) error {
	return b.call(ctx, "setGamesPlayed", gamesArgs{Games: gameIDs}, nil)
}

func (b *Bridge) RespondToTrade(ctx context.Context, proposal domain.ProposalID, accept bool) error {
	return b.call(ctx, "respondToTrade", respondArgs{Proposal: proposal, Accept: accept}, nil)
}
