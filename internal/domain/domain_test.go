package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCompositeID(t *testing.T) {
	item := Item{AppID: "730", ContextID: "2", ID: "123456789"}

	assert.Equal(t, "730_2_123456789", item.CompositeID())
}

func TestPolicyMembership(t *testing.T) {
	t.Parallel()

	policy := Policy{
		Owner:     "100",
		Blacklist: []UserID{"200"},
		Whitelist: []UserID{"300"},
	}

	tests := []struct {
		name        string
		id          UserID
		owner       bool
		blacklisted bool
		protected   bool
	}{
		{name: "owner", id: "100", owner: true, protected: true},
		{name: "blacklisted", id: "200", blacklisted: true},
		{name: "whitelisted", id: "300", protected: true},
		{name: "stranger", id: "400"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.owner, policy.IsOwner(tc.id))
			assert.Equal(t, tc.blacklisted, policy.IsBlacklisted(tc.id))
			assert.Equal(t, tc.protected, policy.Protected(tc.id))
		})
	}
}

func TestPolicyWithoutOwnerNeverMatchesEmptyID(t *testing.T) {
	assert.False(t, Policy{}.IsOwner(""))
}

func TestParseSessionStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want SessionStatus
	}{
		{raw: "complete", want: SessionStatusComplete},
		{raw: "cancelled", want: SessionStatusCancelled},
		{raw: "timeout", want: SessionStatusUnknown},
		{raw: "", want: SessionStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSessionStatus(tt.raw))
		})
	}
}

func TestTradingStateStartsClosed(t *testing.T) {
	var state TradingState

	assert.Equal(t, TradingSnapshot{}, state.Snapshot())
}

func TestTradingStateOfferRunGuard(t *testing.T) {
	var state TradingState

	require.NoError(t, state.BeginOfferRun(false))
	assert.True(t, state.RespondingToTradeRequests())

	assert.ErrorIs(t, state.BeginOfferRun(false), ErrOfferRunInFlight)
	assert.NoError(t, state.BeginOfferRun(true))

	state.EndOfferRun()
	assert.False(t, state.RespondingToTradeRequests())
}

func TestTradingStateOfferRunRefusedWhilePausedUnlessForced(t *testing.T) {
	var state TradingState
	state.SetPaused(true)

	assert.ErrorIs(t, state.BeginOfferRun(false), ErrPaused)
	assert.False(t, state.RespondingToTradeRequests())

	require.NoError(t, state.BeginOfferRun(true))
	assert.True(t, state.RespondingToTradeRequests())
}

func TestEventKindsAreDistinct(t *testing.T) {
	events := []Event{
		LoggedOn{}, LoggedOff{}, ProtocolError{}, ServersUpdated{}, SentryUpdated{},
		WebSessionEstablished{}, RelationshipChanged{}, FriendMessage{}, TradeProposed{},
		SessionStarted{}, TradeOffersPending{},
	}

	seen := map[EventKind]struct{}{}
	for _, event := range events {
		_, dup := seen[event.Kind()]
		assert.False(t, dup, "duplicate kind %s", event.Kind())
		seen[event.Kind()] = struct{}{}
	}
}

func TestRelationshipValid(t *testing.T) {
	assert.True(t, RelationshipFriend.Valid())
	assert.False(t, Relationship("blocked").Valid())
}
