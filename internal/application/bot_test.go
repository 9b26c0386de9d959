package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type botFixture struct {
	client  *fakeClient
	store   *mocks.MockStateStore
	state   *domain.TradingState
	clock   *fakeClock
	session *fakeSession
	sink    *recordingSink
	creds   *WebCredentials
	bot     *Bot
}

func newBotFixture(t *testing.T) *botFixture {
	t.Helper()

	f := &botFixture{
		client:  newFakeClient(),
		store:   mocks.NewMockStateStore(t),
		state:   &domain.TradingState{},
		clock:   newFakeClock(),
		session: newFakeSession(),
		sink:    &recordingSink{},
		creds:   &WebCredentials{},
	}

	messages := DefaultMessages(testLinks())
	records := NewBestEffortRecords(f.sink, nil)
	friends := NewFriendManager(f.client, records, testPolicy(), f.clock, DefaultFriendTimings(), messages, nil)
	poller := NewOfferPoller(f.state, mocks.NewMockOfferHelper(t), f.clock, GuardReleaseOnExit, DefaultOfferTimings(), nil, nil)
	exporter := NewHistoryExporter(mocks.NewMockHistorySource(t), mocks.NewMockExportSink(t), "secret", 1, nil)

	orchestrator := NewOrchestrator(OrchestratorDeps{
		Client:      f.client,
		Sessions:    &fakeSessions{sessions: []*fakeSession{f.session}},
		State:       f.state,
		Credentials: f.creds,
		Links:       testLinks(),
		Records:     records,
		Messages:    messages,
	})

	f.bot = NewBot(BotDeps{
		Client:       f.client,
		Store:        f.store,
		State:        f.state,
		Credentials:  f.creds,
		Friends:      friends,
		Gatekeeper:   NewGatekeeper(f.client, testPolicy(), f.state, messages, nil, nil),
		Orchestrator: orchestrator,
		Poller:       poller,
		Console:      NewConsole(f.client, testPolicy(), f.state, friends, poller, exporter, messages, nil),
		Records:      records,
		Clock:        f.clock,
	})

	return f
}

func TestBotLoggedOnResetsTradingAndGoesOnline(t *testing.T) {
	f := newBotFixture(t)
	f.state.SetCanTrade(true)

	f.bot.Dispatch(context.Background(), domain.LoggedOn{})

	assert.False(t, f.state.CanTrade())
	assert.Equal(t, []domain.PersonaState{domain.PersonaOnline}, f.client.Personas())
}

func TestBotDisconnectDisablesTrading(t *testing.T) {
	t.Parallel()

	for _, event := range []domain.Event{domain.LoggedOff{}, domain.ProtocolError{Message: "LogonFailed"}} {
		event := event
		t.Run(string(event.Kind()), func(t *testing.T) {
			t.Parallel()

			f := newBotFixture(t)
			f.state.SetCanTrade(true)

			f.bot.Dispatch(context.Background(), event)

			assert.False(t, f.state.CanTrade())
		})
	}
}

func TestBotWebSessionEnablesTrading(t *testing.T) {
	f := newBotFixture(t)
	session := domain.WebSession{SessionID: "sid", Cookies: []string{"steamLogin=abc"}}
	f.store.EXPECT().SaveWebSession(mockAnyContext(), session).Return(nil).Once()

	f.bot.Dispatch(context.Background(), domain.WebSessionEstablished{Session: session})

	assert.True(t, f.state.CanTrade())
	assert.Equal(t, session, f.creds.Get())
	assert.Equal(t, []domain.PersonaState{domain.PersonaLookingToTrade}, f.client.Personas())
}

func TestBotWebSessionWhilePausedKeepsPersona(t *testing.T) {
	f := newBotFixture(t)
	f.state.SetPaused(true)
	f.store.EXPECT().SaveWebSession(mockAnyContext(), domain.WebSession{SessionID: "sid"}).Return(nil).Once()

	f.bot.Dispatch(context.Background(), domain.WebSessionEstablished{Session: domain.WebSession{SessionID: "sid"}})

	assert.True(t, f.state.CanTrade())
	assert.Empty(t, f.client.Personas())
}

func TestBotPersistsServersAndSentry(t *testing.T) {
	f := newBotFixture(t)
	f.store.EXPECT().SaveServers(mockAnyContext(), []string{"1.2.3.4:27017"}).Return(nil).Once()
	f.store.EXPECT().SaveSentry(mockAnyContext(), []byte{0x01, 0x02}).Return(nil).Once()

	f.bot.Dispatch(context.Background(), domain.ServersUpdated{Servers: []string{"1.2.3.4:27017"}})
	f.bot.Dispatch(context.Background(), domain.SentryUpdated{Blob: []byte{0x01, 0x02}})
}

func TestBotRoutesTradeProposal(t *testing.T) {
	f := newBotFixture(t)
	f.state.SetCanTrade(true)

	f.bot.Dispatch(context.Background(), domain.TradeProposed{ProposalID: proposalOne, User: blockedID})
	f.bot.Dispatch(context.Background(), domain.TradeProposed{ProposalID: "p-2", User: strangerID})

	assert.Equal(t, map[domain.ProposalID]bool{proposalOne: false, "p-2": true}, f.client.responses)
	assert.Empty(t, f.client.Messages())
}

func TestBotRunsSessionAndDropsDuplicateStart(t *testing.T) {
	f := newBotFixture(t)
	f.state.SetCanTrade(true)
	ctx := context.Background()

	f.bot.Dispatch(ctx, domain.SessionStarted{User: strangerID})
	f.bot.Dispatch(ctx, domain.SessionStarted{User: strangerID})
	assert.Equal(t, 1, f.bot.LiveSessions())

	f.session.emit(domain.SessionEnded{Status: domain.SessionStatusCancelled})
	assert.Eventually(t, func() bool { return f.bot.LiveSessions() == 0 }, time.Second, 5*time.Millisecond)
	assert.Len(t, f.session.Chats(), 6)
}

func TestBotRunReconnectsAndDrainsOnClose(t *testing.T) {
	f := newBotFixture(t)
	f.store.EXPECT().WebSession(mockAnyContext()).Return(domain.WebSession{}, domain.ErrStateNotFound).Once()

	done := make(chan error, 1)
	go func() { done <- f.bot.Run(context.Background()) }()

	require.Eventually(t, func() bool { return f.clock.Pending() == 1 }, time.Second, 5*time.Millisecond)
	f.client.mu.Lock()
	assert.Equal(t, 1, f.client.logOns)
	f.client.loggedOn = false
	f.client.mu.Unlock()

	f.clock.Advance(DefaultReconnectInterval)
	assert.Eventually(t, func() bool {
		f.client.mu.Lock()
		defer f.client.mu.Unlock()
		return f.client.logOns == 2
	}, time.Second, 5*time.Millisecond)

	close(f.client.events)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("bot did not stop after the event stream closed")
	}
}

func TestBotRunRestoresPersistedWebSession(t *testing.T) {
	f := newBotFixture(t)
	saved := domain.WebSession{SessionID: "sid", Cookies: []string{"a=b"}}
	f.store.EXPECT().WebSession(mockAnyContext()).Return(saved, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.bot.Run(ctx))
	assert.Equal(t, saved, f.creds.Get())
}

func TestBotWithoutConsoleIgnoresFriendMessages(t *testing.T) {
	client := newFakeClient()
	bot := NewBot(BotDeps{Client: client, State: &domain.TradingState{}, Clock: newFakeClock()})

	assert.NotPanics(t, func() {
		bot.Dispatch(context.Background(), domain.FriendMessage{User: ownerID, Text: "pause", EntryType: domain.ChatEntryMessage})
	})
	assert.Zero(t, client.Calls())
}
