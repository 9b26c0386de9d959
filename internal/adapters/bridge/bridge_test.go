package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentRequest struct {
	ID   uint64          `json:"id"`
	Call string          `json:"call"`
	Args json.RawMessage `json:"args"`
}

// sidecar plays the protocol side of the pipe pair.
type sidecar struct {
	t        *testing.T
	requests *bufio.Scanner
	toBridge *io.PipeWriter
	served   chan error
}

func newHarness(t *testing.T, opts ...Option) (*Bridge, *sidecar) {
	t.Helper()

	bridgeIn, toBridge := io.Pipe()
	fromBridge, bridgeOut := io.Pipe()

	b := New(bridgeIn, bridgeOut, nil, opts...)
	sc := &sidecar{
		t:        t,
		requests: bufio.NewScanner(fromBridge),
		toBridge: toBridge,
		served:   make(chan error, 1),
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() { sc.served <- b.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		_ = toBridge.Close()
		_ = fromBridge.Close()
		b.Close()
	})

	return b, sc
}

func (s *sidecar) next() sentRequest {
	s.t.Helper()

	require.True(s.t, s.requests.Scan(), "expected a request line")
	var req sentRequest
	require.NoError(s.t, json.Unmarshal(s.requests.Bytes(), &req))
	return req
}

func (s *sidecar) send(line map[string]any) {
	s.t.Helper()

	data, err := json.Marshal(line)
	require.NoError(s.t, err)
	_, err = s.toBridge.Write(append(data, '\n'))
	require.NoError(s.t, err)
}

func (s *sidecar) reply(id uint64, result any) {
	s.send(map[string]any{"id": id, "result": result})
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestBridgeDecodesEvents(t *testing.T) {
	t.Parallel()

	b, sc := newHarness(t)
	assert.False(t, b.LoggedOn())

	sc.send(map[string]any{"event": "logged_on"})
	sc.send(map[string]any{"event": "servers", "servers": []string{"1.2.3.4:27017"}})
	sc.send(map[string]any{"event": "sentry", "sentry": []byte{1, 2, 3}})
	sc.send(map[string]any{"event": "web_session", "sessionId": "sid", "cookies": []string{"a=1"}})
	sc.send(map[string]any{"event": "friend", "user": "42", "relationship": "pending_invitee"})
	sc.send(map[string]any{"event": "friend", "user": "42", "relationship": "bogus"})
	sc.send(map[string]any{"event": "friend_msg", "user": "42", "text": "pause", "entryType": "chat_msg"})
	sc.send(map[string]any{"event": "trade_proposed", "proposal": "p-1", "user": "42"})
	sc.send(map[string]any{"event": "session_start", "user": "42"})
	sc.send(map[string]any{"event": "trade_offers", "count": 2})
	sc.send(map[string]any{"event": "logged_off"})

	want := []domain.Event{
		domain.LoggedOn{},
		domain.ServersUpdated{Servers: []string{"1.2.3.4:27017"}},
		domain.SentryUpdated{Blob: []byte{1, 2, 3}},
		domain.WebSessionEstablished{Session: domain.WebSession{SessionID: "sid", Cookies: []string{"a=1"}}},
		domain.RelationshipChanged{User: "42", Relationship: domain.RelationshipPendingInvitee},
		domain.FriendMessage{User: "42", Text: "pause", EntryType: domain.ChatEntryMessage},
		domain.TradeProposed{ProposalID: "p-1", User: "42"},
		domain.SessionStarted{User: "42"},
		domain.TradeOffersPending{Count: 2},
		domain.LoggedOff{},
	}
	for _, event := range want {
		assert.Equal(t, event, receive(t, b.Events()))
	}
	assert.False(t, b.LoggedOn())
}

func TestBridgeCallRoundTrip(t *testing.T) {
	t.Parallel()

	b, sc := newHarness(t, WithLogOnDetails(LogOnDetails{AccountName: "bot", Sentry: []byte("blob")}))
	ctx := context.Background()

	errCh := make(chan error, 1)
	go func() { errCh <- b.LogOn(ctx) }()
	req := sc.next()
	assert.Equal(t, "logOn", req.Call)
	assert.JSONEq(t, `{"accountName":"bot","sentry":"YmxvYg=="}`, string(req.Args))
	sc.reply(req.ID, nil)
	require.NoError(t, receive(t, errCh))

	go func() { errCh <- b.RespondToTrade(ctx, "p-9", true) }()
	req = sc.next()
	assert.Equal(t, "respondToTrade", req.Call)
	assert.JSONEq(t, `{"proposal":"p-9","accept":true}`, string(req.Args))
	sc.reply(req.ID, true)
	require.NoError(t, receive(t, errCh))

	go func() { errCh <- b.SendMessage(ctx, "42", "hello") }()
	req = sc.next()
	assert.Equal(t, "sendMessage", req.Call)
	sc.send(map[string]any{"id": req.ID, "error": "not friends"})

	err := receive(t, errCh)
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "sendMessage", callErr.Call)
	assert.Equal(t, "not friends", callErr.Message)
}

func TestBridgeCallIDsAreDistinct(t *testing.T) {
	t.Parallel()

	b, sc := newHarness(t)
	ctx := context.Background()

	errCh := make(chan error, 2)
	go func() { errCh <- b.AddFriend(ctx, "1") }()
	first := sc.next()
	go func() { errCh <- b.RemoveFriend(ctx, "2") }()
	second := sc.next()

	assert.NotEqual(t, first.ID, second.ID)
	sc.reply(second.ID, nil)
	sc.reply(first.ID, nil)
	require.NoError(t, receive(t, errCh))
	require.NoError(t, receive(t, errCh))
}

func TestBridgeSessionLifecycle(t *testing.T) {
	t.Parallel()

	b, sc := newHarness(t)
	ctx := context.Background()
	session := b.NewSession()

	errCh := make(chan error, 1)
	go func() {
		errCh <- session.Open(ctx, "42", domain.WebSession{SessionID: "sid", Cookies: []string{"a=1"}})
	}()
	req := sc.next()
	assert.Equal(t, "trade.open", req.Call)
	assert.JSONEq(t, `{"session":"42","sessionId":"sid","cookies":["a=1"]}`, string(req.Args))
	sc.reply(req.ID, nil)
	require.NoError(t, receive(t, errCh))

	type itemsResult struct {
		items []domain.Item
		err   error
	}
	itemsCh := make(chan itemsResult, 1)
	go func() {
		items, err := session.LoadInventory(ctx, "440", "2")
		itemsCh <- itemsResult{items: items, err: err}
	}()
	req = sc.next()
	assert.Equal(t, "trade.loadInventory", req.Call)
	assert.JSONEq(t, `{"session":"42","appId":"440","contextId":"2"}`, string(req.Args))
	sc.reply(req.ID, []any{})
	got := receive(t, itemsCh)
	require.ErrorIs(t, got.err, domain.ErrNoInventory)

	go func() { errCh <- session.AddItem(ctx, domain.Item{AppID: "440", ContextID: "2", ID: "7"}) }()
	req = sc.next()
	assert.Equal(t, "trade.addItem", req.Call)
	sc.reply(req.ID, false)
	require.ErrorIs(t, receive(t, errCh), domain.ErrItemRejected)

	sc.send(map[string]any{"event": "chat", "session": "42", "text": "hi"})
	sc.send(map[string]any{"event": "chat", "session": "99", "text": "stray"})
	sc.send(map[string]any{"event": "ready", "session": "42"})
	sc.send(map[string]any{"event": "end", "session": "42", "status": "complete"})

	events := session.Events()
	assert.Equal(t, domain.SessionChat{Text: "hi"}, receive(t, events))
	assert.Equal(t, domain.SessionReady{}, receive(t, events))
	assert.Equal(t, domain.SessionEnded{Status: domain.SessionStatusComplete}, receive(t, events))

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("session events not closed after end")
	}

	go func() {
		items, err := session.GivenItems(ctx)
		itemsCh <- itemsResult{items: items, err: err}
	}()
	req = sc.next()
	assert.Equal(t, "trade.givenItems", req.Call)
	sc.reply(req.ID, []domain.Item{{AppID: "730", ContextID: "2", ID: "5", Name: "Case"}})
	got = receive(t, itemsCh)
	require.NoError(t, got.err)
	assert.Equal(t, []domain.Item{{AppID: "730", ContextID: "2", ID: "5", Name: "Case"}}, got.items)
}

func TestBridgeSessionRequiresOpen(t *testing.T) {
	t.Parallel()

	b, _ := newHarness(t)
	session := b.NewSession()

	require.ErrorIs(t, session.SendChat(context.Background(), "hi"), domain.ErrSessionClosed)
}

func TestBridgeStreamEndFailsPendingCalls(t *testing.T) {
	t.Parallel()

	b, sc := newHarness(t)

	errCh := make(chan error, 1)
	go func() { errCh <- b.AddFriend(context.Background(), "1") }()
	sc.next()
	require.NoError(t, sc.toBridge.Close())

	require.ErrorIs(t, receive(t, errCh), domain.ErrBridgeClosed)
	require.NoError(t, receive(t, sc.served))

	select {
	case _, ok := <-b.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events not closed")
	}

	require.ErrorIs(t, b.AddFriend(context.Background(), "2"), domain.ErrBridgeClosed)
}

func TestBridgeCallHonoursContext(t *testing.T) {
	t.Parallel()

	b, sc := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- b.SetGamesPlayed(ctx, []string{"440"}) }()
	req := sc.next()
	assert.Equal(t, "setGamesPlayed", req.Call)
	cancel()

	require.ErrorIs(t, receive(t, errCh), context.Canceled)
	sc.reply(req.ID, nil)
}

func TestBridgeFriendsList(t *testing.T) {
	t.Parallel()

	b, sc := newHarness(t)
	ctx := context.Background()

	type result struct {
		friends map[domain.UserID]domain.Relationship
		err     error
	}
	results := make(chan result, 2)
	list := func() {
		friends, err := b.Friends(ctx)
		results <- result{friends: friends, err: err}
	}

	go list()
	req := sc.next()
	assert.Equal(t, "friends", req.Call)
	assert.Empty(t, req.Args)
	sc.reply(req.ID, map[string]string{"42": "friend", "43": "pending_recipient"})

	got := receive(t, results)
	require.NoError(t, got.err)
	assert.Equal(t, map[domain.UserID]domain.Relationship{
		"42": domain.RelationshipFriend,
		"43": domain.RelationshipPendingRecipient,
	}, got.friends)

	go list()
	req = sc.next()
	sc.reply(req.ID, map[string]string{"44": "blocked"})

	got = receive(t, results)
	assert.ErrorContains(t, got.err, `unknown relationship "blocked"`)
}
