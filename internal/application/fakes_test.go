package application

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// fakeClock runs timer callbacks only when Advance moves time past their deadline.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &fakeTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			n++
		}
	}
	return n
}

// Advance moves time forward and fires due timers in deadline order, including timers scheduled
// by callbacks that fall inside the window.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due []*fakeTimer
		for _, timer := range c.timers {
			if !timer.stopped && !timer.fired && !timer.at.After(target) {
				due = append(due, timer)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()
			return
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
		next := due[0]
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

type sentMessage struct {
	User domain.UserID
	Text string
}

// fakeClient records every outbound protocol call.
type fakeClient struct {
	mu        sync.Mutex
	events    chan domain.Event
	loggedOn  bool
	logOns    int
	added     []domain.UserID
	removed   []domain.UserID
	messages  []sentMessage
	personas  []domain.PersonaState
	games     [][]string
	responses map[domain.ProposalID]bool
	calls     int

	// friends is the protocol-side friend list.
	friends    map[domain.UserID]domain.Relationship
	friendsErr error
	failAdd    map[domain.UserID]error
	failRemove map[domain.UserID]error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		events:     make(chan domain.Event, 16),
		responses:  map[domain.ProposalID]bool{},
		friends:    map[domain.UserID]domain.Relationship{},
		failAdd:    map[domain.UserID]error{},
		failRemove: map[domain.UserID]error{},
	}
}

func (c *fakeClient) setFriend(id domain.UserID, rel domain.Relationship) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.friends[id] = rel
}

func (c *fakeClient) Events() <-chan domain.Event { return c.events }

func (c *fakeClient) LogOn(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logOns++
	c.loggedOn = true
	return nil
}

func (c *fakeClient) LoggedOn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loggedOn
}

func (c *fakeClient) Friends(context.Context) (map[domain.UserID]domain.Relationship, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.friendsErr != nil {
		return nil, c.friendsErr
	}
	out := make(map[domain.UserID]domain.Relationship, len(c.friends))
	for id, rel := range c.friends {
		out[id] = rel
	}
	return out, nil
}

func (c *fakeClient) AddFriend(_ context.Context, id domain.UserID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if err := c.failAdd[id]; err != nil {
		return err
	}
	c.added = append(c.added, id)
	c.friends[id] = domain.RelationshipFriend
	return nil
}

func (c *fakeClient) RemoveFriend(_ context.Context, id domain.UserID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if err := c.failRemove[id]; err != nil {
		return err
	}
	c.removed = append(c.removed, id)
	delete(c.friends, id)
	return nil
}

func (c *fakeClient) SendMessage(_ context.Context, id domain.UserID, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.messages = append(c.messages, sentMessage{User: id, Text: text})
	return nil
}

func (c *fakeClient) SetPersonaState(_ context.Context, state domain.PersonaState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.personas = append(c.personas, state)
	return nil
}

func (c *fakeClient) SetGamesPlayed(_ context.Context, gameIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.games = append(c.games, gameIDs)
	return nil
}

func (c *fakeClient) RespondToTrade(_ context.Context, proposal domain.ProposalID, accept bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.responses[proposal] = accept
	return nil
}

func (c *fakeClient) Messages() []sentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]sentMessage(nil), c.messages...)
}

func (c *fakeClient) Personas() []domain.PersonaState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.PersonaState(nil), c.personas...)
}

func (c *fakeClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// fakeSession is a scripted trade session. Tests push events with emit.
type fakeSession struct {
	mu           sync.Mutex
	events       chan domain.SessionEvent
	partner      domain.UserID
	web          domain.WebSession
	chats        []string
	inventory    []domain.Item
	inventoryErr error
	loads        int
	added        []domain.Item
	addErr       error
	readies      int
	confirms     int
	given        []domain.Item
}

func newFakeSession() *fakeSession {
	return &fakeSession{events: make(chan domain.SessionEvent, 16)}
}

func (s *fakeSession) Open(_ context.Context, partner domain.UserID, web domain.WebSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partner = partner
	s.web = web
	return nil
}

func (s *fakeSession) Events() <-chan domain.SessionEvent { return s.events }

func (s *fakeSession) SendChat(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = append(s.chats, text)
	return nil
}

func (s *fakeSession) LoadInventory(context.Context, string, string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.inventoryErr != nil {
		return nil, s.inventoryErr
	}
	return append([]domain.Item(nil), s.inventory...), nil
}

func (s *fakeSession) AddItem(_ context.Context, item domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, item)
	return nil
}

func (s *fakeSession) Ready(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readies++
	return nil
}

func (s *fakeSession) Confirm(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirms++
	return nil
}

func (s *fakeSession) GivenItems(context.Context) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Item(nil), s.given...), nil
}

func (s *fakeSession) emit(event domain.SessionEvent) {
	s.events <- event
}

func (s *fakeSession) Chats() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.chats...)
}

func (s *fakeSession) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

type fakeSessions struct {
	sessions []*fakeSession
	mu       sync.Mutex
	next     int
}

func (f *fakeSessions) NewSession() ports.TradeSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	session := f.sessions[f.next]
	f.next++
	return session
}

// recordingSink captures record-service calls.
type recordingSink struct {
	mu       sync.Mutex
	added    []domain.UserID
	removed  []domain.UserID
	accepted []domain.UserID
	declined []domain.UserID
	items    []domain.TradeItemRecord
}

func (r *recordingSink) UserAdded(_ context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, id)
	return nil
}

func (r *recordingSink) UserRemoved(_ context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, id)
	return nil
}

func (r *recordingSink) TradeAccepted(_ context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted = append(r.accepted, id)
	return nil
}

func (r *recordingSink) TradeDeclined(_ context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.declined = append(r.declined, id)
	return nil
}

func (r *recordingSink) PostTradeItem(_ context.Context, record domain.TradeItemRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, record)
	return nil
}

type fakeRun struct {
	done chan struct{}
	err  error
}

func newFakeRun() *fakeRun {
	return &fakeRun{done: make(chan struct{})}
}

func (r *fakeRun) Done() <-chan struct{} { return r.done }
func (r *fakeRun) Err() error            { return r.err }

func testLogger() *slog.Logger {
	return logging.NewNop()
}

func testLinks() InventoryLinks {
	return NewInventoryLinks("https://steamcommunity.com", "swapbot")
}
