package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

type FriendTimings struct {
	WelcomeDelay    time.Duration
	WelcomeGap      time.Duration
	AutoRemoveAfter time.Duration
}

func DefaultFriendTimings() FriendTimings {
	return FriendTimings{
		WelcomeDelay:    5 * time.Second,
		WelcomeGap:      time.Second,
		AutoRemoveAfter: 6 * time.Hour,
	}
}

// FriendManager owns the local relationship roster and applies the add/remove policy.
type FriendManager struct {
	client   ports.Client
	records  *BestEffortRecords
	policy   domain.Policy
	clock    ports.Clock
	timings  FriendTimings
	messages Messages
	logger   *slog.Logger

	mu     sync.Mutex
	roster map[domain.UserID]domain.Relationship
}

func NewFriendManager(client ports.Client, records *BestEffortRecords, policy domain.Policy, clock ports.Clock, timings FriendTimings, messages Messages, logger *slog.Logger) *FriendManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &FriendManager{
		client:   client,
		records:  records,
		policy:   policy,
		clock:    clock,
		timings:  timings,
		messages: messages,
		logger:   logger,
		roster:   map[domain.UserID]domain.Relationship{},
	}
}

func (m *FriendManager) Relationship(id domain.UserID) domain.Relationship {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rel, ok := m.roster[id]; ok {
		return rel
	}
	return domain.RelationshipNone
}

// HandleRelationship records the new relationship state and accepts incoming invites.
func (m *FriendManager) HandleRelationship(ctx context.Context, change domain.RelationshipChanged) error {
	m.setRelationship(change.User, change.Relationship)
	m.logger.Info("relationship changed", "user", string(change.User), "relationship", string(change.Relationship))

	if change.Relationship != domain.RelationshipPendingInvitee || m.policy.IsBlacklisted(change.User) {
		return nil
	}

	return m.acceptInvite(ctx, change.User)
}

func (m *FriendManager) acceptInvite(ctx context.Context, id domain.UserID) error {
	m.records.UserAdded(ctx, id)

	if err := m.client.AddFriend(ctx, id); err != nil {
		return fmt.Errorf("accept friend invite from %s: %w", id, err)
	}
	m.setRelationship(id, domain.RelationshipFriend)
	m.logger.Info("added friend", "user", string(id))

	detached := context.WithoutCancel(ctx)
	m.scheduleWelcome(detached, id)
	m.clock.AfterFunc(m.timings.AutoRemoveAfter, func() {
		if m.policy.Protected(id) {
			return
		}
		m.logger.Info("automatically removing friend", "user", string(id))
		if err := m.remove(detached, id); err != nil {
			m.logger.Error("auto remove friend failed", "user", string(id), "err", err)
		}
	})

	return nil
}

func (m *FriendManager) scheduleWelcome(ctx context.Context, id domain.UserID) {
	if len(m.messages.Welcome) == 0 {
		return
	}

	var sendFrom func(i int)
	sendFrom = func(i int) {
		if err := m.client.SendMessage(ctx, id, m.messages.Welcome[i]); err != nil {
			m.logger.Error("send welcome message failed", "user", string(id), "part", i+1, "err", err)
		}
		if i+1 < len(m.messages.Welcome) {
			m.clock.AfterFunc(m.timings.WelcomeGap, func() { sendFrom(i + 1) })
		}
	}

	m.clock.AfterFunc(m.timings.WelcomeDelay, func() { sendFrom(0) })
}

// RemoveAll drops every full friend that is neither the owner nor whitelisted. A failed removal is
// logged and the pass continues; the failures are returned joined.
func (m *FriendManager) RemoveAll(ctx context.Context) (int, error) {
	friends, err := m.usersWith(ctx, domain.RelationshipFriend)
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs []error
	for _, id := range friends {
		if m.policy.Protected(id) {
			continue
		}
		m.logger.Info("removing friend", "user", string(id))
		if err := m.remove(ctx, id); err != nil {
			m.logger.Error("remove friend failed", "user", string(id), "err", err)
			errs = append(errs, err)
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}

// AddPending accepts every inbound friend request that is not blacklisted.
func (m *FriendManager) AddPending(ctx context.Context) (int, error) {
	pending, err := m.usersWith(ctx, domain.RelationshipPendingRecipient)
	if err != nil {
		return 0, err
	}

	added := 0
	var errs []error
	for _, id := range pending {
		if m.policy.IsBlacklisted(id) {
			continue
		}
		m.logger.Info("adding friend", "user", string(id))
		if err := m.client.AddFriend(ctx, id); err != nil {
			m.logger.Error("add pending friend failed", "user", string(id), "err", err)
			errs = append(errs, fmt.Errorf("add pending friend %s: %w", id, err))
			continue
		}
		m.setRelationship(id, domain.RelationshipFriend)
		added++
	}

	return added, errors.Join(errs...)
}

func (m *FriendManager) remove(ctx context.Context, id domain.UserID) error {
	if err := m.client.RemoveFriend(ctx, id); err != nil {
		return fmt.Errorf("remove friend %s: %w", id, err)
	}
	m.setRelationship(id, domain.RelationshipNone)
	m.records.UserRemoved(ctx, id)
	return nil
}

func (m *FriendManager) setRelationship(id domain.UserID, rel domain.Relationship) {
	m.mu.Lock()
	m.roster[id] = rel
	m.mu.Unlock()
}

// usersWith replaces the roster with the protocol's friend list and returns the users currently in
// rel, sorted.
func (m *FriendManager) usersWith(ctx context.Context, rel domain.Relationship) ([]domain.UserID, error) {
	list, err := m.client.Friends(ctx)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.roster = make(map[domain.UserID]domain.Relationship, len(list))
	for id, current := range list {
		m.roster[id] = current
	}

	ids := make([]domain.UserID, 0, len(m.roster))
	for id, current := range m.roster {
		if current == rel {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}
