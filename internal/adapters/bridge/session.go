package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
)

var _ ports.SessionFactory = (*Bridge)(nil)

func (b *Bridge) NewSession() ports.TradeSession {
	return &Session{bridge: b, box: newMailbox[domain.SessionEvent](b.stop)}
}

// Session is a trade session hosted by the sidecar and addressed by the counterparty's id.
type Session struct {
	bridge  *Bridge
	box     *mailbox[domain.SessionEvent]
	partner domain.UserID
}

var _ ports.TradeSession = (*Session)(nil)

func (s *Session) Open(ctx context.Context, partner domain.UserID, web domain.WebSession) error {
	if s.partner != "" {
		return errors.New("trade session already open")
	}

	b := s.bridge
	b.mu.Lock()
	switch {
	case b.closed:
		b.mu.Unlock()
		return fmt.Errorf("open trade session: %w", domain.ErrBridgeClosed)
	case b.sessions[partner] != nil:
		b.mu.Unlock()
		return fmt.Errorf("trade session with %s already open", partner)
	}
	b.sessions[partner] = s
	b.mu.Unlock()
	s.partner = partner

	args := openArgs{Session: partner, SessionID: web.SessionID, Cookies: web.Cookies}
	if err := b.call(ctx, "trade.open", args, nil); err != nil {
		b.mu.Lock()
		if b.sessions[partner] == s {
			delete(b.sessions, partner)
		}
		b.mu.Unlock()
		s.partner = ""
		s.box.close()
		return err
	}

	return nil
}

func (s *Session) Events() <-chan domain.SessionEvent {
	return s.box.out
}

func (s *Session) SendChat(ctx context.Context, text string) error {
	if err := s.opened(); err != nil {
		return err
	}
	return s.bridge.call(ctx, "trade.chat", chatArgs{Session: s.partner, Text: text}, nil)
}

func (s *Session) LoadInventory(ctx context.Context, appID, contextID string) ([]domain.Item, error) {
	if err := s.opened(); err != nil {
		return nil, err
	}

	var items []domain.Item
	args := inventoryArgs{Session: s.partner, AppID: appID, ContextID: contextID}
	if err := s.bridge.call(ctx, "trade.loadInventory", args, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNoInventory
	}

	return items, nil
}

func (s *Session) AddItem(ctx context.Context, item domain.Item) error {
	if err := s.opened(); err != nil {
		return err
	}

	var added bool
	if err := s.bridge.call(ctx, "trade.addItem", itemArgs{Session: s.partner, Item: item}, &added); err != nil {
		return err
	}
	if !added {
		return domain.ErrItemRejected
	}

	return nil
}

func (s *Session) Ready(ctx context.Context) error {
	if err := s.opened(); err != nil {
		return err
	}
	return s.bridge.call(ctx, "trade.ready", sessionArgs{Session: s.partner}, nil)
}

func (s *Session) Confirm(ctx context.Context) error {
	if err := s.opened(); err != nil {
		return err
	}
	return s.bridge.call(ctx, "trade.confirm", sessionArgs{Session: s.partner}, nil)
}

func (s *Session) GivenItems(ctx context.Context) ([]domain.Item, error) {
	if err := s.opened(); err != nil {
		return nil, err
	}

	var items []domain.Item
	if err := s.bridge.call(ctx, "trade.givenItems", sessionArgs{Session: s.partner}, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Session) opened() error {
	if s.partner == "" {
		return domain.ErrSessionClosed
	}
	return nil
}
