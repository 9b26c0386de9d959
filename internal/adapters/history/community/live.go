package community

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
)

// LiveSource follows a changing web session, rebuilding its cookie jar when the session does.
type LiveSource struct {
	communityURL string
	profileID    string
	timeout      time.Duration
	session      func() domain.WebSession

	mu      sync.Mutex
	current *Source
	seen    domain.WebSession
}

var _ ports.HistorySource = (*LiveSource)(nil)

func NewLiveSource(communityURL, profileID string, session func() domain.WebSession, timeout time.Duration) *LiveSource {
	return &LiveSource{
		communityURL: communityURL,
		profileID:    profileID,
		timeout:      timeout,
		session:      session,
	}
}

func (l *LiveSource) Page(ctx context.Context, number int) (domain.HistoryPage, error) {
	source, err := l.source()
	if err != nil {
		return domain.HistoryPage{}, err
	}
	return source.Page(ctx, number)
}

func (l *LiveSource) source() (*Source, error) {
	session := l.session()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil && session.SessionID == l.seen.SessionID && slices.Equal(session.Cookies, l.seen.Cookies) {
		return l.current, nil
	}

	source, err := NewSource(l.communityURL, l.profileID, session, l.timeout)
	if err != nil {
		return nil, err
	}
	l.current = source
	l.seen = session
	return source, nil
}
