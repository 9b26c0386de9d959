package community

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveSourceFollowsSessionChanges(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var logins []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("steamLogin")
		mu.Lock()
		if err == nil {
			logins = append(logins, cookie.Value)
		} else {
			logins = append(logins, "")
		}
		mu.Unlock()
		_, _ = io.WriteString(w, lastPageHTML)
	}))
	t.Cleanup(server.Close)

	current := domain.WebSession{SessionID: "one", Cookies: []string{"steamLogin=first"}}
	live := NewLiveSource(server.URL, "swapbot", func() domain.WebSession { return current }, 0)
	ctx := context.Background()

	_, err := live.Page(ctx, 1)
	require.NoError(t, err)
	first, err := live.source()
	require.NoError(t, err)

	current = domain.WebSession{SessionID: "two", Cookies: []string{"steamLogin=second"}}
	_, err = live.Page(ctx, 1)
	require.NoError(t, err)
	second, err := live.source()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, logins)
}

func TestLiveSourceReusesUnchangedSession(t *testing.T) {
	t.Parallel()

	session := domain.WebSession{SessionID: "one", Cookies: []string{"a=1"}}
	live := NewLiveSource("https://steamcommunity.com", "swapbot", func() domain.WebSession { return session }, 0)

	first, err := live.source()
	require.NoError(t, err)
	second, err := live.source()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLiveSourceInvalidURL(t *testing.T) {
	t.Parallel()

	live := NewLiveSource("gopher://x", "swapbot", func() domain.WebSession { return domain.WebSession{} }, 0)
	_, err := live.Page(context.Background(), 1)
	require.Error(t, err)
}
