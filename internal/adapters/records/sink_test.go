package records

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

type capturedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

func newRecordingServer(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()

	var mu sync.Mutex
	var requests []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, capturedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), requests...)
	}
}

func TestHTTPSinkUserEndpoints(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, http.StatusNoContent)
	sink := NewHTTPSink(server.URL+"/", 0)
	ctx := context.Background()

	require.NoError(t, sink.UserAdded(ctx, "7656"))
	require.NoError(t, sink.UserRemoved(ctx, "7656"))
	require.NoError(t, sink.TradeAccepted(ctx, "7656"))
	require.NoError(t, sink.TradeDeclined(ctx, "7656"))

	got := requests()
	require.Len(t, got, 4)
	assert.Equal(t, []string{
		"/user/7656/added",
		"/user/7656/removed",
		"/user/7656/trade-accepted",
		"/user/7656/trade-declined",
	}, []string{got[0].Path, got[1].Path, got[2].Path, got[3].Path})
	for _, req := range got {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Empty(t, req.Body)
	}
}

func TestHTTPSinkPostTradeItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   domain.TradeItemRecord
		wantPath string
		wantBody string
	}{
		{
			name: "claimed with name",
			record: domain.TradeItemRecord{
				User:    "7656",
				TradeID: "t-1",
				Item:    domain.Item{AppID: "440", ContextID: "2", ID: "99", Name: `Hat "Team" & co`},
				Claimed: true,
			},
			wantPath: "/trade/7656/t-1/440_2_99/true",
			wantBody: `{"name":"Hat \"Team\" & co"}`,
		},
		{
			name: "given without name",
			record: domain.TradeItemRecord{
				User:    "7656",
				TradeID: "t-1",
				Item:    domain.Item{AppID: "730", ContextID: "2", ID: "5"},
			},
			wantPath: "/trade/7656/t-1/730_2_5/false",
			wantBody: `{}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server, requests := newRecordingServer(t, http.StatusOK)
			sink := NewHTTPSink(server.URL, 0)

			require.NoError(t, sink.PostTradeItem(context.Background(), tc.record))

			got := requests()
			require.Len(t, got, 1)
			assert.Equal(t, tc.wantPath, got[0].Path)
			assert.Equal(t, "application/json", got[0].ContentType)
			assert.JSONEq(t, tc.wantBody, got[0].Body)
		})
	}
}

func TestHTTPSinkNon2xxIsError(t *testing.T) {
	t.Parallel()

	server, _ := newRecordingServer(t, http.StatusInternalServerError)
	sink := NewHTTPSink(server.URL, 0)

	err := sink.UserAdded(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPSinkRejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	tests := []string{"", "ftp://records.local", "http://"}
	for _, baseURL := range tests {
		sink := NewHTTPSink(baseURL, 0)
		assert.Error(t, sink.UserAdded(context.Background(), "1"), baseURL)
	}
}

func TestHTTPSinkReads(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/user/7656", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"7656","isBlacklisted":true}`)
	})
	mux.HandleFunc("/users/friends", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"_id":"1","lastAddedTime":"2015-01-02T03:04:05Z"},{"_id":"2"}]`)
	})
	mux.HandleFunc("/daily-trades/7656", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"day":"2015-01-02","numItemsClaimed":3,"numItemsDonated":4}`)
	})
	mux.HandleFunc("/daily-trades/8888", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	sink := NewHTTPSink(server.URL, 0)
	ctx := context.Background()

	user, err := sink.User(ctx, "7656")
	require.NoError(t, err)
	assert.Equal(t, UserRecord{ID: "7656", IsBlacklisted: true}, user)

	friends, err := sink.Friends(ctx)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "2015-01-02T03:04:05Z", friends[0].LastAddedTime)

	daily, err := sink.DailyTrades(ctx, "7656")
	require.NoError(t, err)
	assert.Equal(t, &DailyTrades{Day: "2015-01-02", NumItemsClaimed: 3, NumItemsDonated: 4}, daily)

	none, err := sink.DailyTrades(ctx, "8888")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = sink.User(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
