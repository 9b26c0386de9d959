package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	t.Parallel()

	m := New()
	m.ProposalDecided("accepted")
	m.ProposalDecided("accepted")
	m.ProposalDecided("paused")
	m.SessionEnded(domain.SessionStatusComplete)
	m.ItemsRecorded(true, 3)
	m.ItemsRecorded(false, 2)
	m.ItemsRecorded(false, 0)
	m.ChatIgnored()
	m.OfferRunStarted()

	assert.InDelta(t, 2, testutil.ToFloat64(m.proposals.WithLabelValues("accepted")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.proposals.WithLabelValues("paused")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.sessions.WithLabelValues("complete")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.items.WithLabelValues("claimed")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.items.WithLabelValues("given")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.chatsIgnored), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.offerRuns), 0)
}

func TestMetricsHandlerExposesPrivateRegistry(t *testing.T) {
	t.Parallel()

	m := New()
	m.OfferRunStarted()

	server := httptest.NewServer(m.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "swapbot_offer_runs_total 1")
	assert.NotContains(t, string(body), "go_goroutines")
}

func TestMetricsInstancesAreIndependent(t *testing.T) {
	t.Parallel()

	first := New()
	second := New()
	first.ChatIgnored()

	assert.InDelta(t, 0, testutil.ToFloat64(second.chatsIgnored), 0)
}
