package status

import (
	"testing"

	"github.com/bnema/swapbot/internal/application"
	"github.com/bnema/swapbot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderPersistedState(t *testing.T) {
	output := Render(application.StatusReport{
		ProfileID:     "swapbot",
		OwnerID:       "100",
		Environment:   "linux",
		StateBackend:  "file",
		StateLocation: "/home/bot/.swapbot/state.toml",
		RecordsURL:    "http://records.local",
		Blacklisted:   2,
		Whitelisted:   1,
		Servers:       []string{"a", "b", "c"},
		HasSentry:     true,
		WebSession:    true,
		Cookies:       4,
	}, RenderOptions{ConfigFile: "/etc/swapbot.toml"})

	assert.Contains(t, output, "swapbot status")
	assert.Contains(t, output, "profile: swapbot")
	assert.Contains(t, output, "config: /etc/swapbot.toml")
	assert.Contains(t, output, "State (file)")
	assert.Contains(t, output, "3 known")
	assert.Contains(t, output, "stored")
	assert.Contains(t, output, "4 cookies")
	assert.Contains(t, output, "http://records.local")
	assert.Contains(t, output, "disabled")
	assert.Contains(t, output, "not reachable")
}

func TestRenderEmptyState(t *testing.T) {
	output := Render(application.StatusReport{StateBackend: "redis"}, RenderOptions{})

	assert.Contains(t, output, "profile: -")
	assert.Contains(t, output, "State (redis)")
	assert.Contains(t, output, "missing")
	assert.Contains(t, output, "none")
	assert.Contains(t, output, "not configured")
	assert.NotContains(t, output, "config:")
}

func TestRenderLiveBot(t *testing.T) {
	output := Render(application.StatusReport{
		StateBackend:  "file",
		MetricsListen: "127.0.0.1:9100",
		Live: &application.LiveStatus{
			TradingSnapshot: domain.TradingSnapshot{CanTrade: true, Paused: true},
			LiveSessions:    3,
		},
	}, RenderOptions{})

	assert.Contains(t, output, "127.0.0.1:9100")
	assert.Contains(t, output, "can trade:")
	assert.Contains(t, output, "live sessions:")
	assert.Contains(t, output, "3")
	assert.NotContains(t, output, "not reachable")
}
