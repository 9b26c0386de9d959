package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	config := viper.New()
	config.Set("state.path", path)

	store, err := NewStore(config)
	require.NoError(t, err)
	return store, path
}

func TestStoreEmptyReturnsNotFound(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Servers(ctx)
	require.ErrorIs(t, err, domain.ErrStateNotFound)
	_, err = store.Sentry(ctx)
	require.ErrorIs(t, err, domain.ErrStateNotFound)
	_, err = store.WebSession(ctx)
	require.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	ctx := context.Background()
	session := domain.WebSession{SessionID: "abc123", Cookies: []string{"steamLogin=1", "sessionid=abc123"}}

	require.NoError(t, store.SaveServers(ctx, []string{"162.254.195.44:27019", "146.66.152.10:27017"}))
	require.NoError(t, store.SaveSentry(ctx, []byte{0x00, 0xff, 0x10}))
	require.NoError(t, store.SaveWebSession(ctx, session))

	servers, err := store.Servers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"162.254.195.44:27019", "146.66.152.10:27017"}, servers)

	sentry, err := store.Sentry(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, sentry)

	got, err := store.WebSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestStoreUpdatesKeepOtherFields(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveServers(ctx, []string{"a:1"}))
	require.NoError(t, store.SaveServers(ctx, []string{"b:2"}))
	require.NoError(t, store.SaveSentry(ctx, []byte("blob")))

	servers, err := store.Servers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b:2"}, servers)
}

func TestStoreRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("version = 9\n"), 0o600))

	_, err := store.Servers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported state schema version 9")
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.SaveServers(ctx, []string{"a:1"}), context.Canceled)
}
