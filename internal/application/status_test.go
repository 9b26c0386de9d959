package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStatusFillsPersistedState(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStateStore(t)
	store.EXPECT().Servers(mockAnyContext()).Return([]string{"1.2.3.4:27017"}, nil)
	store.EXPECT().Sentry(mockAnyContext()).Return([]byte{1}, nil)
	store.EXPECT().WebSession(mockAnyContext()).Return(domain.WebSession{SessionID: "sid", Cookies: []string{"a=1", "b=2"}}, nil)

	report, err := LoadStatus(context.Background(), store, StatusReport{ProfileID: "swapbot"})
	require.NoError(t, err)

	assert.Equal(t, "swapbot", report.ProfileID)
	assert.Equal(t, []string{"1.2.3.4:27017"}, report.Servers)
	assert.True(t, report.HasSentry)
	assert.True(t, report.WebSession)
	assert.Equal(t, 2, report.Cookies)
}

func TestLoadStatusEmptyStore(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStateStore(t)
	store.EXPECT().Servers(mockAnyContext()).Return(nil, domain.ErrStateNotFound)
	store.EXPECT().Sentry(mockAnyContext()).Return(nil, domain.ErrStateNotFound)
	store.EXPECT().WebSession(mockAnyContext()).Return(domain.WebSession{}, domain.ErrStateNotFound)

	report, err := LoadStatus(context.Background(), store, StatusReport{})
	require.NoError(t, err)

	assert.Empty(t, report.Servers)
	assert.False(t, report.HasSentry)
	assert.False(t, report.WebSession)
}

func TestLoadStatusStoreFailure(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStateStore(t)
	store.EXPECT().Servers(mockAnyContext()).Return(nil, errors.New("disk on fire"))

	_, err := LoadStatus(context.Background(), store, StatusReport{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load servers")
}
