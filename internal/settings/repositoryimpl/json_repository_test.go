package repositoryimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/settings"
	"github.com/bilumvv/bilum/pkg/storage"
)

func TestGetDefaultsWhenAbsent(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
	assert.True(t, s.ShowDemoBanner)
	assert.False(t, s.MaintenanceMode)
}

func TestGetDefaultsWhenMalformed(t *testing.T) {
	store := storage.NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, settingsKey, []byte("not json")))

	repo := NewJSONRepository(store)
	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestSetRoundTrip(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	want := settings.SystemSettings{APIKey: "sk-test", ShowDemoBanner: false, MaintenanceMode: true}
	require.NoError(t, repo.Set(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
