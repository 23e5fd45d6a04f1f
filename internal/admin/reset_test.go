package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/admin"
	"github.com/bilumvv/bilum/internal/sentence"
	sentencerepo "github.com/bilumvv/bilum/internal/sentence/repositoryimpl"
	"github.com/bilumvv/bilum/internal/settings"
	settingsrepo "github.com/bilumvv/bilum/internal/settings/repositoryimpl"
	"github.com/bilumvv/bilum/pkg/storage"
)

func TestClearAllResetsToDefaults(t *testing.T) {
	store := storage.NewMemoryStorage()
	ctx := context.Background()

	sentences := sentencerepo.NewJSONRepository(store)
	sysSettings := settingsrepo.NewJSONRepository(store)

	require.NoError(t, sentences.Save(ctx, &sentence.Sentence{ID: "s1", English: "hello"}))
	require.NoError(t, sysSettings.Set(ctx, settings.SystemSettings{APIKey: "sk-test", MaintenanceMode: true}))

	require.NoError(t, admin.NewResetter(store).ClearAll(ctx))

	list, err := sentences.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	s, err := sysSettings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestClearAllOnEmptyStore(t *testing.T) {
	require.NoError(t, admin.NewResetter(storage.NewMemoryStorage()).ClearAll(context.Background()))
}
