package repositoryimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/announcement"
	"github.com/bilumvv/bilum/pkg/storage"
)

func TestSavePrependsNewestFirst(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &announcement.Announcement{ID: "a1", Title: "first"}))
	require.NoError(t, repo.Save(ctx, &announcement.Announcement{ID: "a2", Title: "second"}))
	require.NoError(t, repo.Save(ctx, &announcement.Announcement{ID: "a3", Title: "third"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a3", list[0].ID)
	assert.Equal(t, "a2", list[1].ID)
	assert.Equal(t, "a1", list[2].ID)
}
