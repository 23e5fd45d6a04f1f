package repositoryimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/forum"
	"github.com/bilumvv/bilum/pkg/storage"
)

func TestSavePrependsNewTopics(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &forum.Topic{ID: "t1", Title: "older"}))
	require.NoError(t, repo.Save(ctx, &forum.Topic{ID: "t2", Title: "newer"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t2", list[0].ID)
	assert.Equal(t, "t1", list[1].ID)
}

func TestSaveReplacesTopicInPlace(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &forum.Topic{ID: "t1", Title: "a"}))
	require.NoError(t, repo.Save(ctx, &forum.Topic{ID: "t2", Title: "b"}))
	require.NoError(t, repo.Save(ctx, &forum.Topic{ID: "t3", Title: "c"}))

	updated := &forum.Topic{ID: "t2", Title: "b", Posts: []forum.Post{{ID: "p1", Body: "reply"}}}
	require.NoError(t, repo.Save(ctx, updated))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3, "editing a topic must not change collection length")
	assert.Equal(t, "t2", list[1].ID, "edited topic keeps its position")
	require.Len(t, list[1].Posts, 1)
	assert.Equal(t, "p1", list[1].Posts[0].ID)
}
