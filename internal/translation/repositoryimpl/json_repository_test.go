package repositoryimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/translation"
	"github.com/bilumvv/bilum/pkg/storage"
)

func TestSaveAppendsNewTranslation(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &translation.Translation{ID: "t1", SentenceID: "s1", Text: "wanpela"}))
	require.NoError(t, repo.Save(ctx, &translation.Translation{ID: "t2", SentenceID: "s1", Text: "tupela"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t1", list[0].ID)
	assert.Equal(t, "t2", list[1].ID)
}

func TestSaveReplacesInPlace(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &translation.Translation{ID: "t1", Text: "one"}))
	require.NoError(t, repo.Save(ctx, &translation.Translation{ID: "t2", Text: "two"}))
	require.NoError(t, repo.Save(ctx, &translation.Translation{ID: "t3", Text: "three"}))

	require.NoError(t, repo.Save(ctx, &translation.Translation{ID: "t2", Text: "edited"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3, "replace must not change collection length")
	assert.Equal(t, "t1", list[0].ID)
	assert.Equal(t, "t2", list[1].ID, "edited record must keep its position")
	assert.Equal(t, "edited", list[1].Text)
	assert.Equal(t, "t3", list[2].ID)
	assert.Equal(t, "one", list[0].Text, "untouched records must be preserved")
	assert.Equal(t, "three", list[2].Text)
}

func TestListEmptyWhenAbsent(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
