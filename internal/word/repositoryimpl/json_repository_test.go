package repositoryimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/word"
	"github.com/bilumvv/bilum/pkg/storage"
)

func TestSaveCollapsesByNormalizedText(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	first := &word.Word{NormalizedText: word.Normalize("Mama"), Text: "Mama"}
	second := &word.Word{NormalizedText: word.Normalize("mama "), Text: "mama"}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	words, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, words, 1, "same headword in different casing must collapse")
	assert.Equal(t, "mama", words[0].Text, "latest write wins")
}

func TestSaveKeepsDistinctHeadwords(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &word.Word{NormalizedText: "mama", Text: "mama"}))
	require.NoError(t, repo.Save(ctx, &word.Word{NormalizedText: "papa", Text: "papa"}))

	words, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, words, 2)
}

func TestTranslationSaveUpsertsByID(t *testing.T) {
	repo := NewTranslationJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &word.WordTranslation{ID: "wt1", Word: "mama", Text: "mother"}))
	require.NoError(t, repo.Save(ctx, &word.WordTranslation{ID: "wt1", Word: "mama", Text: "mum"}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mum", entries[0].Text)
}
