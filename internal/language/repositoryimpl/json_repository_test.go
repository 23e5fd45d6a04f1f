package repositoryimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/language"
	"github.com/bilumvv/bilum/pkg/storage"
)

func TestGetDefaultsWhenAbsent(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())

	l, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, language.TargetLanguage{Code: "hula", Name: "Hula"}, l)
}

func TestSetRoundTrip(t *testing.T) {
	repo := NewJSONRepository(storage.NewMemoryStorage())
	ctx := context.Background()

	want := language.TargetLanguage{Code: "tpi", Name: "Tok Pisin"}
	require.NoError(t, repo.Set(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
