package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/language"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const languageKey = "target-language.json"

// JSONRepository stores the target-language singleton as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) Get(ctx context.Context) (language.TargetLanguage, error) {
	data, err := r.storage.Read(ctx, languageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return language.Default(), nil
		}
		return language.Default(), cerr.WrapStorageReadError("target language", err)
	}
	var l language.TargetLanguage
	if err := json.Unmarshal(data, &l); err != nil {
		slog.WarnContext(ctx, "discarding malformed target-language blob", "error", err)
		return language.Default(), nil
	}
	return l, nil
}

func (r *JSONRepository) Set(ctx context.Context, l language.TargetLanguage) error {
	data, err := json.Marshal(l)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal target language: %w", err))
	}
	if err := r.storage.Write(ctx, languageKey, data); err != nil {
		return cerr.WrapStorageWriteError("target language", err)
	}
	return nil
}
