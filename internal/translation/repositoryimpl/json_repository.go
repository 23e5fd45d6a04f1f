package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/translation"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const translationsKey = "translations.json"

// JSONRepository stores the whole translation collection as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) List(ctx context.Context) ([]translation.Translation, error) {
	data, err := r.storage.Read(ctx, translationsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("translations", err)
	}
	var translations []translation.Translation
	if err := json.Unmarshal(data, &translations); err != nil {
		slog.WarnContext(ctx, "discarding malformed translations blob", "error", err)
		return nil, nil
	}
	return translations, nil
}

func (r *JSONRepository) Save(ctx context.Context, t *translation.Translation) error {
	translations, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range translations {
		if translations[i].ID == t.ID {
			translations[i] = *t
			found = true
			break
		}
	}
	if !found {
		translations = append(translations, *t)
	}
	data, err := json.Marshal(translations)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal translations: %w", err))
	}
	if err := r.storage.Write(ctx, translationsKey, data); err != nil {
		return cerr.WrapStorageWriteError("translations", err)
	}
	return nil
}
