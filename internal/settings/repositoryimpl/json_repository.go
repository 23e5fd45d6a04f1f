package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/settings"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const settingsKey = "system-settings.json"

// JSONRepository stores the settings singleton as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) Get(ctx context.Context) (settings.SystemSettings, error) {
	data, err := r.storage.Read(ctx, settingsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return settings.Default(), nil
		}
		return settings.Default(), cerr.WrapStorageReadError("system settings", err)
	}
	var s settings.SystemSettings
	if err := json.Unmarshal(data, &s); err != nil {
		slog.WarnContext(ctx, "discarding malformed system-settings blob", "error", err)
		return settings.Default(), nil
	}
	return s, nil
}

func (r *JSONRepository) Set(ctx context.Context, s settings.SystemSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal system settings: %w", err))
	}
	if err := r.storage.Write(ctx, settingsKey, data); err != nil {
		return cerr.WrapStorageWriteError("system settings", err)
	}
	return nil
}
