package admin

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

// Resetter wipes the whole data layer. There is deliberately no
// partial-scope variant.
type Resetter struct {
	storage storage.Storage
}

func NewResetter(s storage.Storage) *Resetter {
	return &Resetter{storage: s}
}

// ClearAll deletes every stored collection, including the session. Reads
// after a reset return each collection's documented default.
func (r *Resetter) ClearAll(ctx context.Context) error {
	keys, err := r.storage.List(ctx)
	if err != nil {
		return cerr.WrapStorageReadError("collections", err)
	}
	for _, key := range keys {
		if err := r.storage.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return cerr.WrapStorageDeleteError(key, err)
		}
	}
	slog.InfoContext(ctx, "cleared all collections", "count", len(keys))
	return nil
}
