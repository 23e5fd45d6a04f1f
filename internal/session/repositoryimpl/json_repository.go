package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/user"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const sessionKey = "current-user-session.json"

// JSONRepository stores the session singleton as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) Get(ctx context.Context) (*user.User, error) {
	data, err := r.storage.Read(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("session", err)
	}
	var u user.User
	if err := json.Unmarshal(data, &u); err != nil {
		slog.WarnContext(ctx, "discarding malformed session blob", "error", err)
		return nil, nil
	}
	return &u, nil
}

func (r *JSONRepository) Set(ctx context.Context, u *user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal session: %w", err))
	}
	if err := r.storage.Write(ctx, sessionKey, data); err != nil {
		return cerr.WrapStorageWriteError("session", err)
	}
	return nil
}

func (r *JSONRepository) Clear(ctx context.Context) error {
	if err := r.storage.Delete(ctx, sessionKey); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return cerr.WrapStorageDeleteError("session", err)
	}
	return nil
}
