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

const usersKey = "users.json"

// JSONRepository stores the whole account collection as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) List(ctx context.Context) ([]user.User, error) {
	stored, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(stored))
	for i := range stored {
		users = append(users, stored[i].Public())
	}
	return users, nil
}

func (r *JSONRepository) Get(ctx context.Context, id string) (*user.User, error) {
	stored, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stored {
		if stored[i].ID == id {
			u := stored[i].Public()
			return &u, nil
		}
	}
	return nil, cerr.NewError(cerr.NotFound, fmt.Sprintf("user %s not found", id), nil)
}

func (r *JSONRepository) Save(ctx context.Context, u *user.StoredUser) error {
	stored, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range stored {
		if stored[i].ID == u.ID {
			stored[i] = *u
			found = true
			break
		}
	}
	if !found {
		stored = append(stored, *u)
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal users: %w", err))
	}
	if err := r.storage.Write(ctx, usersKey, data); err != nil {
		return cerr.WrapStorageWriteError("users", err)
	}
	return nil
}

func (r *JSONRepository) readAll(ctx context.Context) ([]user.StoredUser, error) {
	data, err := r.storage.Read(ctx, usersKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("users", err)
	}
	var stored []user.StoredUser
	if err := json.Unmarshal(data, &stored); err != nil {
		slog.WarnContext(ctx, "discarding malformed users blob", "error", err)
		return nil, nil
	}
	return stored, nil
}
