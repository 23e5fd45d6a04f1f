package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/permission"
	"github.com/bilumvv/bilum/internal/usergroup"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const groupsKey = "user-groups.json"

// JSONRepository stores the whole group collection as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) List(ctx context.Context) ([]usergroup.UserGroup, error) {
	data, err := r.storage.Read(ctx, groupsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return usergroup.DefaultGroups(), nil
		}
		return nil, cerr.WrapStorageReadError("user groups", err)
	}
	var groups []usergroup.UserGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		// Same recovery as an absent blob: the seeded defaults.
		slog.WarnContext(ctx, "discarding malformed user-groups blob", "error", err)
		return usergroup.DefaultGroups(), nil
	}
	return groups, nil
}

func (r *JSONRepository) Save(ctx context.Context, g *usergroup.UserGroup) error {
	groups, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range groups {
		if groups[i].ID == g.ID {
			groups[i] = *g
			found = true
			break
		}
	}
	if !found {
		groups = append(groups, *g)
	}
	return r.write(ctx, groups)
}

func (r *JSONRepository) Delete(ctx context.Context, id string) error {
	groups, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := groups[:0]
	for _, g := range groups {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(groups) {
		return cerr.NewError(cerr.NotFound, fmt.Sprintf("user group %s not found", id), nil)
	}
	return r.write(ctx, kept)
}

func (r *JSONRepository) ListGrants(ctx context.Context) (map[string][]permission.Permission, error) {
	groups, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	grants := make(map[string][]permission.Permission, len(groups))
	for _, g := range groups {
		grants[g.ID] = g.Permissions
	}
	return grants, nil
}

func (r *JSONRepository) write(ctx context.Context, groups []usergroup.UserGroup) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal user groups: %w", err))
	}
	if err := r.storage.Write(ctx, groupsKey, data); err != nil {
		return cerr.WrapStorageWriteError("user groups", err)
	}
	return nil
}
