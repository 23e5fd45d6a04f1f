package usergroup

import (
	"context"

	"github.com/bilumvv/bilum/internal/permission"
)

// Repository provides persistence for user groups.
type Repository interface {
	// List returns all groups in stored order. A collection that has never
	// been written returns the seeded defaults.
	List(ctx context.Context) ([]UserGroup, error)

	// Save upserts by ID: replace in place when the ID exists, append
	// otherwise.
	Save(ctx context.Context, g *UserGroup) error

	// Delete removes a group. Users referencing the ID keep it; the
	// permission resolver skips unresolvable IDs.
	Delete(ctx context.Context, id string) error

	// ListGrants returns each group's permissions keyed by group ID.
	ListGrants(ctx context.Context) (map[string][]permission.Permission, error)
}
