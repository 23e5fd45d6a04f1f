package permission

import (
	"context"
	"sort"
)

// GroupLister supplies the current group grants, keyed by group ID. Backed by
// the user-group repository in production and by a map in tests.
type GroupLister interface {
	ListGrants(ctx context.Context) (map[string][]Permission, error)
}

// Resolver computes a user's effective permission set from the static role
// table and the groups the user belongs to.
type Resolver struct {
	roles  RoleTable
	groups GroupLister
}

func NewResolver(roles RoleTable, groups GroupLister) *Resolver {
	return &Resolver{
		roles:  roles,
		groups: groups,
	}
}

// Resolve unions the role's base permissions with the permissions of every
// group in groupIDs. Group IDs that no longer resolve are skipped silently.
// If the union contains the wildcard, the result collapses to just the
// wildcard. The result is deduplicated and sorted.
func (r *Resolver) Resolve(ctx context.Context, role Role, groupIDs []string) ([]Permission, error) {
	grants, err := r.groups.ListGrants(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[Permission]struct{}{}
	for _, p := range r.roles.Base(role) {
		seen[p] = struct{}{}
	}
	for _, gid := range groupIDs {
		for _, p := range grants[gid] {
			seen[p] = struct{}{}
		}
	}

	if _, ok := seen[Wildcard]; ok {
		return []Permission{Wildcard}, nil
	}

	resolved := make([]Permission, 0, len(seen))
	for p := range seen {
		resolved = append(resolved, p)
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i] < resolved[j] })
	return resolved, nil
}
