package session

import (
	"context"

	"github.com/bilumvv/bilum/internal/permission"
	"github.com/bilumvv/bilum/internal/user"
)

// Holder tracks the single active user of the running process. Login
// overwrites unconditionally; this is a single-agent client, not a session
// manager.
type Holder struct {
	repo     Repository
	resolver *permission.Resolver
}

func NewHolder(repo Repository, resolver *permission.Resolver) *Holder {
	return &Holder{
		repo:     repo,
		resolver: resolver,
	}
}

// Login resolves the user's effective permissions, stamps them on the
// snapshot and stores it as the active session. The returned user carries
// the freshly computed set.
func (h *Holder) Login(ctx context.Context, u user.User) (*user.User, error) {
	perms, err := h.resolver.Resolve(ctx, u.Role, u.GroupIDs)
	if err != nil {
		return nil, err
	}
	u.EffectivePermissions = perms
	if err := h.repo.Set(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Refresh recomputes the active user's permissions, for use after a role or
// group-membership change. No-op when nobody is logged in.
func (h *Holder) Refresh(ctx context.Context) (*user.User, error) {
	u, err := h.repo.Get(ctx)
	if err != nil || u == nil {
		return nil, err
	}
	return h.Login(ctx, *u)
}

// Logout clears only the session record; domain data persists.
func (h *Holder) Logout(ctx context.Context) error {
	return h.repo.Clear(ctx)
}

// Current returns the active user snapshot, or nil when logged out.
func (h *Holder) Current(ctx context.Context) (*user.User, error) {
	return h.repo.Get(ctx)
}

// HasPermission checks the cached permission set of the active user.
// Returns false when nobody is logged in or nothing has been resolved.
func (h *Holder) HasPermission(ctx context.Context, perm permission.Permission) (bool, error) {
	u, err := h.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return permission.Has(u.EffectivePermissions, perm), nil
}
