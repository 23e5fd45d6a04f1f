package session

import (
	"context"

	"github.com/bilumvv/bilum/internal/user"
)

// Repository provides persistence for the current-session singleton: the
// snapshot of the one logged-in user.
type Repository interface {
	// Get returns the active session's user snapshot, or nil when nobody
	// is logged in.
	Get(ctx context.Context) (*user.User, error)

	// Set replaces the session unconditionally.
	Set(ctx context.Context, u *user.User) error

	// Clear removes the session. Domain collections are untouched.
	Clear(ctx context.Context) error
}
