package user

import "context"

// Repository provides persistence for user accounts.
type Repository interface {
	// List returns every account in public shape, credentials stripped.
	List(ctx context.Context) ([]User, error)

	// Get returns one account in public shape.
	Get(ctx context.Context, id string) (*User, error)

	// Save upserts by ID: replace in place when the ID exists, append
	// otherwise.
	Save(ctx context.Context, u *StoredUser) error
}
