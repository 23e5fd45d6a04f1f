package announcement

import "context"

// Repository provides persistence for announcements.
type Repository interface {
	// List returns all announcements, newest first.
	List(ctx context.Context) ([]Announcement, error)

	// Save prepends unconditionally; announcements are never edited in
	// place.
	Save(ctx context.Context, a *Announcement) error
}
