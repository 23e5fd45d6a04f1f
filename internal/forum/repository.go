package forum

import "context"

// Repository provides persistence for forum topics.
type Repository interface {
	// List returns all topics, newest-created first.
	List(ctx context.Context) ([]Topic, error)

	// Save upserts by ID: an existing topic is replaced in place, keeping
	// its position; a new topic is prepended.
	Save(ctx context.Context, t *Topic) error
}
