package translation

import "context"

// Repository provides persistence for translations.
type Repository interface {
	// List returns all translations in stored order.
	List(ctx context.Context) ([]Translation, error)

	// Save upserts by ID: replace in place when the ID exists, append
	// otherwise.
	Save(ctx context.Context, t *Translation) error
}
