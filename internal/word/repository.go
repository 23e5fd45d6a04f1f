package word

import "context"

// Repository provides persistence for dictionary headwords.
type Repository interface {
	// List returns all headwords in stored order.
	List(ctx context.Context) ([]Word, error)

	// Save upserts by normalized text: replace in place on a match, append
	// otherwise.
	Save(ctx context.Context, w *Word) error
}

// TranslationRepository provides persistence for dictionary entries.
type TranslationRepository interface {
	// List returns all entries in stored order.
	List(ctx context.Context) ([]WordTranslation, error)

	// Save upserts by ID: replace in place when the ID exists, append
	// otherwise.
	Save(ctx context.Context, wt *WordTranslation) error
}
