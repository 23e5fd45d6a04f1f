package sentence

import "context"

// Repository provides persistence for source sentences.
type Repository interface {
	// List returns all sentences in stored order.
	List(ctx context.Context) ([]Sentence, error)

	// Save upserts by ID: replace in place when the ID exists, append
	// otherwise.
	Save(ctx context.Context, s *Sentence) error

	// ReplaceAll overwrites the whole collection, used by bulk import.
	ReplaceAll(ctx context.Context, sentences []Sentence) error
}
