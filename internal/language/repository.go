package language

import "context"

// Repository provides persistence for the target-language singleton.
type Repository interface {
	// Get returns the stored target language, or Default() when absent.
	Get(ctx context.Context) (TargetLanguage, error)

	// Set replaces the stored target language.
	Set(ctx context.Context, l TargetLanguage) error
}
