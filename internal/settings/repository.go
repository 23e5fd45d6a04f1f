package settings

import "context"

// Repository provides persistence for the settings singleton.
type Repository interface {
	// Get returns the stored settings, or Default() when absent.
	Get(ctx context.Context) (SystemSettings, error)

	// Set replaces the stored settings.
	Set(ctx context.Context, s SystemSettings) error
}
