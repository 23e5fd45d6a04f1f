package announcement

import "time"

// Announcement is a platform-wide notice. The collection is kept newest
// first: every save prepends.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
