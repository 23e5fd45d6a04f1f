package translation

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Translation is one user's rendering of a sentence into a target language.
type Translation struct {
	ID           string    `json:"id"`
	SentenceID   string    `json:"sentence_id"`
	LanguageCode string    `json:"language_code"`
	Text         string    `json:"text"`
	AuthorID     string    `json:"author_id"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
