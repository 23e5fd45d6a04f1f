package word

import "strings"

// Word is a dictionary headword. Identity is the normalized text, not a
// generated ID: two spellings that normalize the same collapse into one
// record.
type Word struct {
	NormalizedText string `json:"normalized_text"`
	Text           string `json:"text"`
}

// WordTranslation is a dictionary entry mapping a headword into a target
// language. Unlike Word it keys on a generated ID, so one headword can carry
// several entries.
type WordTranslation struct {
	ID           string `json:"id"`
	Word         string `json:"word"` // normalized headword
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
	AuthorID     string `json:"author_id"`
}

// Normalize derives the identity key for a headword.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
