package sentence

// Sentence is a source-language sentence awaiting translation. Imported
// sentences are immutable apart from explicit edits through Save.
type Sentence struct {
	ID      string `json:"id"`
	English string `json:"english"`
}
