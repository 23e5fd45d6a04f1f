package forum

import "time"

// Post is a single message within a topic.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Topic is a forum discussion. New topics go to the front of the collection;
// edits replace in place so a topic keeps its position.
type Topic struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	AuthorID  string    `json:"author_id"`
	Posts     []Post    `json:"posts"`
	CreatedAt time.Time `json:"created_at"`
}
