package models

import "time"

// MediaKind distinguishes attached post media.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Post is a feed entry. Author is an as-of snapshot; Likes and Comments are
// append-only after creation.
type Post struct {
	ID        int64        `json:"id"`
	AuthorID  int64        `json:"author_id"`
	Author    UserSnapshot `json:"author"`
	Content   string       `json:"content"`
	Media     string       `json:"media,omitempty"`
	MediaKind MediaKind    `json:"media_kind,omitempty"`
	Likes     []int64      `json:"likes"`
	Comments  []Comment    `json:"comments"`
	CreatedAt time.Time    `json:"created_at"`
}

// Comment belongs to exactly one post.
type Comment struct {
	ID        int64        `json:"id"`
	AuthorID  int64        `json:"author_id"`
	Author    UserSnapshot `json:"author"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
}
