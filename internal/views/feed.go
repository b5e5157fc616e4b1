// Package views holds the derived projections over the registry: pure
// functions recomputed from a state snapshot on demand, never stored.
package views

import (
	"sort"

	"mostface/internal/models"
	"mostface/internal/store"
)

// Feed ranks all posts by creation timestamp descending. Ties break by id
// descending, so the order is total and stable across unrelated state
// changes.
func Feed(s store.State) []models.Post {
	posts := append([]models.Post(nil), s.Posts...)
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts
}

// PostsByAuthor is the profile-page projection: the author's posts in feed
// order.
func PostsByAuthor(s store.State, authorID int64) []models.Post {
	out := make([]models.Post, 0)
	for _, p := range Feed(s) {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out
}
