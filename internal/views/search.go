package views

import (
	"strings"

	"mostface/internal/models"
	"mostface/internal/store"
)

// SearchResult holds cross-entity matches. Both slices are always non-nil so
// an empty result is distinguishable from "matches everything" and renders
// as [] rather than null.
type SearchResult struct {
	Users []models.User `json:"users"`
	Posts []models.Post `json:"posts"`
}

// Search matches users (name, profile name, email) and posts (content,
// embedded author name or profile name) by case-insensitive substring. An
// empty or whitespace-only query yields empty result sets.
func Search(s store.State, query string) SearchResult {
	result := SearchResult{Users: []models.User{}, Posts: []models.Post{}}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return result
	}

	for _, u := range s.Users {
		if containsFold(u.Name, q) || containsFold(u.ProfileName, q) || containsFold(u.Email, q) {
			result.Users = append(result.Users, u)
		}
	}

	for _, p := range Feed(s) {
		if containsFold(p.Content, q) || containsFold(p.Author.Name, q) || containsFold(p.Author.ProfileName, q) {
			result.Posts = append(result.Posts, p)
		}
	}

	return result
}

func containsFold(value, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(value), loweredQuery)
}
