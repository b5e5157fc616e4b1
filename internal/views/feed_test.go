package views

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mostface/internal/models"
	"mostface/internal/store"
)

func postIDs(posts []models.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFeedNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := store.State{Posts: []models.Post{
		{ID: 101, CreatedAt: base},
		{ID: 103, CreatedAt: base.Add(2 * time.Minute)},
		{ID: 102, CreatedAt: base.Add(time.Minute)},
	}}

	got := Feed(s)
	assert.Equal(t, []int64{103, 102, 101}, postIDs(got))
}

func TestFeedTieBreaksByID(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := store.State{Posts: []models.Post{
		{ID: 101, CreatedAt: at},
		{ID: 102, CreatedAt: at},
	}}

	got := Feed(s)
	assert.Equal(t, []int64{102, 101}, postIDs(got))
}

func TestFeedDoesNotMutateState(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := store.State{Posts: []models.Post{
		{ID: 101, CreatedAt: base},
		{ID: 102, CreatedAt: base.Add(time.Minute)},
	}}
	before := append([]models.Post(nil), s.Posts...)

	Feed(s)
	assert.Empty(t, cmp.Diff(before, s.Posts))
}

func TestPostsByAuthor(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := store.State{Posts: []models.Post{
		{ID: 101, AuthorID: 1, CreatedAt: base},
		{ID: 102, AuthorID: 2, CreatedAt: base.Add(time.Minute)},
		{ID: 103, AuthorID: 1, CreatedAt: base.Add(2 * time.Minute)},
	}}

	got := PostsByAuthor(s, 1)
	require.Len(t, got, 2)
	assert.Equal(t, []int64{103, 101}, postIDs(got))

	assert.Empty(t, PostsByAuthor(s, 99))
}
