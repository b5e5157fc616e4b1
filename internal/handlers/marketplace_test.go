package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemSuccess(t *testing.T) {
	env := setupRouter(t)
	alice := env.login(t, "alice")

	rec := env.do(t, http.MethodPost, "/marketplace", map[string]any{
		"title":       "Mountain bike",
		"description": "barely used",
		"price":       150.0,
		"image":       "bike.jpg",
		"location":    "Colombo, Sri Lanka",
		"condition":   "Excellent",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	state := env.store.GetState()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "Mountain bike", state.Items[0].Title)
	assert.Equal(t, alice.ID, state.Items[0].SellerID)
}

func TestCreateItemFreeListing(t *testing.T) {
	env := setupRouter(t)
	env.login(t, "alice")

	rec := env.do(t, http.MethodPost, "/marketplace", map[string]any{
		"title": "Old couch",
		"price": 0,
		"image": "couch.jpg",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateItemValidation(t *testing.T) {
	env := setupRouter(t)
	env.login(t, "alice")

	cases := []map[string]any{
		{"price": 10.0, "image": "x.jpg"},
		{"title": "No image", "price": 10.0},
		{"title": "Negative", "price": -5.0, "image": "x.jpg"},
	}
	for _, body := range cases {
		rec := env.do(t, http.MethodPost, "/marketplace", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Empty(t, env.store.GetState().Items)
}

func TestListItemsNewestFirst(t *testing.T) {
	env := setupRouter(t)
	env.login(t, "alice")

	env.do(t, http.MethodPost, "/marketplace", map[string]any{"title": "first", "price": 1.0, "image": "a.jpg"})
	env.do(t, http.MethodPost, "/marketplace", map[string]any{"title": "second", "price": 2.0, "image": "b.jpg"})

	rec := env.do(t, http.MethodGet, "/marketplace", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items, ok := decodeBody(t, rec)["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].(map[string]any)["title"])
	assert.Equal(t, "first", items[1].(map[string]any)["title"])
}
