package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mostface/internal/store"
	"mostface/internal/views"
)

// SearchHandler serves cross-entity search.
type SearchHandler struct {
	store *store.Store
}

// NewSearchHandler builds a SearchHandler.
func NewSearchHandler(st *store.Store) *SearchHandler {
	return &SearchHandler{store: st}
}

// Search matches users and posts against the query string. An empty query
// returns empty result sets, not everything.
func (h *SearchHandler) Search(c *gin.Context) {
	state := h.store.GetState()
	result := views.Search(state, c.Query("q"))
	result.Users = sanitizeUsers(result.Users)
	c.JSON(http.StatusOK, result)
}
