package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mostface/internal/store"
	"mostface/internal/views"
)

// ProfileHandler serves the profile screen projections.
type ProfileHandler struct {
	store *store.Store
}

// NewProfileHandler builds a ProfileHandler.
func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// GetUser looks a user up in the directory.
func (h *ProfileHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	state := h.store.GetState()
	user, ok := views.UserByID(state, userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": sanitizeUser(user)})
}

// GetUserPosts returns the user's posts in feed order.
func (h *ProfileHandler) GetUserPosts(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	state := h.store.GetState()
	c.JSON(http.StatusOK, gin.H{"posts": views.PostsByAuthor(state, userID)})
}
