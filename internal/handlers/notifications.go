package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mostface/internal/store"
	"mostface/internal/views"
)

// NotificationHandler serves the notification dropdown and badge.
type NotificationHandler struct {
	store *store.Store
}

// NewNotificationHandler builds a NotificationHandler.
func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

// List returns all notifications plus the unread badge count.
func (h *NotificationHandler) List(c *gin.Context) {
	state := h.store.GetState()
	c.JSON(http.StatusOK, gin.H{
		"notifications": state.Notifications,
		"unread_count":  views.UnreadNotifications(state),
	})
}

// MarkRead flips one notification's read flag. Repeating the call is a
// detectable no-op, not an error.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	state := h.store.GetState()
	known := false
	for _, n := range state.Notifications {
		if n.ID == id {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	applied := h.store.Dispatch(c.Request.Context(), store.MarkNotificationRead{ID: id})
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

// MarkAllRead marks every unread notification read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	state := h.store.GetState()
	updated := 0
	for _, n := range state.Notifications {
		if n.Read {
			continue
		}
		if h.store.Dispatch(c.Request.Context(), store.MarkNotificationRead{ID: n.ID}) {
			updated++
		}
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
