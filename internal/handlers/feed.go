package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mostface/internal/models"
	"mostface/internal/store"
	"mostface/internal/views"
	"mostface/internal/ws"
)

// FeedHandler manages the feed screen: ranking, post creation, likes and
// comments.
type FeedHandler struct {
	store *store.Store
	hub   *ws.Hub
}

// NewFeedHandler builds a FeedHandler.
func NewFeedHandler(st *store.Store, hub *ws.Hub) *FeedHandler {
	return &FeedHandler{store: st, hub: hub}
}

// GetFeed returns all posts, newest first.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	state := h.store.GetState()
	c.JSON(http.StatusOK, gin.H{"posts": views.Feed(state)})
}

// CreatePost adds a post authored by the current user.
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req struct {
		Content   string           `json:"content"`
		Media     string           `json:"media"`
		MediaKind models.MediaKind `json:"media_kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" && req.Media == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post needs content or media"})
		return
	}

	state := h.store.GetState()
	author := *state.CurrentUser

	id := h.store.NextID()
	post := models.Post{
		ID:        id,
		AuthorID:  author.ID,
		Author:    author.Snapshot(),
		Content:   req.Content,
		Media:     req.Media,
		MediaKind: req.MediaKind,
		Likes:     []int64{},
		Comments:  []models.Comment{},
		CreatedAt: store.Timestamp(id),
	}

	h.store.Dispatch(c.Request.Context(), store.AddPost{Post: post})
	c.JSON(http.StatusCreated, post)
}

// LikePost appends the current user to the post's like-set, once.
func (h *FeedHandler) LikePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	state := h.store.GetState()
	post, ok := findPost(state, postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	userID := c.GetInt64("userID")
	applied := h.store.Dispatch(c.Request.Context(), store.LikePost{PostID: postID, UserID: userID})

	if applied && post.AuthorID != userID {
		h.notify(c, models.NotificationLike, "liked your post")
	}
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

// AddComment appends a comment to the post.
func (h *FeedHandler) AddComment(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.GetState()
	post, ok := findPost(state, postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	author := *state.CurrentUser
	id := h.store.NextID()
	comment := models.Comment{
		ID:        id,
		AuthorID:  author.ID,
		Author:    author.Snapshot(),
		Text:      req.Text,
		CreatedAt: store.Timestamp(id),
	}

	applied := h.store.Dispatch(c.Request.Context(), store.AddComment{PostID: postID, Comment: comment})
	if !applied {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	if post.AuthorID != author.ID {
		h.notify(c, models.NotificationComment, "commented on your post")
	}
	c.JSON(http.StatusCreated, comment)
}

// notify records an interaction notification and pushes the updated badge.
func (h *FeedHandler) notify(c *gin.Context, kind models.NotificationKind, message string) {
	state := h.store.GetState()
	sender := *state.CurrentUser

	id := h.store.NextID()
	notification := models.Notification{
		ID:        id,
		Kind:      kind,
		SenderID:  sender.ID,
		Sender:    sender.Snapshot(),
		Message:   message,
		CreatedAt: store.Timestamp(id),
	}
	h.store.Dispatch(c.Request.Context(), store.AddNotification{Notification: notification})

	next := h.store.GetState()
	h.hub.BroadcastNotification(notification, views.UnreadNotifications(next))
}

func findPost(s store.State, id int64) (models.Post, bool) {
	for _, p := range s.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}
