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

// ChatHandler manages direct chats and the active-chat window.
type ChatHandler struct {
	store *store.Store
	hub   *ws.Hub
}

// NewChatHandler builds a ChatHandler.
func NewChatHandler(st *store.Store, hub *ws.Hub) *ChatHandler {
	return &ChatHandler{store: st, hub: hub}
}

// ListChats returns all chats plus the total unread counter.
func (h *ChatHandler) ListChats(c *gin.Context) {
	state := h.store.GetState()
	c.JSON(http.StatusOK, gin.H{
		"chats":        state.Chats,
		"total_unread": views.TotalChatUnread(state),
	})
}

// OpenChat resolves the chat with a counterpart, creating one if needed, and
// makes it active.
func (h *ChatHandler) OpenChat(c *gin.Context) {
	var req struct {
		CounterpartID int64 `json:"counterpart_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.GetState()
	if req.CounterpartID == state.CurrentUser.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open a chat with yourself"})
		return
	}

	counterpart, ok := views.UserByID(state, req.CounterpartID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	// The id is only used when no chat with this counterpart exists yet.
	chatID := h.store.NextID()
	h.store.Dispatch(c.Request.Context(), store.OpenChat{ChatID: chatID, Counterpart: counterpart})

	next := h.store.GetState()
	chat, ok := views.ChatWithCounterpart(next, req.CounterpartID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chat resolution failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat": chat})
}

// GetActive returns the chat the window is showing, if any.
func (h *ChatHandler) GetActive(c *gin.Context) {
	state := h.store.GetState()
	chat, ok := views.ActiveChat(state)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"chat": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat": chat})
}

// SetActive moves the active-chat pointer. chat_id 0 closes the window.
func (h *ChatHandler) SetActive(c *gin.Context) {
	var req struct {
		ChatID int64 `json:"chat_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ChatID != 0 {
		state := h.store.GetState()
		if _, ok := views.ChatByID(state, req.ChatID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
			return
		}
	}

	h.store.Dispatch(c.Request.Context(), store.SetActiveChat{ChatID: req.ChatID})
	c.JSON(http.StatusOK, gin.H{"active_chat_id": req.ChatID})
}

// PostMessage appends a message to a chat and broadcasts it to the room.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	var req struct {
		Text  string `json:"text"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" && req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message needs text or image"})
		return
	}

	state := h.store.GetState()
	chat, ok := views.ChatByID(state, chatID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
		return
	}

	sender := *state.CurrentUser
	id := h.store.NextID()
	msg := models.Message{
		ID:         id,
		SenderID:   sender.ID,
		ReceiverID: chat.CounterpartID,
		Text:       req.Text,
		Image:      req.Image,
		CreatedAt:  store.Timestamp(id),
	}

	applied := h.store.Dispatch(c.Request.Context(), store.SendMessage{ChatID: chatID, Message: msg})
	if !applied {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
		return
	}

	h.hub.BroadcastChatMessage(chatID, msg)
	c.JSON(http.StatusCreated, msg)
}

// MarkRead zeroes a chat's unread counter for the current user.
func (h *ChatHandler) MarkRead(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}

	state := h.store.GetState()
	if _, ok := views.ChatByID(state, chatID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat not found"})
		return
	}

	applied := h.store.Dispatch(c.Request.Context(), store.MarkChatRead{ChatID: chatID})
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}
