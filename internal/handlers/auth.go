package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mostface/internal/models"
	"mostface/internal/store"
	"mostface/internal/telemetry"
	"mostface/internal/views"
)

// AuthHandler implements the demo signup/login flow. Credentials are
// compared in plaintext against the persisted directory; this is a
// development stub, not an authentication system.
type AuthHandler struct {
	store *store.Store
	audit *telemetry.AuditEmitter
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(st *store.Store, audit *telemetry.AuditEmitter) *AuthHandler {
	return &AuthHandler{store: st, audit: audit}
}

// Signup registers a user in the directory and starts their session.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		ProfileName string `json:"profile_name"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.GetState()
	if _, taken := views.UserByEmail(state, req.Email); taken {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	id := h.store.NextID()
	user := models.User{
		ID:          id,
		Name:        req.Name,
		ProfileName: req.ProfileName,
		Email:       req.Email,
		Password:    req.Password,
		Friends:     []int64{},
		JoinedAt:    store.Timestamp(id),
	}

	h.store.Dispatch(c.Request.Context(), store.RegisterUser{User: user})
	h.store.Dispatch(c.Request.Context(), store.SetCurrentUser{User: &user})

	h.audit.Emit(c.Request.Context(), "INFO", "user signed up", requestIDFromContext(c), &user.ID)
	c.JSON(http.StatusCreated, gin.H{"user": sanitizeUser(user)})
}

// Login starts a session for a directory user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.GetState()
	user, ok := views.UserByEmail(state, req.Email)
	if !ok || user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	h.store.Dispatch(c.Request.Context(), store.SetCurrentUser{User: &user})

	h.audit.Emit(c.Request.Context(), "INFO", "user logged in", requestIDFromContext(c), &user.ID)
	c.JSON(http.StatusOK, gin.H{"user": sanitizeUser(user)})
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Dispatch(c.Request.Context(), store.SetCurrentUser{User: nil})
	c.Status(http.StatusNoContent)
}
