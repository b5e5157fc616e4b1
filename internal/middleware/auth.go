package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mostface/internal/store"
)

// SessionRequired guards screen routes: the store must hold a current user.
// This is a session check, not a security boundary.
func SessionRequired(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := st.GetState()
		if state.CurrentUser == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}

		c.Set("userID", state.CurrentUser.ID)
		c.Next()
	}
}
