// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session ensures every request carries a session id cookie. The id
// keys the session's cart store and checkout pipeline.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			// 30 days; the cart snapshot itself is durable
			c.SetCookie("session_id", sessionID, 30*86400, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the request's session id
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
