package middleware

import (
	"net/http"
	"strings"

	"glowdesk/services/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionAuthMiddleware.
const (
	CtxSession      = "session"
	CtxStylistID    = "stylistID"
	CtxBackendToken = "backendToken"
	CtxSessionToken = "sessionToken"
)

// SessionAuthMiddleware resolves the bearer token into a dashboard session
// and rejects requests that have none.
func SessionAuthMiddleware(sessions session.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sess, err := sessions.Current(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please log in again"})
			return
		}

		c.Set(CtxSession, sess)
		c.Set(CtxStylistID, sess.StylistID)
		c.Set(CtxBackendToken, sess.BackendToken)
		c.Set(CtxSessionToken, tokenString)
		c.Next()
	}
}
