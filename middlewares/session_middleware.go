// middlewares/session_middleware.go
package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the credential cookie.
const SessionCookie = "sessionId"

// SessionKey is the gin context key the resolved session id is
// stored under.
const SessionKey = "sessionID"

// RequireSession rejects requests that arrive without a usable
// session credential. Meal creation is the only route that may run
// without one (it mints a credential itself), so it must not be
// behind this middleware.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session credential required"})
			return
		}
		c.Set(SessionKey, sessionID)
		c.Next()
	}
}
