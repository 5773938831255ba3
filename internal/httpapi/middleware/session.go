package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ueberstunden/overtime-ledger/internal/httpapi/session"
)

// RequireSession middleware rejects requests that do not carry a valid session
// cookie. All ledger and settings routes sit behind it; only the health check
// and the auth endpoints stay open.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || !sessions.Validate(token) {
			response := gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			}
			if correlationID := GetCorrelationID(c); correlationID != "" {
				response["correlation_id"] = correlationID
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		c.Next()
	}
}
