package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireSession for downstream handlers.
const (
	ctxSessionID   = "session_id"
	ctxBearerToken = "bearer_token"
	ctxDisplayName = "display_name"
)

// RequireSession guards every content route. A request without a resolvable
// session is redirected to /login; otherwise the bearer token is threaded
// into the gin context so handlers never read ambient storage.
func RequireSession(store *Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		token, err := store.Token(c.Request.Context(), id)
		if err != nil {
			// Unknown or expired session: same treatment as no cookie.
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(ctxSessionID, id)
		c.Set(ctxBearerToken, token)
		c.Set(ctxDisplayName, DisplayName(token))
		c.Next()
	}
}

// SessionID returns the session id set by RequireSession.
func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// BearerToken returns the backend credential set by RequireSession.
func BearerToken(c *gin.Context) string {
	return c.GetString(ctxBearerToken)
}

// Name returns the display name set by RequireSession.
func Name(c *gin.Context) string {
	return c.GetString(ctxDisplayName)
}
