package middlewares

import (
	"backend/utils"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "session_id"

// SessionMiddleware scopes carts and in-progress customizations to a browser
// without any login: a random cookie id, minted on first contact. A client
// that cannot hold cookies may send X-Session-Id instead.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader("X-Session-Id")
		if sid == "" {
			if v, err := c.Cookie(sessionCookie); err == nil {
				sid = v
			}
		}
		if sid == "" {
			sid = utils.NewSessionID()
			c.SetCookie(sessionCookie, sid, 86400, "/", "", false, true)
			c.Header("X-Session-Id", sid)
		}

		c.Set("sessionId", sid)
		c.Next()
	}
}
