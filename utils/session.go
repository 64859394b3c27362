package utils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

// NewSessionID mints a random id for an anonymous cart session. This is not
// authentication; it only scopes a cart to a browser.
func NewSessionID() string {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func CurrentSessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
