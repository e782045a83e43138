package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// IdentityMiddleware reads the authenticated user id from the X-User-ID
// header. Session handling and authentication live in the calling layer;
// by the time a request reaches this API the identity is already resolved.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing X-User-ID header"})
			return
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid X-User-ID header"})
			return
		}

		c.Set(userIDKey, uint(id))
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet(userIDKey).(uint)
}
