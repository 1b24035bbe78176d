package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth guards write endpoints with a static API key list.
func APIKeyAuth(apiKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(apiKeyHeader)
		if provided != "" {
			for _, key := range apiKeys {
				if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    "unauthorized",
			"message": "invalid or missing API key",
		})
	}
}
