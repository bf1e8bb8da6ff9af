package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const apiKeyMessage = "Invalid or missing API key. Provide X-API-Key header."

// publicPaths never require an API key.
var publicPaths = map[string]bool{
	constants.RootPath:   true,
	constants.HealthPath: true,
	constants.DocsPath:   true,
}

// APIKeyAuth requires a configured key in the X-API-Key header. With no
// keys configured every request passes.
func APIKeyAuth(keys []string) gin.HandlerFunc {
	allowed := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			allowed = append(allowed, k)
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if len(allowed) == 0 || publicPaths[path] || strings.HasPrefix(path, constants.SwaggerPath+"/") {
			c.Next()
			return
		}

		if !validKey(c.GetHeader(constants.APIKeyHeader), allowed) {
			logger.Log.Warn("Rejected request without a valid API key",
				zap.String("path", path),
				zap.String("correlation_id", GetCorrelationID(c)),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiKeyMessage})
			return
		}

		c.Next()
	}
}

func validKey(key string, allowed []string) bool {
	if key == "" {
		return false
	}
	for _, k := range allowed {
		if subtle.ConstantTimeCompare([]byte(key), []byte(k)) == 1 {
			return true
		}
	}
	return false
}
