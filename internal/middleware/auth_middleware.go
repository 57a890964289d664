package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/errors"
)

// AdminKeyHeader carries the shared admin key.
const AdminKeyHeader = "X-Admin-Key"

type AuthMiddleware struct {
	adminKey string
}

func NewAuthMiddleware(adminKey string) *AuthMiddleware {
	return &AuthMiddleware{
		adminKey: adminKey,
	}
}

// RequireAdmin rejects requests whose admin key header does not match.
// An unset key locks every admin route.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		provided := c.GetHeader(AdminKeyHeader)
		if m.adminKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(m.adminKey)) != 1 {
			log.Warn("Admin key rejected", map[string]interface{}{
				"path":       c.Request.URL.Path,
				"key_passed": provided != "",
			})
			errors.Forbidden(c, "")
			return
		}

		c.Next()
	}
}
