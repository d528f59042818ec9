package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hiboard/hiboard-api/internal/constants"
	apierrors "github.com/hiboard/hiboard-api/internal/errors"
)

// RequireBearerToken extracts the bearer token from the Authorization header
// and stores it in the context. Handlers pass it on explicitly to operations
// that call the identity provider.
func RequireBearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			apierrors.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIDToken, token)
		c.Next()
	}
}

// GetIDToken retrieves the identity-provider token from context
func GetIDToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(constants.ContextKeyIDToken)
	if !exists {
		return "", false
	}

	s, ok := token.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
