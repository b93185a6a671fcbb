package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mrtravel/internal/domain"
)

const (
	userContextKey = "userContext"
	userRoleKey    = "userRole"
)

// TokenParser turns a bearer token into the caller identity.
type TokenParser func(token string) (domain.RequestContext, error)

// RequireAuth rejects requests without a valid bearer token and stores the
// caller identity on the context for handlers and RequireRoles.
func RequireAuth(parse TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		rc, err := parse(strings.TrimSpace(token))
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		c.Set(userContextKey, rc)
		c.Set(userRoleKey, rc.Role)
		c.Next()
	}
}

// GetRequestContext returns the identity set by RequireAuth.
func GetRequestContext(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	rc, ok := v.(domain.RequestContext)
	return rc, ok
}

func abortJSON(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"error":      message,
		"code":       code,
		"request_id": GetRequestID(c),
	})
}
