package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smartstudy/internal/model"
	"smartstudy/pkg/response"
)

// scopeKey is the gin context key the verified Scope is stored under.
const scopeKey = "auth.scope"

// Auth validates the Bearer token and stores the resulting Scope on the
// request context. Requests without a valid token get a 401.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := mw.jwtManager.Verify(token)
		if err != nil {
			mw.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

// ScopeFromContext returns the Scope the Auth middleware stored, if any.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	scope, ok := v.(model.Scope)
	return scope, ok
}
