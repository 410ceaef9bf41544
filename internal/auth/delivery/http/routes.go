package http

import (
	"github.com/gin-gonic/gin"

	"smartstudy/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Register and login are rate limited; profile routes require auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, loginPerMinute int) {
	limited := mw.RateLimit(loginPerMinute)

	rg.POST("/register", limited, h.Register)
	rg.POST("/login", limited, h.Login)
	rg.GET("/me", mw.Auth(), h.Me)
	rg.PUT("/me", mw.Auth(), h.UpdateMe)
}
