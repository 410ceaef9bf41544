package http

import (
	"github.com/gin-gonic/gin"

	"smartstudy/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every stats route requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/summary", mw.Auth(), h.Summary)
	rg.GET("/weekly", mw.Auth(), h.Weekly)
	rg.GET("/categories", mw.Auth(), h.Categories)
	rg.GET("/heatmap", mw.Auth(), h.Heatmap)
}
