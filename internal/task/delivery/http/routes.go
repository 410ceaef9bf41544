package http

import (
	"github.com/gin-gonic/gin"

	"smartstudy/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every task route requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), h.Create)
	rg.GET("", mw.Auth(), h.List)
	rg.GET("/:id", mw.Auth(), h.Detail)
	rg.PUT("/:id", mw.Auth(), h.Update)
	rg.PATCH("/:id/complete", mw.Auth(), h.Complete)
	rg.DELETE("/:id", mw.Auth(), h.Delete)
	rg.POST("/:id/upload-proof", mw.Auth(), h.UploadProof)
}
