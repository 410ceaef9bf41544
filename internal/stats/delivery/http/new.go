package http

import (
	"github.com/gin-gonic/gin"

	"smartstudy/internal/stats"
	"smartstudy/pkg/log"
)

// Handler is the public interface for the stats HTTP delivery layer.
type Handler interface {
	Summary(c *gin.Context)
	Weekly(c *gin.Context)
	Categories(c *gin.Context)
	Heatmap(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc stats.UseCase
}

// New creates a new HTTP handler for the stats domain.
func New(l log.Logger, uc stats.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
