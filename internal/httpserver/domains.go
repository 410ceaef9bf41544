package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "smartstudy/internal/auth/delivery/http"
	authRepo "smartstudy/internal/auth/repository/postgre"
	authUC "smartstudy/internal/auth/usecase"
	"smartstudy/internal/middleware"
	"smartstudy/internal/stats"
	statsHTTP "smartstudy/internal/stats/delivery/http"
	statsRepo "smartstudy/internal/stats/repository"
	statsPostgre "smartstudy/internal/stats/repository/postgre"
	statsUC "smartstudy/internal/stats/usecase"
	taskHTTP "smartstudy/internal/task/delivery/http"
	taskRepo "smartstudy/internal/task/repository/postgre"
	taskUC "smartstudy/internal/task/usecase"
	"smartstudy/pkg/scoring"
)

// registerDomainRoutes wires every domain under /api.
//
// Pattern per domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	srv.setupAuthDomain(ctx, api, mw)

	// Stats comes first so the task domain can invalidate its cache.
	statsUseCase := srv.setupStatsDomain(ctx, api, mw)
	srv.setupTaskDomain(ctx, api, mw, statsUseCase)

	return nil
}

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(repo, srv.jwtManager, srv.l)
	h := authHTTP.New(srv.l, uc)

	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw, srv.authRateLimit)
	srv.l.Infof(ctx, "Auth domain registered")
}

func (srv HTTPServer) setupStatsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) stats.Invalidator {
	repo := statsRepo.NewCached(statsPostgre.New(srv.postgresDB, srv.l), srv.statsCacheSize, srv.statsCacheTTL)
	uc := statsUC.New(repo, srv.l)
	h := statsHTTP.New(srv.l, uc)

	statsHTTP.RegisterRoutes(api.Group("/stats"), h, mw)
	srv.l.Infof(ctx, "Stats domain registered")
	return uc
}

func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, invalidator stats.Invalidator) {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	scorer := scoring.New(scoring.DefaultWeights())
	uc := taskUC.New(repo, scorer, srv.uploads, invalidator, srv.l)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, mw)
	srv.l.Infof(ctx, "Task domain registered")
}
