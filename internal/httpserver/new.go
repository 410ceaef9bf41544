package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"smartstudy/pkg/jwt"
	"smartstudy/pkg/log"
	"smartstudy/pkg/upload"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	jwtManager *jwt.Manager
	uploads    *upload.Storage

	// Tuning
	authRateLimit  int
	statsCacheSize int
	statsCacheTTL  time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	JWTManager *jwt.Manager
	Uploads    *upload.Storage

	// AuthRateLimit caps register/login attempts per client IP per minute.
	AuthRateLimit int

	// Stats snapshot cache; zero values disable caching.
	StatsCacheSize int
	StatsCacheTTL  time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		jwtManager:     cfg.JWTManager,
		uploads:        cfg.Uploads,
		authRateLimit:  cfg.AuthRateLimit,
		statsCacheSize: cfg.StatsCacheSize,
		statsCacheTTL:  cfg.StatsCacheTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.uploads == nil {
		return errors.New("upload storage is required")
	}
	return nil
}
