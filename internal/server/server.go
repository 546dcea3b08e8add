package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitweek/backend/config"
	"github.com/fitweek/backend/internal/database"
	"github.com/fitweek/backend/internal/middleware"
	"github.com/fitweek/backend/internal/router"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New builds the server from configuration: router, services and the
// optional Redis-backed rate limiter. The server starts without Redis;
// plan generation just runs unthrottled.
func New(cfg *config.Config, db *gorm.DB) *Server {
	var planLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Redis unavailable, plan generation rate limiting disabled: %v", err)
	} else {
		planLimiter = middleware.NewPlanGenerationRateLimiter(redisClient)
	}

	r := router.SetupRouter(db, cfg.JWTSecret, planLimiter)

	return &Server{
		cfg:    cfg,
		router: r,
		db:     db,
	}
}

// Start begins serving HTTP and blocks until the listener stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
