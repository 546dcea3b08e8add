package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/middleware"
	"github.com/fitweek/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "FitWeek API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes wires every handler under /api/v1. The rate limiter is
// optional; passing nil leaves plan generation unthrottled.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, jwtSecret string, planLimiter *middleware.RateLimiter) {
	router.GET("/", HealthCheck)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	authService := service.NewAuthService(db, jwtSecret)
	profileService := service.NewProfileService(db)
	planService := service.NewPlanService(db)
	blockService := service.NewBlockService(db)

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService, authService)
	planHandler := NewPlanHandler(planService, blockService, authService, planLimiter)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	profileHandler.RegisterRoutes(v1)
	planHandler.RegisterRoutes(v1)
}
