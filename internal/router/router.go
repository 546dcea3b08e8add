package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/api"
	"github.com/fitweek/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(db *gorm.DB, jwtSecret string, planLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(nil))

	api.RegisterRoutes(router, db, jwtSecret, planLimiter)

	return router
}
