package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitweek/backend/internal/middleware"
	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/service"
)

// PlanService is the surface the plan handler needs.
type PlanService interface {
	GetOrBuildWeek(ctx context.Context, userID uuid.UUID, today time.Time) (*models.WeeklyPlan, error)
	SliceToday(plan *models.WeeklyPlan, today time.Time) *service.DayView
	ProgramSlugFor(ctx context.Context, userID uuid.UUID) string
}

// BlockService resolves today's warm-up/cool-down/rest content.
type BlockService interface {
	GetTodayBlocks(ctx context.Context, programSlug string, onDate time.Time) (*service.TodayBlocks, error)
}

// PlanResponse is the full weekly plan as stored.
type PlanResponse struct {
	ID            uuid.UUID           `json:"id"`
	WeekStartDate string              `json:"week_start_date"`
	Goal          string              `json:"goal"`
	DailyTargets  models.MacroTargets `json:"daily_targets"`
	WeekMeals     models.WeekMeals    `json:"week_meals"`
	WeekWorkouts  models.WeekWorkouts `json:"week_workouts"`
	GroceryList   []string            `json:"grocery_list"`
}

// CurrentDayResponse is the today view plus the block content for the
// user's program.
type CurrentDayResponse struct {
	PlanID uuid.UUID            `json:"plan_id"`
	Date   string               `json:"date"`
	Day    *service.DayView     `json:"day"`
	Blocks *service.TodayBlocks `json:"blocks"`
}

type PlanHandler struct {
	plans   PlanService
	blocks  BlockService
	tokens  middleware.TokenValidator
	limiter *middleware.RateLimiter
	now     func() time.Time
}

func NewPlanHandler(plans PlanService, blocks BlockService, tokens middleware.TokenValidator, limiter *middleware.RateLimiter) *PlanHandler {
	return &PlanHandler{
		plans:   plans,
		blocks:  blocks,
		tokens:  tokens,
		limiter: limiter,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/plan")
	plan.Use(middleware.AuthMiddleware(h.tokens))
	{
		generate := plan.Group("")
		if h.limiter != nil {
			generate.Use(h.limiter.RateLimitMiddleware())
		}
		generate.POST("/generate-week", h.GenerateWeek)

		plan.GET("/week", h.GetWeek)
		plan.GET("/current", h.GetCurrent)
	}
}

// GenerateWeek builds (or returns) the plan for the current week.
func (h *PlanHandler) GenerateWeek(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	plan, err := h.plans.GetOrBuildWeek(c.Request.Context(), userID.(uuid.UUID), h.now())
	if err != nil {
		h.planError(c, err)
		return
	}

	c.JSON(http.StatusOK, planResponse(plan))
}

// GetWeek returns the cached plan for the current week, building it on
// first access.
func (h *PlanHandler) GetWeek(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	plan, err := h.plans.GetOrBuildWeek(c.Request.Context(), userID.(uuid.UUID), h.now())
	if err != nil {
		h.planError(c, err)
		return
	}

	c.JSON(http.StatusOK, planResponse(plan))
}

// GetCurrent returns today's slice of the weekly plan plus the block
// content for the user's program. The program query parameter overrides
// the slug derived from the profile.
func (h *PlanHandler) GetCurrent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uid := userID.(uuid.UUID)
	today := h.now()

	plan, err := h.plans.GetOrBuildWeek(c.Request.Context(), uid, today)
	if err != nil {
		h.planError(c, err)
		return
	}

	slug := c.Query("programSlug")
	if slug == "" {
		slug = h.plans.ProgramSlugFor(c.Request.Context(), uid)
	}

	blocks, err := h.blocks.GetTodayBlocks(c.Request.Context(), slug, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve blocks"})
		return
	}

	c.JSON(http.StatusOK, CurrentDayResponse{
		PlanID: plan.ID,
		Date:   today.Format("2006-01-02"),
		Day:    h.plans.SliceToday(plan, today),
		Blocks: blocks,
	})
}

func (h *PlanHandler) planError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build plan"})
	}
}

func planResponse(plan *models.WeeklyPlan) PlanResponse {
	grocery := []string(plan.GroceryList)
	if grocery == nil {
		grocery = []string{}
	}
	return PlanResponse{
		ID:            plan.ID,
		WeekStartDate: plan.WeekStartDate.Format("2006-01-02"),
		Goal:          plan.Goal,
		DailyTargets:  plan.DailyTargets,
		WeekMeals:     plan.WeekMeals,
		WeekWorkouts:  plan.WeekWorkouts,
		GroceryList:   grocery,
	}
}
