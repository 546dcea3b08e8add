package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitweek/backend/internal/middleware"
	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/service"
)

// ProfileService is the surface the profile handler needs.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, profile *models.UserProfile) error
}

// ProfileRequest carries the biometric and preference fields. Zero and
// omitted values are stored as-is; the target calculator treats them as
// missing and falls back to its defaults.
type ProfileRequest struct {
	Age             int     `json:"age"`
	Sex             string  `json:"sex"`
	HeightCM        float64 `json:"height_cm"`
	WeightKG        float64 `json:"weight_kg"`
	ActivityLevel   string  `json:"activity_level"`
	Goal            string  `json:"goal"`
	DietType        string  `json:"diet_type"`
	FavProtein      string  `json:"fav_protein"`
	ExperienceLevel string  `json:"experience_level"`
}

type ProfileHandler struct {
	profiles ProfileService
	tokens   middleware.TokenValidator
}

func NewProfileHandler(profiles ProfileService, tokens middleware.TokenValidator) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, tokens: tokens}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.tokens))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile := &models.UserProfile{
		UserID:          userID.(uuid.UUID),
		Age:             req.Age,
		Sex:             req.Sex,
		HeightCM:        req.HeightCM,
		WeightKG:        req.WeightKG,
		ActivityLevel:   req.ActivityLevel,
		Goal:            req.Goal,
		DietType:        req.DietType,
		FavProtein:      req.FavProtein,
		ExperienceLevel: req.ExperienceLevel,
	}
	if err := h.profiles.SaveProfile(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
