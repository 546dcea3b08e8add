package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
)

// ProfileService reads and updates the biometric profile the plan
// engine consumes.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile replaces the profile wholesale, creating the row when
// registration somehow did not.
func (s *ProfileService) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	var existing models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.WithContext(ctx).Create(profile).Error
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", profile.UserID).
		Select("Age", "Sex", "HeightCM", "WeightKG", "ActivityLevel", "Goal", "DietType", "FavProtein", "ExperienceLevel").
		Updates(profile).Error
}
