package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	FirstName    string         `gorm:"not null" json:"first_name"`
	LastName     string         `gorm:"not null" json:"last_name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Plans   []WeeklyPlan `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds the biometric and preference data the plan engine
// reads. Updated wholesale on profile setup; no history is kept. Zero
// values mean the field was never provided, and the engine substitutes
// conservative defaults rather than failing.
type UserProfile struct {
	UserID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"user_id"`
	Age             int       `json:"age"`
	Sex             string    `json:"sex"`
	HeightCM        float64   `json:"height_cm"`
	WeightKG        float64   `json:"weight_kg"`
	ActivityLevel   string    `json:"activity_level"`
	Goal            string    `json:"goal"`
	DietType        string    `json:"diet_type"`
	FavProtein      string    `json:"fav_protein"`
	ExperienceLevel string    `json:"experience_level"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
