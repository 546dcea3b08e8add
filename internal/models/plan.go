package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MacroTargets are the derived daily targets embedded in a weekly plan.
// All values are non-negative integers; never persisted on their own.
type MacroTargets struct {
	CalorieTarget int `json:"calorieTarget"`
	ProteinTarget int `json:"proteinTarget"`
	CarbsTarget   int `json:"carbsTarget"`
	FatTarget     int `json:"fatTarget"`
}

func (m MacroTargets) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MacroTargets) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// WorkoutDay is one weekday's workout in a plan.
type WorkoutDay struct {
	Focus     string       `json:"focus"`
	Details   ExerciseList `json:"details"`
	CoachNote string       `json:"coachNote"`
}

// WeekWorkouts maps weekday keys (mon..sun) to workouts. All seven keys
// are always present in a built plan.
type WeekWorkouts map[string]WorkoutDay

func (w WeekWorkouts) Value() (driver.Value, error) {
	if w == nil {
		return "{}", nil
	}
	return json.Marshal(w)
}

func (w *WeekWorkouts) Scan(value interface{}) error {
	if value == nil {
		*w = WeekWorkouts{}
		return nil
	}
	return scanJSON(value, w)
}

// WeeklyPlan is the cached unit: one fully assembled plan per user per
// ISO week. The (user_id, week_start_date) unique index doubles as the
// concurrency guard for simultaneous first builds. Goal records the
// normalized goal snapshot used at build time; a mismatch with the
// profile's current goal invalidates the row.
type WeeklyPlan struct {
	ID            uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID        `gorm:"type:varchar(36);not null;uniqueIndex:uq_user_week" json:"user_id"`
	WeekStartDate time.Time        `gorm:"type:date;not null;uniqueIndex:uq_user_week" json:"week_start_date"`
	DailyTargets  MacroTargets     `gorm:"type:jsonb;not null" json:"daily_targets"`
	WeekMeals     WeekMeals        `gorm:"type:jsonb;not null" json:"week_meals"`
	WeekWorkouts  WeekWorkouts     `gorm:"type:jsonb;not null" json:"week_workouts"`
	GroceryList   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"grocery_list"`
	Goal          string           `json:"goal"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (WeeklyPlan) TableName() string {
	return "weekly_plans"
}

func (p *WeeklyPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
