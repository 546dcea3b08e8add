package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal categories in the catalog.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
)

// Macros is the per-meal nutrition breakdown stored on catalog entries.
type Macros struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m Macros) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *Macros) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// MealCatalogEntry is read-only reference data seeded out-of-band. The
// selector filters on category, diet type and goal-flag containment.
type MealCatalogEntry struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Category     string           `gorm:"not null;index" json:"category"`
	DietType     string           `gorm:"not null;index" json:"diet_type"`
	GoalFlags    JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"goal_flags"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions string           `gorm:"type:text" json:"instructions"`
	MacroInfo    Macros           `gorm:"type:jsonb;column:macros" json:"macros"`
	Tags         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
}

func (MealCatalogEntry) TableName() string {
	return "meal_catalog"
}

func (e *MealCatalogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// SuitsGoal reports whether the entry's goal flags contain the given
// canonical goal. Containment is evaluated in-process so the query
// behaves identically on Postgres and SQLite.
func (e *MealCatalogEntry) SuitsGoal(goal string) bool {
	for _, f := range e.GoalFlags {
		if f == goal {
			return true
		}
	}
	return false
}

// Meal is the denormalized meal payload embedded in a weekly plan.
type Meal struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	MacroInfo    Macros   `json:"macros"`
	Tags         []string `json:"tags"`
}

// AsMeal converts a catalog entry to the plan-embedded representation.
func (e *MealCatalogEntry) AsMeal() Meal {
	m := Meal{
		Name:         e.Name,
		Category:     e.Category,
		Ingredients:  e.Ingredients,
		Instructions: e.Instructions,
		MacroInfo:    e.MacroInfo,
		Tags:         e.Tags,
	}
	if m.Ingredients == nil {
		m.Ingredients = []string{}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return m
}

// MealSlot is one labeled entry in a day's meal schedule.
type MealSlot struct {
	Label string `json:"label"`
	Meal  Meal   `json:"meal"`
}

// WeekMeals maps weekday keys (mon..sun) to that day's ordered slots.
type WeekMeals map[string][]MealSlot

func (w WeekMeals) Value() (driver.Value, error) {
	if w == nil {
		return "{}", nil
	}
	return json.Marshal(w)
}

func (w *WeekMeals) Scan(value interface{}) error {
	if value == nil {
		*w = WeekMeals{}
		return nil
	}
	return scanJSON(value, w)
}
