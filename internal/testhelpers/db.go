package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fitweek/backend/internal/models"
)

// SetupTestDB opens an in-memory SQLite database with the full schema.
// TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey, matching the Postgres driver.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.MealCatalogEntry{},
		&models.ProgramTemplate{},
		&models.ProgramDayTemplate{},
		&models.ProgramWeekTemplate{},
		&models.WarmupBlock{},
		&models.CooldownBlock{},
		&models.RestDayTemplate{},
		&models.WeeklyPlan{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateTestUser inserts a user plus a profile with the given goal and
// sensible biometrics.
func CreateTestUser(t *testing.T, db *gorm.DB, goal string) *models.User {
	t.Helper()

	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	profile := &models.UserProfile{
		UserID:          user.ID,
		Age:             30,
		Sex:             "female",
		HeightCM:        165,
		WeightKG:        60,
		ActivityLevel:   "moderate",
		Goal:            goal,
		DietType:        "nonveg",
		ExperienceLevel: "beginner",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return user
}

// SeedMeal inserts one catalog entry.
func SeedMeal(t *testing.T, db *gorm.DB, name, category, diet string, goals, ingredients []string) *models.MealCatalogEntry {
	t.Helper()

	entry := &models.MealCatalogEntry{
		Name:        name,
		Category:    category,
		DietType:    diet,
		GoalFlags:   goals,
		Ingredients: ingredients,
		MacroInfo:   models.Macros{Calories: 400, Protein: 30, Carbs: 40, Fat: 12},
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to seed meal %q: %v", name, err)
	}
	return entry
}

// SeedStandardCatalog inserts a catalog that satisfies every slot for
// the given goal and diet: one egg breakfast, two lunches, one snack,
// three dinners.
func SeedStandardCatalog(t *testing.T, db *gorm.DB, goal, diet string) {
	t.Helper()

	goals := []string{goal}
	SeedMeal(t, db, "Scrambled Eggs & Toast", models.CategoryBreakfast, diet, goals, []string{"Eggs", "Bread", "Butter"})
	SeedMeal(t, db, "Chicken Rice Bowl", models.CategoryLunch, diet, goals, []string{"Chicken", "Rice", "Broccoli"})
	SeedMeal(t, db, "Tuna Wrap", models.CategoryLunch, diet, goals, []string{"Tuna", "Tortilla", "Lettuce"})
	SeedMeal(t, db, "Greek Yogurt Cup", models.CategorySnack, diet, goals, []string{"Greek yogurt", "Honey"})
	SeedMeal(t, db, "Beef Stir Fry", models.CategoryDinner, diet, goals, []string{"Beef", "Peppers", "Rice"})
	SeedMeal(t, db, "Salmon & Potatoes", models.CategoryDinner, diet, goals, []string{"Salmon", "Potatoes", "Asparagus"})
	SeedMeal(t, db, "Turkey Chili", models.CategoryDinner, diet, goals, []string{"Turkey", "Beans", "Tomatoes"})
}

// SeedProgram inserts a program with the train/train/rest/train/train/
// train/rest weekly pattern and day templates for the five training
// days.
func SeedProgram(t *testing.T, db *gorm.DB, slug, goal, level string) *models.ProgramTemplate {
	t.Helper()

	prog := &models.ProgramTemplate{
		Slug:        slug,
		Name:        slug,
		Goal:        goal,
		Level:       level,
		DaysPerWeek: 5,
		IsActive:    true,
	}
	if err := db.Create(prog).Error; err != nil {
		t.Fatalf("failed to seed program %q: %v", slug, err)
	}

	// The rest template is shared; create it once.
	var restCount int64
	db.Model(&models.RestDayTemplate{}).Where("slug = ?", "rest_active_recovery").Count(&restCount)
	if restCount == 0 {
		rest := &models.RestDayTemplate{
			Slug:    "rest_active_recovery",
			Name:    "Active Recovery Day",
			Content: models.BlockContent{Title: "Active Recovery", Steps: []models.BlockStep{{Name: "Brisk walk", TimeSec: 1200}}},
		}
		if err := db.Create(rest).Error; err != nil {
			t.Fatalf("failed to seed rest template: %v", err)
		}
	}

	days := []struct {
		number int
		name   string
	}{
		{1, "Legs A"}, {2, "Pull A"}, {4, "Lower Vol"}, {5, "Push A"}, {6, "Core"},
	}
	for _, d := range days {
		day := &models.ProgramDayTemplate{
			ProgramID: prog.ID,
			DayNumber: d.number,
			Name:      d.name,
			CoachNote: "Leave one rep in the tank.",
			Details: models.ExerciseList{
				{Name: "Main lift", Sets: 3, Reps: "8-10"},
				{Name: "Accessory", Sets: 3, Reps: "12"},
			},
		}
		if err := db.Create(day).Error; err != nil {
			t.Fatalf("failed to seed program day %d: %v", d.number, err)
		}
	}

	week := []struct {
		weekday int
		day     *int
		isRest  bool
	}{
		{1, intPtr(1), false},
		{2, intPtr(2), false},
		{3, nil, true},
		{4, intPtr(4), false},
		{5, intPtr(5), false},
		{6, intPtr(6), false},
		{7, nil, true},
	}
	for _, w := range week {
		row := &models.ProgramWeekTemplate{
			ProgramID: prog.ID,
			Weekday:   w.weekday,
			DayNumber: w.day,
			IsRest:    w.isRest,
		}
		if w.isRest {
			row.RestSlug = "rest_active_recovery"
		}
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed week row %d: %v", w.weekday, err)
		}
	}
	return prog
}

func intPtr(i int) *int {
	return &i
}
