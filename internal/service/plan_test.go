package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/service"
	"github.com/fitweek/backend/internal/testhelpers"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			in:   time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC),
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps back to preceding monday",
			in:   time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week spanning a month boundary",
			in:   time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week spanning a year boundary",
			in:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.WeekStart(tt.in))
		})
	}
}

func TestGetOrBuildWeekMemoizes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "muscle_gain")
	testhelpers.SeedStandardCatalog(t, db, "muscle_gain", "nonveg")
	testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")
	svc := service.NewPlanService(db)
	ctx := context.Background()

	first, err := svc.GetOrBuildWeek(ctx, user.ID, monday)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)
	assert.True(t, first.WeekStartDate.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "muscle_gain", first.Goal)
	assert.Len(t, first.WeekMeals, 7)
	assert.NotEmpty(t, first.GroceryList)

	// A later day of the same week returns the same row.
	second, err := svc.GetOrBuildWeek(ctx, user.ID, sunday)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.WeeklyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrBuildWeekGoalChangeInvalidates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "muscle_gain")
	testhelpers.SeedStandardCatalog(t, db, "muscle_gain", "nonveg")
	testhelpers.SeedStandardCatalog(t, db, "fat_loss", "nonveg")
	testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")
	testhelpers.SeedProgram(t, db, "fat_loss_beginner", "fat_loss", "beginner")
	svc := service.NewPlanService(db)
	ctx := context.Background()

	first, err := svc.GetOrBuildWeek(ctx, user.ID, monday)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Update("goal", "fat_loss").Error)

	rebuilt, err := svc.GetOrBuildWeek(ctx, user.ID, wednesday)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, rebuilt.ID)
	assert.Equal(t, "fat_loss", rebuilt.Goal)
	assert.Less(t, rebuilt.DailyTargets.CalorieTarget, first.DailyTargets.CalorieTarget)

	var count int64
	require.NoError(t, db.Model(&models.WeeklyPlan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "stale plan must be deleted")
}

func TestGetOrBuildWeekNonGoalChangesKeepCache(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "muscle_gain")
	testhelpers.SeedStandardCatalog(t, db, "muscle_gain", "nonveg")
	svc := service.NewPlanService(db)
	ctx := context.Background()

	first, err := svc.GetOrBuildWeek(ctx, user.ID, monday)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"weight_kg": 95.0, "diet_type": "veg"}).Error)

	second, err := svc.GetOrBuildWeek(ctx, user.ID, wednesday)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.DailyTargets, second.DailyTargets)
}

func TestBuildWeekConflictReturnsExisting(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "muscle_gain")
	testhelpers.SeedStandardCatalog(t, db, "muscle_gain", "nonveg")
	svc := service.NewPlanService(db)
	ctx := context.Background()

	// A row inserted by a concurrent winner: the constraint must reject a
	// second insert for the same (user, week) and the service must hand
	// back the winner's row.
	winner := &models.WeeklyPlan{
		UserID:        user.ID,
		WeekStartDate: service.WeekStart(monday),
		DailyTargets:  models.MacroTargets{CalorieTarget: 1111, ProteinTarget: 99, CarbsTarget: 100, FatTarget: 30},
		WeekMeals:     models.WeekMeals{},
		WeekWorkouts:  models.WeekWorkouts{},
		GroceryList:   models.JSONBStringArray{},
		Goal:          "muscle_gain",
	}
	require.NoError(t, db.Create(winner).Error)

	dup := &models.WeeklyPlan{
		UserID:        user.ID,
		WeekStartDate: service.WeekStart(monday),
		DailyTargets:  models.MacroTargets{},
		WeekMeals:     models.WeekMeals{},
		WeekWorkouts:  models.WeekWorkouts{},
		GroceryList:   models.JSONBStringArray{},
		Goal:          "muscle_gain",
	}
	err := db.Create(dup).Error
	require.Error(t, err, "unique constraint on (user_id, week_start_date) must hold")

	got, err := svc.GetOrBuildWeek(ctx, user.ID, monday)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
	assert.Equal(t, 1111, got.DailyTargets.CalorieTarget)
}

func TestGetOrBuildWeekMissingUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewPlanService(db)

	_, err := svc.GetOrBuildWeek(context.Background(), uuid.New(), monday)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestGetOrBuildWeekMissingProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "muscle_gain")
	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.UserProfile{}).Error)
	svc := service.NewPlanService(db)

	_, err := svc.GetOrBuildWeek(context.Background(), user.ID, monday)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestSliceToday(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewPlanService(db)

	plan := &models.WeeklyPlan{
		DailyTargets: models.MacroTargets{CalorieTarget: 2000, ProteinTarget: 150, CarbsTarget: 200, FatTarget: 60},
		WeekMeals: models.WeekMeals{
			"mon": {{Label: "Breakfast", Meal: models.Meal{Name: "Oats"}}},
		},
		WeekWorkouts: models.WeekWorkouts{
			"mon": {Focus: "Legs A", Details: models.ExerciseList{{Name: "Squat", Sets: 3, Reps: "8"}}, CoachNote: "Go steady."},
		},
		GroceryList: models.JSONBStringArray{"oats"},
	}

	day := svc.SliceToday(plan, monday)
	assert.Equal(t, 2000, day.DailyTargets.CalorieTarget)
	require.Len(t, day.TodayMeals, 1)
	assert.Equal(t, "Oats", day.TodayMeals[0].Meal.Name)
	assert.Equal(t, "Legs A", day.WorkoutToday.Focus)
	assert.Equal(t, []string{"oats"}, day.GroceryList)

	// Tuesday has no entries: meals empty, workout falls back to rest.
	tue := svc.SliceToday(plan, monday.AddDate(0, 0, 1))
	assert.Empty(t, tue.TodayMeals)
	assert.NotNil(t, tue.TodayMeals)
	assert.Equal(t, "Rest", tue.WorkoutToday.Focus)
	assert.Equal(t, "Rest up.", tue.WorkoutToday.CoachNote)
	assert.Empty(t, tue.WorkoutToday.Details)
}

func TestProgramSlugFor(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewPlanService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "fat_loss")
	assert.Equal(t, "fat_loss_beginner", svc.ProgramSlugFor(ctx, user.ID))

	require.NoError(t, db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"goal": "bulk", "experience_level": "advanced"}).Error)
	assert.Equal(t, "muscle_gain_advanced", svc.ProgramSlugFor(ctx, user.ID))

	// No profile at all falls back to the default slug.
	assert.Equal(t, service.DefaultProgramSlug, svc.ProgramSlugFor(ctx, uuid.New()))
}

func TestExperienceFallbackToBeginnerProgram(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	user := testhelpers.CreateTestUser(t, db, "muscle_gain")
	require.NoError(t, db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Update("experience_level", "advanced").Error)
	testhelpers.SeedStandardCatalog(t, db, "muscle_gain", "nonveg")
	testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")
	svc := service.NewPlanService(db)

	plan, err := svc.GetOrBuildWeek(context.Background(), user.ID, monday)
	require.NoError(t, err)

	// The beginner program was scheduled even though the profile says advanced.
	assert.Equal(t, "Legs A", plan.WeekWorkouts["mon"].Focus)
}
