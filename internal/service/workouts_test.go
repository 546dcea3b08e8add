package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/service"
	"github.com/fitweek/backend/internal/testhelpers"
)

func TestBuildWeekWorkoutsFullProgram(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")
	svc := service.NewWorkoutService(db)

	week, err := svc.BuildWeekWorkouts(context.Background(), "muscle_gain", "beginner")
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, "Legs A", week["mon"].Focus)
	assert.Equal(t, "Pull A", week["tue"].Focus)
	assert.Equal(t, "Rest", week["wed"].Focus)
	assert.Equal(t, "Active recovery or easy walk.", week["wed"].CoachNote)
	assert.Equal(t, "Lower Vol", week["thu"].Focus)
	assert.Equal(t, "Push A", week["fri"].Focus)
	assert.Equal(t, "Core", week["sat"].Focus)
	assert.Equal(t, "Rest", week["sun"].Focus)

	assert.Len(t, week["mon"].Details, 2)
	assert.Equal(t, "Leave one rep in the tank.", week["mon"].CoachNote)
}

func TestBuildWeekWorkoutsNoProgramAllRest(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewWorkoutService(db)

	week, err := svc.BuildWeekWorkouts(context.Background(), "performance", "advanced")
	require.NoError(t, err)
	require.Len(t, week, 7)
	for _, key := range service.WeekdayKeys {
		assert.Equal(t, "Rest", week[key].Focus)
		assert.Equal(t, "Walk 20–30 min or 10 min mobility.", week[key].CoachNote)
		assert.NotNil(t, week[key].Details)
		assert.Empty(t, week[key].Details)
	}
}

func TestBuildWeekWorkoutsLevelFallback(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	testhelpers.SeedProgram(t, db, "fat_loss_beginner", "fat_loss", "beginner")
	svc := service.NewWorkoutService(db)

	// no advanced program exists, the goal-only fallback applies
	week, err := svc.BuildWeekWorkouts(context.Background(), "fat_loss", "advanced")
	require.NoError(t, err)
	assert.Equal(t, "Legs A", week["mon"].Focus)
}

func TestBuildWeekWorkoutsLowestIDWins(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	first := testhelpers.SeedProgram(t, db, "fat_loss_intermediate", "fat_loss", "intermediate")
	testhelpers.SeedProgram(t, db, "fat_loss_advanced", "fat_loss", "advanced")
	svc := service.NewWorkoutService(db)

	week, err := svc.BuildWeekWorkouts(context.Background(), "fat_loss", "beginner")
	require.NoError(t, err)
	// goal-only fallback picks the lowest program id
	assert.NotZero(t, first.ID)
	assert.Equal(t, "Legs A", week["mon"].Focus)
}

func TestBuildWeekWorkoutsMissingWeekdayRow(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prog := testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")
	// drop Wednesday's row entirely: absent row, not an explicit rest
	require.NoError(t, db.Where("program_id = ? AND weekday = ?", prog.ID, 3).
		Delete(&models.ProgramWeekTemplate{}).Error)
	svc := service.NewWorkoutService(db)

	week, err := svc.BuildWeekWorkouts(context.Background(), "muscle_gain", "beginner")
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, "Rest", week["wed"].Focus)
	assert.Equal(t, "Recovery / light mobility.", week["wed"].CoachNote)
}

func TestBuildWeekWorkoutsDanglingDayNumber(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prog := testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")
	// point Monday at a day template that does not exist
	require.NoError(t, db.Model(&models.ProgramWeekTemplate{}).
		Where("program_id = ? AND weekday = ?", prog.ID, 1).
		Update("day_number", 99).Error)
	svc := service.NewWorkoutService(db)

	week, err := svc.BuildWeekWorkouts(context.Background(), "muscle_gain", "beginner")
	require.NoError(t, err)
	assert.Equal(t, "Rest", week["mon"].Focus)
	assert.Equal(t, "Recovery / light mobility.", week["mon"].CoachNote)
}

func TestBuildWeekWorkoutsInactiveProgramIgnored(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	prog := testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")
	require.NoError(t, db.Model(&models.ProgramTemplate{}).
		Where("id = ?", prog.ID).
		Update("is_active", false).Error)
	svc := service.NewWorkoutService(db)

	week, err := svc.BuildWeekWorkouts(context.Background(), "muscle_gain", "beginner")
	require.NoError(t, err)
	for _, key := range service.WeekdayKeys {
		assert.Equal(t, "Rest", week[key].Focus)
	}
}
