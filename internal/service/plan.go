package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/types"
)

var (
	// ErrUserNotFound is returned when the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when the user has no profile row.
	ErrProfileNotFound = errors.New("profile not found")
)

// DefaultProgramSlug is used when a program slug must be derived but no
// profile exists.
const DefaultProgramSlug = "muscle_gain_beginner"

// DayView is the "today" slice of a cached weekly plan. Daily targets
// apply to the whole plan, not per day; the full week is included for
// client-side navigation.
type DayView struct {
	DailyTargets models.MacroTargets `json:"daily_targets"`
	TodayMeals   []models.MealSlot   `json:"today_meals"`
	WorkoutToday models.WorkoutDay   `json:"workout_today"`
	WeekMeals    models.WeekMeals    `json:"week_meals"`
	WeekWorkouts models.WeekWorkouts `json:"week_workouts"`
	GroceryList  []string            `json:"grocery_list"`
}

// PlanService builds, caches and slices weekly plans. A plan is built at
// most once per (user, ISO week) unless the user's goal changes.
type PlanService struct {
	db       *gorm.DB
	meals    *MealService
	workouts *WorkoutService
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{
		db:       db,
		meals:    NewMealService(db),
		workouts: NewWorkoutService(db),
	}
}

// WeekStart returns the Monday of the ISO week containing d, truncated
// to midnight UTC. time.Date normalizes a day offset that crosses a
// month or year boundary.
func WeekStart(d time.Time) time.Time {
	offset := isoWeekday(d) - 1
	return time.Date(d.Year(), d.Month(), d.Day()-offset, 0, 0, 0, 0, time.UTC)
}

// GetOrBuildWeek returns the cached plan for the week containing today,
// rebuilding it when no plan exists or the cached goal snapshot no
// longer matches the profile's current goal. Diet, experience or
// biometric changes alone do not invalidate a cached week.
func (s *PlanService) GetOrBuildWeek(ctx context.Context, userID uuid.UUID, today time.Time) (*models.WeeklyPlan, error) {
	weekStart := WeekStart(today)

	var plan models.WeeklyPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		First(&plan).Error
	switch {
	case err == nil:
		profile, perr := s.loadProfile(ctx, userID)
		if perr != nil {
			return nil, perr
		}
		if plan.Goal == types.NormalizeGoal(profile.Goal) {
			return &plan, nil
		}
		// Goal changed mid-week: the snapshot is stale, drop and rebuild.
		if derr := s.db.WithContext(ctx).Delete(&models.WeeklyPlan{}, "id = ?", plan.ID).Error; derr != nil {
			return nil, derr
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to build
	default:
		return nil, err
	}

	return s.buildWeek(ctx, userID, today)
}

// buildWeek runs the engines against the current profile and persists
// the result. A unique violation on insert means a concurrent request
// won the build race; the now-existing row is returned instead of the
// error.
func (s *PlanService) buildWeek(ctx context.Context, userID uuid.UUID, today time.Time) (*models.WeeklyPlan, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	goal := types.NormalizeGoal(profile.Goal)
	diet := types.NormalizeDiet(profile.DietType)
	experience, err := s.resolveExperience(ctx, goal, types.NormalizeExperience(profile.ExperienceLevel))
	if err != nil {
		return nil, err
	}

	targets := ComputeDailyTargets(profile.Sex, profile.Age, profile.HeightCM, profile.WeightKG, profile.ActivityLevel, goal)

	weekWorkouts, err := s.workouts.BuildWeekWorkouts(ctx, goal, experience)
	if err != nil {
		return nil, fmt.Errorf("build week workouts: %w", err)
	}

	weekMeals, err := s.meals.BuildWeekMeals(ctx, goal, diet, profile.FavProtein)
	if err != nil {
		return nil, fmt.Errorf("build week meals: %w", err)
	}

	plan := &models.WeeklyPlan{
		UserID:        userID,
		WeekStartDate: WeekStart(today),
		DailyTargets:  targets,
		WeekMeals:     weekMeals,
		WeekWorkouts:  weekWorkouts,
		GroceryList:   BuildGroceryList(weekMeals),
		Goal:          goal,
	}

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.WeeklyPlan
			if ferr := s.db.WithContext(ctx).
				Where("user_id = ? AND week_start_date = ?", userID, plan.WeekStartDate).
				First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}
	return plan, nil
}

// SliceToday projects a weekly plan down to one weekday. A missing
// workout key gets a fixed rest entry; daily targets are whole-plan.
func (s *PlanService) SliceToday(plan *models.WeeklyPlan, today time.Time) *DayView {
	key := WeekdayKeys[isoWeekday(today)-1]

	meals := plan.WeekMeals[key]
	if meals == nil {
		meals = []models.MealSlot{}
	}

	workout, ok := plan.WeekWorkouts[key]
	if !ok {
		workout = models.WorkoutDay{
			Focus:     "Rest",
			Details:   models.ExerciseList{},
			CoachNote: "Rest up.",
		}
	}

	grocery := []string(plan.GroceryList)
	if grocery == nil {
		grocery = []string{}
	}

	return &DayView{
		DailyTargets: plan.DailyTargets,
		TodayMeals:   meals,
		WorkoutToday: workout,
		WeekMeals:    plan.WeekMeals,
		WeekWorkouts: plan.WeekWorkouts,
		GroceryList:  grocery,
	}
}

// ProgramSlugFor derives the program slug "{goal}_{experience}" from the
// user's profile, defaulting when no profile exists.
func (s *PlanService) ProgramSlugFor(ctx context.Context, userID uuid.UUID) string {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return DefaultProgramSlug
	}
	return types.NormalizeGoal(profile.Goal) + "_" + types.NormalizeExperience(profile.ExperienceLevel)
}

// resolveExperience keeps the profile's experience when a program slug
// exists for it, otherwise drops to beginner when that program exists.
// With neither seeded, the original experience is kept and the scheduler
// handles the fallback.
func (s *PlanService) resolveExperience(ctx context.Context, goal, exp string) (string, error) {
	exists, err := s.programSlugExists(ctx, goal+"_"+exp)
	if err != nil {
		return "", err
	}
	if exists {
		return exp, nil
	}

	exists, err = s.programSlugExists(ctx, goal+"_"+types.ExperienceBeginner)
	if err != nil {
		return "", err
	}
	if exists {
		return types.ExperienceBeginner, nil
	}
	return exp, nil
}

func (s *PlanService) programSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.ProgramTemplate{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (s *PlanService) loadProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
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
