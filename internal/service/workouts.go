package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/types"
)

// Rest-day coach notes. Which one a day receives depends on how it went
// unfilled: an explicit rest marker, a hole in the week template, or the
// final completeness pass.
const (
	restNoteExplicit = "Active recovery or easy walk."
	restNoteMissing  = "Recovery / light mobility."
	restNoteDefault  = "Walk 20–30 min or 10 min mobility."
)

func restDay(note string) models.WorkoutDay {
	return models.WorkoutDay{
		Focus:     "Rest",
		Details:   models.ExerciseList{},
		CoachNote: note,
	}
}

// WorkoutService selects a program template and maps it onto the week.
type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// pickProgram finds the active program for (goal, level), falling back
// to any active program for the goal, lowest id first. Returns nil when
// no program exists at all.
func (s *WorkoutService) pickProgram(ctx context.Context, goal, level string) (*models.ProgramTemplate, error) {
	var prog models.ProgramTemplate
	err := s.db.WithContext(ctx).
		Where("goal = ? AND level = ? AND is_active = ?", goal, level, true).
		Order("id").
		First(&prog).Error
	if err == nil {
		return &prog, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Where("goal = ? AND is_active = ?", goal, true).
		Order("id").
		First(&prog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prog, nil
}

// BuildWeekWorkouts maps the selected program's week template onto the
// seven weekdays. Every key is always present: days without data get a
// rest entry, and a final pass backfills anything still missing.
func (s *WorkoutService) BuildWeekWorkouts(ctx context.Context, goal, experience string) (models.WeekWorkouts, error) {
	g := types.NormalizeGoal(goal)
	e := types.NormalizeExperience(experience)

	out := models.WeekWorkouts{}

	prog, err := s.pickProgram(ctx, g, e)
	if err != nil {
		return nil, err
	}
	if prog == nil {
		return ensureSevenDays(out), nil
	}

	var rows []models.ProgramWeekTemplate
	if err := s.db.WithContext(ctx).Where("program_id = ?", prog.ID).Find(&rows).Error; err != nil {
		return nil, err
	}
	byWeekday := make(map[int]models.ProgramWeekTemplate, len(rows))
	for _, row := range rows {
		byWeekday[row.Weekday] = row
	}

	for i, key := range WeekdayKeys {
		row, ok := byWeekday[i+1]
		if !ok {
			out[key] = restDay(restNoteMissing)
			continue
		}
		if row.IsRest {
			out[key] = restDay(restNoteExplicit)
			continue
		}
		if row.DayNumber == nil {
			out[key] = restDay(restNoteMissing)
			continue
		}

		var day models.ProgramDayTemplate
		err := s.db.WithContext(ctx).
			Where("program_id = ? AND day_number = ?", prog.ID, *row.DayNumber).
			First(&day).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			out[key] = restDay(restNoteMissing)
			continue
		}
		if err != nil {
			return nil, err
		}

		focus := day.Name
		if focus == "" {
			focus = "Training"
		}
		details := day.Details
		if details == nil {
			details = models.ExerciseList{}
		}
		out[key] = models.WorkoutDay{
			Focus:     focus,
			Details:   details,
			CoachNote: day.CoachNote,
		}
	}

	return ensureSevenDays(out), nil
}

// ensureSevenDays guarantees all seven weekday keys exist.
func ensureSevenDays(week models.WeekWorkouts) models.WeekWorkouts {
	out := models.WeekWorkouts{}
	for _, key := range WeekdayKeys {
		if day, ok := week[key]; ok {
			out[key] = day
			continue
		}
		out[key] = restDay(restNoteDefault)
	}
	return out
}
