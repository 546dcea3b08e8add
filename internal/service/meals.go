package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/types"
)

// WeekdayKeys are the weekday map keys in Monday-first order, matching
// ISO weekdays 1..7.
var WeekdayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// MealService selects meals from the catalog and assembles the weekly
// meal schedule.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// findByCategory returns catalog entries matching category, diet and
// goal flag, ordered by name then id so "first match" is deterministic
// across storage engines. Goal-flag containment is checked in-process
// to keep the query portable between Postgres and SQLite.
func (s *MealService) findByCategory(ctx context.Context, category, diet, goal string) ([]models.MealCatalogEntry, error) {
	var entries []models.MealCatalogEntry
	err := s.db.WithContext(ctx).
		Where("category = ? AND diet_type = ?", category, diet).
		Order("name, id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	matched := entries[:0]
	for _, e := range entries {
		if e.SuitsGoal(goal) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// pickBreakfast returns the first breakfast whose name contains "egg"
// (case-insensitive), or nil when none qualifies.
func (s *MealService) pickBreakfast(ctx context.Context, goal, diet string) (*models.Meal, error) {
	entries, err := s.findByCategory(ctx, models.CategoryBreakfast, diet, goal)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), "egg") {
			m := e.AsMeal()
			return &m, nil
		}
	}
	return nil, nil
}

// pickLunches returns the lunch pair: the first entry covers mon-wed,
// the second thu-sun. A single match is reused for both halves.
func (s *MealService) pickLunches(ctx context.Context, goal, diet string) (*models.Meal, *models.Meal, error) {
	entries, err := s.findByCategory(ctx, models.CategoryLunch, diet, goal)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}
	a := entries[0].AsMeal()
	if len(entries) == 1 {
		return &a, &a, nil
	}
	b := entries[1].AsMeal()
	return &a, &b, nil
}

func (s *MealService) pickSnack(ctx context.Context, goal, diet string) (*models.Meal, error) {
	entries, err := s.findByCategory(ctx, models.CategorySnack, diet, goal)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	m := entries[0].AsMeal()
	return &m, nil
}

// pickDinners spreads the matching dinners across seven days round-robin
// by index. No matches yields seven empty placeholders; unlike the other
// categories a missing dinner does not degrade the whole week.
func (s *MealService) pickDinners(ctx context.Context, goal, diet string) ([7]models.Meal, error) {
	var week [7]models.Meal
	entries, err := s.findByCategory(ctx, models.CategoryDinner, diet, goal)
	if err != nil {
		return week, err
	}
	if len(entries) == 0 {
		return week, nil
	}
	for i := 0; i < 7; i++ {
		week[i] = entries[i%len(entries)].AsMeal()
	}
	return week, nil
}

// BuildWeekMeals assembles the 7-day meal schedule for a goal and diet.
// If no breakfast, lunch or snack qualifies, every weekday degrades to
// an empty slot list rather than an error: the caller always gets a
// structurally complete week. favProtein is accepted for API stability
// but does not influence selection.
func (s *MealService) BuildWeekMeals(ctx context.Context, goal, diet, favProtein string) (models.WeekMeals, error) {
	g := types.NormalizeGoal(goal)
	d := types.NormalizeDiet(diet)
	_ = favProtein

	breakfast, err := s.pickBreakfast(ctx, g, d)
	if err != nil {
		return nil, err
	}
	lunchA, lunchB, err := s.pickLunches(ctx, g, d)
	if err != nil {
		return nil, err
	}
	snack, err := s.pickSnack(ctx, g, d)
	if err != nil {
		return nil, err
	}
	dinners, err := s.pickDinners(ctx, g, d)
	if err != nil {
		return nil, err
	}

	week := models.WeekMeals{}
	if breakfast == nil || lunchA == nil || snack == nil {
		for _, key := range WeekdayKeys {
			week[key] = []models.MealSlot{}
		}
		return week, nil
	}

	for i, key := range WeekdayKeys {
		lunch := *lunchA
		if i >= 3 {
			lunch = *lunchB
		}
		week[key] = []models.MealSlot{
			{Label: "Breakfast", Meal: *breakfast},
			{Label: "Lunch", Meal: lunch},
			{Label: "Snack", Meal: *snack},
			{Label: "Dinner", Meal: dinners[i]},
		}
	}
	return week, nil
}

// BuildGroceryList flattens a week of meals into a lower-cased,
// deduplicated, lexicographically sorted ingredient list.
func BuildGroceryList(week models.WeekMeals) []string {
	seen := map[string]struct{}{}
	for _, day := range week {
		for _, slot := range day {
			for _, ing := range slot.Meal.Ingredients {
				seen[strings.ToLower(ing)] = struct{}{}
			}
		}
	}
	items := make([]string, 0, len(seen))
	for ing := range seen {
		items = append(items, ing)
	}
	sort.Strings(items)
	return items
}
