package service

import (
	"math"

	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/types"
)

// fallbackBMR is used when any of age/height/weight is missing so plan
// generation never fails on an incomplete profile.
const fallbackBMR = 1700.0

// defaultWeightKG stands in for a missing body weight when computing the
// maintenance protein target.
const defaultWeightKG = 70.0

// MifflinStJeor computes BMR in kcal/day. The sex constant is +5 for
// male, -161 otherwise. Any non-positive age/height/weight falls back to
// a conservative fixed BMR instead of an error.
func MifflinStJeor(sex string, age int, heightCM, weightKG float64) float64 {
	if age <= 0 || heightCM <= 0 || weightKG <= 0 {
		return fallbackBMR
	}
	s := -161.0
	if types.IsMale(sex) {
		s = 5.0
	}
	return 10*weightKG + 6.25*heightCM - 5*float64(age) + s
}

// TDEE scales BMR by the activity multiplier.
func TDEE(bmr float64, activity string) float64 {
	return bmr * types.ActivityMultiplier(activity)
}

// MacroTargets derives the calorie target and macro split from TDEE,
// goal and body weight.
//
//	fat_loss:    0.85 x TDEE, protein 2.1 g/kg, carb/fat shares 45/30
//	muscle_gain: 1.07 x TDEE, protein 2.0 g/kg, carb/fat shares 50/25
//	otherwise:   1.00 x TDEE, protein 1.8 g/kg, carb/fat shares 50/25
//
// The remainder after protein is floored at 40% of calories so the
// carb/fat split never goes degenerate on high-protein targets.
func MacroTargets(tdee float64, goal string, weightKG float64) models.MacroTargets {
	var (
		calories            int
		proteinPerKG        float64
		carbShare, fatShare float64
	)

	switch types.NormalizeGoal(goal) {
	case types.GoalFatLoss:
		calories = int(math.Round(tdee * 0.85))
		proteinPerKG = 2.1
		carbShare, fatShare = 0.45, 0.30
	case types.GoalMuscleGain:
		calories = int(math.Round(tdee * 1.07))
		proteinPerKG = 2.0
		carbShare, fatShare = 0.50, 0.25
	default:
		calories = int(math.Round(tdee))
		proteinPerKG = 1.8
		carbShare, fatShare = 0.50, 0.25
	}

	if weightKG <= 0 {
		weightKG = defaultWeightKG
	}
	protein := int(math.Round(weightKG * proteinPerKG))

	remKcal := calories - protein*4
	if floor := int(float64(calories) * 0.4); remKcal < floor {
		remKcal = floor
	}

	carbsKcal := int(float64(remKcal) * carbShare)
	fatKcal := int(float64(remKcal) * fatShare)

	return models.MacroTargets{
		CalorieTarget: calories,
		ProteinTarget: protein,
		CarbsTarget:   int(math.Round(float64(carbsKcal) / 4)),
		FatTarget:     int(math.Round(float64(fatKcal) / 9)),
	}
}

// ComputeDailyTargets is the full profile-to-targets pipeline. Pure:
// no I/O, deterministic, and always returns non-negative integers.
func ComputeDailyTargets(sex string, age int, heightCM, weightKG float64, activity, goal string) models.MacroTargets {
	bmr := MifflinStJeor(sex, age, heightCM, weightKG)
	return MacroTargets(TDEE(bmr, activity), goal, weightKG)
}
