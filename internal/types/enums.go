package types

import "strings"

// Canonical values shared by the target calculator, the meal selector,
// the workout scheduler and the plan cache. Every component normalizes
// through this package so the goal snapshot stored on a cached plan
// always compares equal to the goal the selectors were built with.

const (
	GoalMuscleGain  = "muscle_gain"
	GoalFatLoss     = "fat_loss"
	GoalPerformance = "performance"
	GoalRecomp      = "recomp"
)

const (
	DietVeg    = "veg"
	DietNonVeg = "nonveg"
)

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityIntense   = "intense"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityIntense:   1.725,
}

// NormalizeGoal maps the free-text goal synonyms accepted on profile
// setup onto one of the four canonical goals. Unknown input is recomp.
func NormalizeGoal(goal string) string {
	switch strings.ToLower(strings.TrimSpace(goal)) {
	case "muscle_gain", "build muscle", "muscle", "bulk":
		return GoalMuscleGain
	case "fat_loss", "lose fat", "cut":
		return GoalFatLoss
	case "performance", "athletic":
		return GoalPerformance
	default:
		return GoalRecomp
	}
}

// NormalizeDiet maps diet synonyms onto veg/nonveg, defaulting to nonveg.
func NormalizeDiet(diet string) string {
	switch strings.ToLower(strings.TrimSpace(diet)) {
	case "veg", "vegetarian":
		return DietVeg
	default:
		return DietNonVeg
	}
}

// NormalizeExperience clamps the experience level to the three known
// values, defaulting to beginner.
func NormalizeExperience(exp string) string {
	switch strings.ToLower(strings.TrimSpace(exp)) {
	case ExperienceIntermediate:
		return ExperienceIntermediate
	case ExperienceAdvanced:
		return ExperienceAdvanced
	default:
		return ExperienceBeginner
	}
}

// ActivityMultiplier returns the TDEE multiplier for an activity level.
// Unknown or missing activity falls back to the light multiplier.
func ActivityMultiplier(activity string) float64 {
	if m, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(activity))]; ok {
		return m
	}
	return activityMultipliers[ActivityLight]
}

// IsMale reports whether the free-text sex field indicates male. The
// calculator only needs the male/not-male distinction for the BMR
// constant.
func IsMale(sex string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(sex)), "m")
}
