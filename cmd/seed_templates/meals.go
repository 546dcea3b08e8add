package main

import (
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
)

var allGoals = models.JSONBStringArray{"muscle_gain", "fat_loss", "performance", "recomp"}

// catalog is the starter meal library. Every breakfast contains "egg" in
// its name; the selector requires that before it will fill a week.
var catalog = []models.MealCatalogEntry{
	{
		Name:         "Scrambled Eggs, Oats & Banana",
		Category:     models.CategoryBreakfast,
		DietType:     "nonveg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"egg", "oats", "banana", "milk"},
		Tags:         models.JSONBStringArray{"quick", "high-protein"},
		Instructions: "Scramble the eggs, cook the oats in milk, serve with sliced banana.",
		MacroInfo:    models.Macros{Calories: 520, Protein: 28, Carbs: 62, Fat: 16},
	},
	{
		Name:         "Egg Bhurji & Toast",
		Category:     models.CategoryBreakfast,
		DietType:     "veg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"egg", "onion", "tomato", "bread"},
		Tags:         models.JSONBStringArray{"quick"},
		Instructions: "Soft-scramble the eggs with onion and tomato, serve on toast.",
		MacroInfo:    models.Macros{Calories: 430, Protein: 22, Carbs: 44, Fat: 18},
	},
	{
		Name:         "Chicken Rice Bowl",
		Category:     models.CategoryLunch,
		DietType:     "nonveg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"chicken breast", "rice", "broccoli", "olive oil"},
		Tags:         models.JSONBStringArray{"meal-prep"},
		Instructions: "Grill the chicken, steam the broccoli, serve over rice.",
		MacroInfo:    models.Macros{Calories: 640, Protein: 48, Carbs: 70, Fat: 16},
	},
	{
		Name:         "Tuna Wrap",
		Category:     models.CategoryLunch,
		DietType:     "nonveg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"tuna", "tortilla", "lettuce", "yogurt"},
		Tags:         models.JSONBStringArray{"quick"},
		Instructions: "Mix tuna with yogurt, wrap with lettuce in the tortilla.",
		MacroInfo:    models.Macros{Calories: 480, Protein: 38, Carbs: 46, Fat: 14},
	},
	{
		Name:         "Paneer Rice Bowl",
		Category:     models.CategoryLunch,
		DietType:     "veg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"paneer", "rice", "peas", "ghee"},
		Tags:         models.JSONBStringArray{"meal-prep"},
		Instructions: "Pan-fry the paneer, fold into rice with peas.",
		MacroInfo:    models.Macros{Calories: 610, Protein: 30, Carbs: 68, Fat: 24},
	},
	{
		Name:         "Chickpea Salad Wrap",
		Category:     models.CategoryLunch,
		DietType:     "veg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"chickpeas", "tortilla", "cucumber", "yogurt"},
		Tags:         models.JSONBStringArray{"quick"},
		Instructions: "Mash chickpeas with yogurt and cucumber, wrap and serve.",
		MacroInfo:    models.Macros{Calories: 450, Protein: 20, Carbs: 62, Fat: 13},
	},
	{
		Name:         "Salmon, Potatoes & Greens",
		Category:     models.CategoryDinner,
		DietType:     "nonveg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"salmon", "potato", "spinach", "lemon"},
		Instructions: "Bake the salmon and potatoes, wilt the spinach with lemon.",
		MacroInfo:    models.Macros{Calories: 620, Protein: 42, Carbs: 48, Fat: 26},
	},
	{
		Name:         "Turkey Chili",
		Category:     models.CategoryDinner,
		DietType:     "nonveg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"ground turkey", "kidney beans", "tomato", "onion"},
		Tags:         models.JSONBStringArray{"meal-prep"},
		Instructions: "Brown the turkey, simmer with beans and tomato.",
		MacroInfo:    models.Macros{Calories: 560, Protein: 44, Carbs: 52, Fat: 18},
	},
	{
		Name:         "Beef Stir-fry",
		Category:     models.CategoryDinner,
		DietType:     "nonveg",
		GoalFlags:    models.JSONBStringArray{"muscle_gain", "performance", "recomp"},
		Ingredients:  models.JSONBStringArray{"beef", "rice", "bell pepper", "soy sauce"},
		Instructions: "Sear the beef, stir-fry with peppers, serve over rice.",
		MacroInfo:    models.Macros{Calories: 680, Protein: 45, Carbs: 64, Fat: 24},
	},
	{
		Name:         "Tofu Stir-fry & Rice",
		Category:     models.CategoryDinner,
		DietType:     "veg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"tofu", "rice", "bell pepper", "soy sauce"},
		Instructions: "Crisp the tofu, stir-fry with peppers, serve over rice.",
		MacroInfo:    models.Macros{Calories: 540, Protein: 28, Carbs: 66, Fat: 18},
	},
	{
		Name:         "Dal, Rice & Salad",
		Category:     models.CategoryDinner,
		DietType:     "veg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"lentils", "rice", "cucumber", "tomato"},
		Tags:         models.JSONBStringArray{"meal-prep"},
		Instructions: "Simmer the dal, serve with rice and a side salad.",
		MacroInfo:    models.Macros{Calories: 520, Protein: 24, Carbs: 82, Fat: 9},
	},
	{
		Name:         "Whey Shake & Fruit",
		Category:     models.CategorySnack,
		DietType:     "nonveg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"whey protein", "milk", "apple"},
		Tags:         models.JSONBStringArray{"quick"},
		Instructions: "Blend the whey with milk, eat the fruit alongside.",
		MacroInfo:    models.Macros{Calories: 310, Protein: 32, Carbs: 34, Fat: 5},
	},
	{
		Name:         "Greek Yogurt & Granola",
		Category:     models.CategorySnack,
		DietType:     "veg",
		GoalFlags:    allGoals,
		Ingredients:  models.JSONBStringArray{"greek yogurt", "granola", "berries"},
		Tags:         models.JSONBStringArray{"quick"},
		Instructions: "Layer the yogurt with granola and berries.",
		MacroInfo:    models.Macros{Calories: 340, Protein: 22, Carbs: 44, Fat: 9},
	},
}

func seedMealCatalog(db *gorm.DB) error {
	for i := range catalog {
		where := map[string]interface{}{
			"name":      catalog[i].Name,
			"diet_type": catalog[i].DietType,
		}
		if err := upsert(db, &models.MealCatalogEntry{}, where, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}
