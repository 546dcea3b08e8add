package main

import (
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
)

func seedBlocks(db *gorm.DB) error {
	warmups := []models.WarmupBlock{
		{
			Slug:        "wu_lower",
			Name:        "Lower Body Warm-up",
			DurationMin: 8,
			Content: models.BlockContent{
				Title: "Lower Body Warm-up (≈8 min)",
				Steps: []models.BlockStep{
					{Name: "Treadmill walk or easy bike", TimeSec: 180},
					{Name: "Bodyweight squats", Reps: "15"},
					{Name: "Leg swings (front/side)", Reps: "10/leg"},
					{Name: "Hip circles + ankle rolls", TimeSec: 60},
				},
			},
		},
		{
			Slug:        "wu_upper",
			Name:        "Upper Body Warm-up",
			DurationMin: 8,
			Content: models.BlockContent{
				Title: "Upper Body Warm-up (≈8 min)",
				Steps: []models.BlockStep{
					{Name: "Arm circles (fwd/back)", Reps: "20 each"},
					{Name: "Band pull-aparts", Reps: "15"},
					{Name: "Push-ups or incline push-ups", Reps: "10"},
					{Name: "Light cable row", Reps: "15"},
				},
			},
		},
		{
			Slug:        "wu_core",
			Name:        "Core Warm-up",
			DurationMin: 6,
			Content: models.BlockContent{
				Title: "Core Warm-up (≈6 min)",
				Steps: []models.BlockStep{
					{Name: "Cat–Cow", Reps: "10"},
					{Name: "Bird-dog", Reps: "10/side"},
					{Name: "Dead bug", Reps: "10/side"},
				},
			},
		},
	}
	for i := range warmups {
		if err := upsert(db, &models.WarmupBlock{}, map[string]interface{}{"slug": warmups[i].Slug}, &warmups[i]); err != nil {
			return err
		}
	}

	cooldowns := []models.CooldownBlock{
		{
			Slug:        "cd_lower",
			Name:        "Lower Body Cool-down",
			DurationMin: 6,
			Content: models.BlockContent{
				Title: "Lower Body Cool-down (5–6 min)",
				Steps: []models.BlockStep{
					{Name: "Easy walk/bike", TimeSec: 120},
					{Name: "Quad stretch", TimeSec: 30, Side: "each"},
					{Name: "Hamstring stretch", TimeSec: 30, Side: "each"},
					{Name: "Seated/lying glute stretch", TimeSec: 30, Side: "each"},
					{Name: "Breathing (box 4–4–4–4)", TimeSec: 60},
				},
			},
		},
		{
			Slug:        "cd_upper",
			Name:        "Upper Body Cool-down",
			DurationMin: 6,
			Content: models.BlockContent{
				Title: "Upper Body Cool-down (5–6 min)",
				Steps: []models.BlockStep{
					{Name: "Doorway chest stretch", TimeSec: 30},
					{Name: "Lat stretch (bar/pole)", TimeSec: 30, Side: "each"},
					{Name: "Triceps stretch", TimeSec: 30, Side: "each"},
					{Name: "Neck rolls + deep breathing", TimeSec: 60},
				},
			},
		},
		{
			Slug:        "cd_core",
			Name:        "Core Cool-down",
			DurationMin: 6,
			Content: models.BlockContent{
				Title: "Core Cool-down (5–6 min)",
				Steps: []models.BlockStep{
					{Name: "Child's Pose", TimeSec: 30},
					{Name: "Cobra stretch", TimeSec: 30},
					{Name: "Supine twist", TimeSec: 30, Side: "each"},
					{Name: "Box breathing", TimeSec: 60},
				},
			},
		},
	}
	for i := range cooldowns {
		if err := upsert(db, &models.CooldownBlock{}, map[string]interface{}{"slug": cooldowns[i].Slug}, &cooldowns[i]); err != nil {
			return err
		}
	}

	rest := models.RestDayTemplate{
		Slug:        "rest_active_recovery",
		Name:        "Active Recovery Day",
		DurationMin: 30,
		Content: models.BlockContent{
			Title: "Active Recovery (≈30 min)",
			Steps: []models.BlockStep{
				{Name: "Brisk walk or easy bike", TimeSec: 1200},
				{Name: "Foam roll or light yoga", TimeSec: 600},
			},
		},
	}
	return upsert(db, &models.RestDayTemplate{}, map[string]interface{}{"slug": rest.Slug}, &rest)
}
