package main

import "github.com/fitweek/backend/internal/models"

var programs = []programSeed{
	{
		slug:          "muscle_gain_beginner",
		name:          "Muscle Gain – Beginner (5 days + 2 rest)",
		goal:          "muscle_gain",
		level:         "beginner",
		daysPerWeek:   5,
		durationWeeks: 4,
		note:          "Pattern: train, train, rest, train, train, train, rest.",
		week:          trainRestWeek(),
		days: []daySeed{
			{1, "Legs A", "wu_lower", "cd_lower", "Control the negative.", models.ExerciseList{
				{Name: "Back Squat", Sets: 4, Reps: "8-10"},
				{Name: "Romanian Deadlift", Sets: 3, Reps: "10"},
				{Name: "Walking Lunge", Sets: 3, Reps: "12/leg"},
				{Name: "Leg Press", Sets: 3, Reps: "12"},
			}},
			{2, "Pull A", "wu_upper", "cd_upper", "Pull with elbows, not hands.", models.ExerciseList{
				{Name: "One-arm Row", Sets: 4, Reps: "10/side"},
				{Name: "Lat Pulldown", Sets: 4, Reps: "8-10"},
				{Name: "Face Pull", Sets: 3, Reps: "15"},
				{Name: "Curl", Sets: 3, Reps: "12-15"},
			}},
			{4, "Lower Vol", "wu_lower", "cd_lower", "Lighter weight, full range.", models.ExerciseList{
				{Name: "Front Squat", Sets: 3, Reps: "10-12"},
				{Name: "Hip Thrust", Sets: 3, Reps: "12"},
				{Name: "Leg Curl", Sets: 3, Reps: "15"},
				{Name: "Calf Raise", Sets: 4, Reps: "15"},
			}},
			{5, "Push A", "wu_upper", "cd_upper", "Last 2 reps slow and controlled.", models.ExerciseList{
				{Name: "DB Bench Press", Sets: 4, Reps: "8-10"},
				{Name: "Shoulder Press", Sets: 3, Reps: "10"},
				{Name: "Fly", Sets: 3, Reps: "12-15"},
				{Name: "Tricep Pushdown", Sets: 3, Reps: "12-15"},
			}},
			{6, "Core", "wu_core", "cd_core", "Brace, don't rush.", models.ExerciseList{
				{Name: "Plank", Sets: 3, Reps: "45 sec"},
				{Name: "Hanging Knee Raise", Sets: 3, Reps: "12"},
				{Name: "Cable Crunch", Sets: 3, Reps: "15"},
			}},
		},
	},
	{
		slug:          "fat_loss_beginner",
		name:          "Fat Loss – Beginner (5 days + 2 rest)",
		goal:          "fat_loss",
		level:         "beginner",
		daysPerWeek:   5,
		durationWeeks: 4,
		note:          "Pattern: train, train, rest, train, train, train, rest.",
		week:          trainRestWeek(),
		days: []daySeed{
			{1, "Full Body A (Strength + Cardio Finisher)", "wu_lower", "cd_lower", "Keep rest short.", models.ExerciseList{
				{Name: "Goblet Squat", Sets: 3, Reps: "12"},
				{Name: "Push-up", Sets: 3, Reps: "10-15"},
				{Name: "DB Row", Sets: 3, Reps: "12/side"},
				{Name: "Bike Sprints", Sets: 5, Reps: "30 sec"},
			}},
			{2, "Upper (Push + Pull) + Finisher", "wu_upper", "cd_upper", "Move between exercises briskly.", models.ExerciseList{
				{Name: "Incline DB Press", Sets: 3, Reps: "12"},
				{Name: "Lat Pulldown", Sets: 3, Reps: "12"},
				{Name: "Lateral Raise", Sets: 3, Reps: "15"},
				{Name: "Battle Ropes", Sets: 4, Reps: "20 sec"},
			}},
			{4, "Lower + Core (Fat-Loss)", "wu_lower", "cd_lower", "Quality reps over load.", models.ExerciseList{
				{Name: "Leg Press", Sets: 3, Reps: "15"},
				{Name: "Romanian Deadlift", Sets: 3, Reps: "12"},
				{Name: "Plank", Sets: 3, Reps: "45 sec"},
				{Name: "Stair Climber", Sets: 1, Reps: "10 min"},
			}},
			{5, "Conditioning + Mobility (Active Fat Burn)", "wu_upper", "cd_upper", "Steady pace, nasal breathing.", models.ExerciseList{
				{Name: "Rowing Machine", Sets: 1, Reps: "15 min"},
				{Name: "KB Swing", Sets: 4, Reps: "15"},
				{Name: "Hip Mobility Flow", Sets: 1, Reps: "10 min"},
			}},
			{6, "Light Core & Recovery (Active Fat Burn)", "wu_core", "cd_core", "Easy effort today.", models.ExerciseList{
				{Name: "Dead Bug", Sets: 3, Reps: "10/side"},
				{Name: "Bird-dog", Sets: 3, Reps: "10/side"},
				{Name: "Incline Walk", Sets: 1, Reps: "20 min"},
			}},
		},
	},
}
