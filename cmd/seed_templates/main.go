package main

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedBlocks(db); err != nil {
		log.Fatalf("Failed to seed blocks: %v", err)
	}
	for _, prog := range programs {
		if err := seedProgram(db, prog); err != nil {
			log.Fatalf("Failed to seed program %s: %v", prog.slug, err)
		}
	}
	if err := seedMealCatalog(db); err != nil {
		log.Fatalf("Failed to seed meal catalog: %v", err)
	}

	log.Println("Seeded: warm-ups, cool-downs, rest day, programs and meal catalog.")
}

type daySeed struct {
	number    int
	name      string
	warmup    string
	cooldown  string
	coachNote string
	details   models.ExerciseList
}

type weekSeed struct {
	weekday  int
	day      *int
	isRest   bool
	restSlug string
}

type programSeed struct {
	slug          string
	name          string
	goal          string
	level         string
	daysPerWeek   int
	durationWeeks int
	note          string
	days          []daySeed
	week          []weekSeed
}

// trainRestWeek is the shared 5+2 pattern: rest on Wednesday and Sunday.
func trainRestWeek() []weekSeed {
	return []weekSeed{
		{1, intPtr(1), false, ""},
		{2, intPtr(2), false, ""},
		{3, nil, true, "rest_active_recovery"},
		{4, intPtr(4), false, ""},
		{5, intPtr(5), false, ""},
		{6, intPtr(6), false, ""},
		{7, nil, true, "rest_active_recovery"},
	}
}

func intPtr(i int) *int { return &i }

func seedProgram(db *gorm.DB, seed programSeed) error {
	prog := models.ProgramTemplate{
		Slug:          seed.slug,
		Name:          seed.name,
		Goal:          seed.goal,
		Level:         seed.level,
		DaysPerWeek:   seed.daysPerWeek,
		DurationWeeks: seed.durationWeeks,
		IsActive:      true,
		Note:          seed.note,
	}
	if err := upsert(db, &models.ProgramTemplate{}, map[string]interface{}{"slug": seed.slug}, &prog); err != nil {
		return err
	}

	var saved models.ProgramTemplate
	if err := db.Where("slug = ?", seed.slug).First(&saved).Error; err != nil {
		return err
	}

	for _, d := range seed.days {
		day := models.ProgramDayTemplate{
			ProgramID:       saved.ID,
			DayNumber:       d.number,
			Name:            d.name,
			CoachNote:       d.coachNote,
			Details:         d.details,
			WarmupBlockID:   warmupID(db, d.warmup),
			CooldownBlockID: cooldownID(db, d.cooldown),
		}
		where := map[string]interface{}{"program_id": saved.ID, "day_number": d.number}
		if err := upsert(db, &models.ProgramDayTemplate{}, where, &day); err != nil {
			return err
		}
	}

	for _, w := range seed.week {
		row := models.ProgramWeekTemplate{
			ProgramID: saved.ID,
			Weekday:   w.weekday,
			DayNumber: w.day,
			IsRest:    w.isRest,
			RestSlug:  w.restSlug,
		}
		where := map[string]interface{}{"program_id": saved.ID, "weekday": w.weekday}
		if err := upsert(db, &models.ProgramWeekTemplate{}, where, &row); err != nil {
			return err
		}
	}
	return nil
}

// upsert updates the row matching where, creating it when absent.
func upsert(db *gorm.DB, model interface{}, where map[string]interface{}, value interface{}) error {
	var count int64
	if err := db.Model(model).Where(where).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return db.Model(model).Where(where).Updates(value).Error
	}
	return db.Create(value).Error
}

func warmupID(db *gorm.DB, slug string) *uint {
	if slug == "" {
		return nil
	}
	var block models.WarmupBlock
	if err := db.Where("slug = ?", slug).First(&block).Error; err != nil {
		return nil
	}
	return &block.ID
}

func cooldownID(db *gorm.DB, slug string) *uint {
	if slug == "" {
		return nil
	}
	var block models.CooldownBlock
	if err := db.Where("slug = ?", slug).First(&block).Error; err != nil {
		return nil
	}
	return &block.ID
}
