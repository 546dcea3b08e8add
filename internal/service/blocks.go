package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
)

// TodayBlocks is the warm-up/cool-down/rest resolution for one calendar
// day of a program. All fields stay zero when the program or its week
// row cannot be found; this read path must tolerate slugs no plan was
// ever generated for.
type TodayBlocks struct {
	IsRest   bool                 `json:"is_rest"`
	Title    *string              `json:"title"`
	Focus    *string              `json:"focus"`
	Warmup   *models.BlockContent `json:"warmup"`
	Cooldown *models.BlockContent `json:"cooldown"`
	Rest     *models.BlockContent `json:"rest"`
}

// restDayTitle is the fixed title returned for rest days.
const restDayTitle = "Rest / Active Recovery"

// BlockService resolves a single day's block content independently of
// full-week plan assembly.
type BlockService struct {
	db *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{db: db}
}

// GetTodayBlocks resolves the program's week-template row for the ISO
// weekday of onDate and returns the referenced block content.
func (s *BlockService) GetTodayBlocks(ctx context.Context, programSlug string, onDate time.Time) (*TodayBlocks, error) {
	empty := &TodayBlocks{}

	weekday := isoWeekday(onDate)

	var prog models.ProgramTemplate
	err := s.db.WithContext(ctx).Where("slug = ?", programSlug).First(&prog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, err
	}

	var row models.ProgramWeekTemplate
	err = s.db.WithContext(ctx).
		Where("program_id = ? AND weekday = ?", prog.ID, weekday).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, err
	}

	if row.IsRest {
		out := &TodayBlocks{IsRest: true, Title: strPtr(restDayTitle)}
		var rest models.RestDayTemplate
		err := s.db.WithContext(ctx).Where("slug = ?", row.RestSlug).First(&rest).Error
		if err == nil {
			out.Rest = &rest.Content
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return out, nil
	}

	if row.DayNumber == nil {
		return empty, nil
	}

	var day models.ProgramDayTemplate
	err = s.db.WithContext(ctx).
		Where("program_id = ? AND day_number = ?", prog.ID, *row.DayNumber).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, err
	}

	out := &TodayBlocks{Title: strPtr(day.Name), Focus: strPtr(day.Focus)}

	if day.WarmupBlockID != nil {
		var wu models.WarmupBlock
		if err := s.db.WithContext(ctx).First(&wu, *day.WarmupBlockID).Error; err == nil {
			out.Warmup = &wu.Content
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if day.CooldownBlockID != nil {
		var cd models.CooldownBlock
		if err := s.db.WithContext(ctx).First(&cd, *day.CooldownBlockID).Error; err == nil {
			out.Cooldown = &cd.Content
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return out, nil
}

// isoWeekday returns 1 for Monday through 7 for Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func strPtr(s string) *string {
	return &s
}
