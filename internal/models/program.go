package models

import (
	"database/sql/driver"
	"encoding/json"
)

// ProgramTemplate is a reusable weekly workout blueprint keyed by
// (goal, level). At most one active program per pair; the scheduler
// breaks ties by lowest id.
type ProgramTemplate struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	Slug          string `gorm:"uniqueIndex;not null" json:"slug"`
	Name          string `gorm:"not null" json:"name"`
	Goal          string `gorm:"not null;index" json:"goal"`
	Level         string `gorm:"not null" json:"level"`
	DaysPerWeek   int    `gorm:"not null" json:"days_per_week"`
	DurationWeeks int    `gorm:"not null;default:4" json:"duration_weeks"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`
	Note          string `gorm:"type:text" json:"note"`

	Days []ProgramDayTemplate  `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"days,omitempty"`
	Week []ProgramWeekTemplate `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"week,omitempty"`
}

func (ProgramTemplate) TableName() string {
	return "program_templates"
}

// ExerciseSpec is one prescribed exercise within a training day.
type ExerciseSpec struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets,omitempty"`
	Reps  string `json:"reps,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ExerciseList is the ordered exercise prescription stored as JSON.
type ExerciseList []ExerciseSpec

func (l ExerciseList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *ExerciseList) Scan(value interface{}) error {
	if value == nil {
		*l = ExerciseList{}
		return nil
	}
	return scanJSON(value, l)
}

// ProgramDayTemplate is one training day of a program. Day numbers are
// sparse: rest days in the week template reference no day at all.
type ProgramDayTemplate struct {
	ID              uint         `gorm:"primarykey" json:"id"`
	ProgramID       uint         `gorm:"not null;uniqueIndex:uq_program_daynum" json:"program_id"`
	DayNumber       int          `gorm:"not null;uniqueIndex:uq_program_daynum" json:"day_number"`
	Name            string       `gorm:"not null" json:"name"`
	Focus           string       `json:"focus"`
	WarmupBlockID   *uint        `json:"warmup_block_id,omitempty"`
	CooldownBlockID *uint        `json:"cooldown_block_id,omitempty"`
	CoachNote       string       `gorm:"type:text" json:"coach_note"`
	Details         ExerciseList `gorm:"type:jsonb;not null;default:'[]'" json:"details"`
}

func (ProgramDayTemplate) TableName() string {
	return "program_day_templates"
}

// ProgramWeekTemplate maps one weekday (1=Mon..7=Sun) of a program to
// either a training day number or a rest marker.
type ProgramWeekTemplate struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProgramID uint   `gorm:"not null;uniqueIndex:uq_program_weekday" json:"program_id"`
	Weekday   int    `gorm:"not null;uniqueIndex:uq_program_weekday;check:weekday BETWEEN 1 AND 7" json:"weekday"`
	DayNumber *int   `json:"day_number,omitempty"`
	IsRest    bool   `gorm:"not null;default:false" json:"is_rest"`
	RestSlug  string `json:"rest_slug,omitempty"`
}

func (ProgramWeekTemplate) TableName() string {
	return "program_week_templates"
}

// BlockStep is one step of a warm-up, cool-down or rest block.
type BlockStep struct {
	Name    string `json:"name"`
	TimeSec int    `json:"time_sec,omitempty"`
	Reps    string `json:"reps,omitempty"`
	Side    string `json:"side,omitempty"`
}

// BlockContent is the structured step content of a block.
type BlockContent struct {
	Title string      `json:"title"`
	Steps []BlockStep `json:"steps"`
}

func (b BlockContent) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BlockContent) Scan(value interface{}) error {
	return scanJSON(value, b)
}

type WarmupBlock struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Slug        string       `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string       `gorm:"not null" json:"name"`
	DurationMin int          `json:"duration_min"`
	Content     BlockContent `gorm:"type:jsonb;not null" json:"content"`
}

func (WarmupBlock) TableName() string {
	return "warmup_blocks"
}

type CooldownBlock struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Slug        string       `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string       `gorm:"not null" json:"name"`
	DurationMin int          `json:"duration_min"`
	Content     BlockContent `gorm:"type:jsonb;not null" json:"content"`
}

func (CooldownBlock) TableName() string {
	return "cooldown_blocks"
}

type RestDayTemplate struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Slug        string       `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string       `gorm:"not null" json:"name"`
	DurationMin int          `json:"duration_min"`
	Content     BlockContent `gorm:"type:jsonb;not null" json:"content"`
}

func (RestDayTemplate) TableName() string {
	return "rest_day_templates"
}
