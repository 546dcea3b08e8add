package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRunMigrationsSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, ""))

	for _, table := range []string{
		"users", "user_profiles", "meal_catalog",
		"program_templates", "program_day_templates", "program_week_templates",
		"warmup_blocks", "cooldown_blocks", "rest_day_templates",
		"weekly_plans",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}
