package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fitweek/backend/internal/database"
	"github.com/fitweek/backend/internal/models"
	"github.com/fitweek/backend/internal/service"
	"github.com/fitweek/backend/internal/testhelpers"
)

// setupPostgres starts a throwaway postgres container and returns a GORM
// handle with the real schema applied. Skipped when Docker is not
// available.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("SKIP_DOCKER_TESTS") == "true" {
		t.Skip("SKIP_DOCKER_TESTS is set")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections"),
			wait.ForListeningPort("5432/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("could not start postgres container (is Docker running?): %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db, "../../migrations"))
	return db
}

func TestPlanFlowOnPostgres(t *testing.T) {
	db := setupPostgres(t)

	user := testhelpers.CreateTestUser(t, db, "muscle_gain")
	testhelpers.SeedStandardCatalog(t, db, "muscle_gain", "nonveg")
	testhelpers.SeedProgram(t, db, "muscle_gain_beginner", "muscle_gain", "beginner")

	svc := service.NewPlanService(db)
	ctx := context.Background()
	monday := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	plan, err := svc.GetOrBuildWeek(ctx, user.ID, monday)
	require.NoError(t, err)
	assert.Len(t, plan.WeekMeals, 7)
	assert.Len(t, plan.WeekWorkouts, 7)
	assert.Equal(t, "muscle_gain", plan.Goal)

	// The JSONB round trip preserves the meal slots.
	var reloaded models.WeeklyPlan
	require.NoError(t, db.First(&reloaded, "id = ?", plan.ID).Error)
	require.Len(t, reloaded.WeekMeals["mon"], 4)
	assert.Equal(t, "Breakfast", reloaded.WeekMeals["mon"][0].Label)

	// Concurrent generation for the same week collapses to one row.
	var wg sync.WaitGroup
	results := make([]*models.WeeklyPlan, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := svc.GetOrBuildWeek(ctx, user.ID, monday.AddDate(0, 0, i%5))
			if err == nil {
				results[i] = p
			}
		}(i)
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&models.WeeklyPlan{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	for _, p := range results {
		if p != nil {
			assert.Equal(t, plan.ID, p.ID)
		}
	}
}

func TestUniqueWeekConstraintOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	user := testhelpers.CreateTestUser(t, db, "muscle_gain")

	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	first := &models.WeeklyPlan{
		UserID:        user.ID,
		WeekStartDate: weekStart,
		WeekMeals:     models.WeekMeals{},
		WeekWorkouts:  models.WeekWorkouts{},
		GroceryList:   models.JSONBStringArray{},
		Goal:          "muscle_gain",
	}
	require.NoError(t, db.Create(first).Error)

	dup := &models.WeeklyPlan{
		UserID:        user.ID,
		WeekStartDate: weekStart,
		WeekMeals:     models.WeekMeals{},
		WeekWorkouts:  models.WeekWorkouts{},
		GroceryList:   models.JSONBStringArray{},
		Goal:          "muscle_gain",
	}
	err := db.Create(dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
