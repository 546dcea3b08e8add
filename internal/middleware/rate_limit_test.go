package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiter(t *testing.T, limit int) *RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, RateLimitConfig{
		Window:    time.Hour,
		Limit:     limit,
		KeyPrefix: "rate_limit:test",
	})
}

func TestIsAllowedCountsDown(t *testing.T) {
	rl := setupLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, remaining, _, err := rl.IsAllowed(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, remaining, _, err := rl.IsAllowed(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// Other users have their own window.
	allowed, _, _, err = rl.IsAllowed(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestGetRemainingRequestsUntouchedUser(t *testing.T) {
	rl := setupLimiter(t, 5)
	remaining, _, err := rl.GetRemainingRequests(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := setupLimiter(t, 1)
	userID := uuid.New()

	router := gin.New()
	router.POST("/generate", func(c *gin.Context) {
		c.Set("user_id", userID)
	}, rl.RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/generate", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/generate", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitMiddlewareUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := setupLimiter(t, 1)

	router := gin.New()
	router.POST("/generate", rl.RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/generate", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
