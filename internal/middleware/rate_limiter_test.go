package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateStore_WindowResets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := NewMemoryRateStore(ctx)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	n, end, err := store.Hit(ctx, "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, now.Add(time.Minute), end)

	n, _, _ = store.Hit(ctx, "10.0.0.1", time.Minute)
	assert.Equal(t, int64(2), n)
	n, _, _ = store.Hit(ctx, "10.0.0.2", time.Minute)
	assert.Equal(t, int64(1), n)

	now = now.Add(61 * time.Second)
	n, _, _ = store.Hit(ctx, "10.0.0.1", time.Minute)
	assert.Equal(t, int64(1), n)
}

func TestMemoryRateStore_Purge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := NewMemoryRateStore(ctx)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	_, _, _ = store.Hit(ctx, "a", time.Minute)
	_, _, _ = store.Hit(ctx, "b", time.Hour)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, store.purge())
	assert.Len(t, store.entries, 1)
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, assert.AnError
}

func TestRateLimiter_StoreFailureLetsRequestThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(failingStore{}, 1, time.Minute))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
