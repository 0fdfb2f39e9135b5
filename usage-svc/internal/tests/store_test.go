package tests

import (
	"context"
	"testing"
	"time"

	"cantina-feedback/usage-svc/internal/domain"
	"cantina-feedback/usage-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*storage.RedisUsageStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewRedisUsageStore(rdb), mr
}

func TestRedisUsageStore_RecordAndSummarize(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t)
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	events := []domain.SelectionEvent{
		{Type: domain.EventSelectView, View: "detail", Timestamp: day},
		{Type: domain.EventSelectCanteen, View: "detail", Canteen: "A", Timestamp: day},
		{Type: domain.EventSelectCanteen, View: "detail", Canteen: "B", Timestamp: day},
		{Type: domain.EventSelectCanteen, View: "detail", Canteen: "A", Timestamp: day},
		{Type: domain.EventSelectFilter, View: "detail", Filter: "Negative", Timestamp: day},
		{Type: domain.EventSelectView, View: "overview", Timestamp: day},
	}
	for _, e := range events {
		require.NoError(t, store.RecordSelection(ctx, e))
	}

	summary, err := store.Summary(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"detail": 5, "overview": 1}, summary.Views)
	assert.Equal(t, map[string]int64{"Negative": 1}, summary.Filters)
	assert.Equal(t, []domain.CanteenUsage{{Canteen: "A", Selections: 2}, {Canteen: "B", Selections: 1}}, summary.Canteens)

	daily, err := store.TopCanteensOn(ctx, "2024-05-01", 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.CanteenUsage{{Canteen: "A", Selections: 2}}, daily)

	assert.Equal(t, 7*24*time.Hour, mr.TTL(storage.DailyKey("2024-05-01")))
}

func TestRedisUsageStore_EmptySummary(t *testing.T) {
	store, _ := setupStore(t)

	summary, err := store.Summary(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Views)
	assert.Empty(t, summary.Filters)
	assert.Empty(t, summary.Canteens)
}
