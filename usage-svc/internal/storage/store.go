package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cantina-feedback/usage-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	viewsKey    = "dashboard:usage:views"
	filtersKey  = "dashboard:usage:filters"
	canteensKey = "dashboard:usage:canteens"
	dailyTTL    = 7 * 24 * time.Hour
)

func DailyKey(day string) string {
	return fmt.Sprintf("dashboard:usage:daily:%s", day)
}

type RedisUsageStore struct {
	rdb *redis.Client
}

func NewRedisUsageStore(rdb *redis.Client) *RedisUsageStore {
	return &RedisUsageStore{rdb: rdb}
}

// RecordSelection counts the view a viewer landed on for every event, the
// filter for filter events, and the canteen for canteen events, both all-time
// and per day.
func (s *RedisUsageStore) RecordSelection(ctx context.Context, event domain.SelectionEvent) error {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, viewsKey, event.View, 1)
	switch event.Type {
	case domain.EventSelectFilter:
		pipe.HIncrBy(ctx, filtersKey, event.Filter, 1)
	case domain.EventSelectCanteen:
		if event.Canteen != "" {
			dailyKey := DailyKey(ts.UTC().Format("2006-01-02"))
			pipe.ZIncrBy(ctx, canteensKey, 1, event.Canteen)
			pipe.ZIncrBy(ctx, dailyKey, 1, event.Canteen)
			pipe.Expire(ctx, dailyKey, dailyTTL)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisUsageStore) Summary(ctx context.Context, limit int64) (domain.UsageSummary, error) {
	views, err := s.counts(ctx, viewsKey)
	if err != nil {
		return domain.UsageSummary{}, err
	}
	filters, err := s.counts(ctx, filtersKey)
	if err != nil {
		return domain.UsageSummary{}, err
	}
	canteens, err := s.top(ctx, canteensKey, limit)
	if err != nil {
		return domain.UsageSummary{}, err
	}
	return domain.UsageSummary{Views: views, Filters: filters, Canteens: canteens}, nil
}

func (s *RedisUsageStore) TopCanteensOn(ctx context.Context, day string, limit int64) ([]domain.CanteenUsage, error) {
	return s.top(ctx, DailyKey(day), limit)
}

func (s *RedisUsageStore) counts(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %s/%s: %w", key, k, err)
		}
		out[k] = n
	}
	return out, nil
}

func (s *RedisUsageStore) top(ctx context.Context, key string, limit int64) ([]domain.CanteenUsage, error) {
	if limit <= 0 {
		limit = 10
	}
	members, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.CanteenUsage, 0, len(members))
	for _, m := range members {
		name, _ := m.Member.(string)
		out = append(out, domain.CanteenUsage{Canteen: name, Selections: m.Score})
	}
	return out, nil
}
