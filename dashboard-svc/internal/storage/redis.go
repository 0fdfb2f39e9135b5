package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cantina-feedback/dashboard-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "dashboard:session:"
	maxUpdateRetries = 10
)

type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (domain.ViewState, error) {
	return decodeSession(sessionID, s.Client.Get(ctx, SessionKey(sessionID)))
}

func decodeSession(sessionID string, cmd *redis.StringCmd) (domain.ViewState, error) {
	raw, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ViewState{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.ViewState{}, fmt.Errorf("redis get session: %w", err)
	}

	var state domain.ViewState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.ViewState{}, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return state, nil
}

// Save refreshes the TTL on every write, so active sessions do not expire.
func (s *RedisStore) Save(ctx context.Context, sessionID string, state domain.ViewState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, SessionKey(sessionID), payload, s.TTL).Err()
}

// Update runs fn inside WATCH/MULTI and retries when another writer touched the
// session in between.
func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(domain.ViewState) (domain.ViewState, error)) (domain.ViewState, error) {
	key := SessionKey(sessionID)
	var next domain.ViewState

	txf := func(tx *redis.Tx) error {
		state, err := decodeSession(sessionID, tx.Get(ctx, key))
		if err != nil {
			return err
		}
		next, err = fn(state)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.TTL)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.Client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return domain.ViewState{}, err
		}
		return next, nil
	}
	return domain.ViewState{}, fmt.Errorf("update session %s: %w", sessionID, redis.TxFailedErr)
}
