package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cantina-feedback/logger"
	"cantina-feedback/usage-svc/internal/domain"
)

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  UsageStore
	// RetryDelay is the pause after a failed read.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store UsageStore) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultRetryDelay,
	}
}

// Start reads selection events until ctx is cancelled. Bad messages are logged
// and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log := logger.Get()
	log.Info().Msg("starting usage consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info().Msg("usage consumer stopped")
				return
			}
			log.Error().Err(err).Dur("retry_in", c.RetryDelay).Msg("error reading message")
			if !sleep(ctx, c.RetryDelay) {
				log.Info().Msg("usage consumer stopped")
				return
			}
			continue
		}

		var event domain.SelectionEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Warn().Err(err).Str("key", string(message.Key)).Msg("error unmarshaling message")
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.SelectionEvent) {
	switch event.Type {
	case domain.EventSelectView, domain.EventSelectCanteen, domain.EventSelectFilter:
	default:
		logger.Get().Debug().Str("type", event.Type).Msg("ignoring event")
		return
	}

	if err := c.Store.RecordSelection(ctx, event); err != nil {
		logger.Get().Error().Err(err).Str("session_id", event.SessionID).Msg("error recording selection")
		return
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
