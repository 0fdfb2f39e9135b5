package service

import (
	"context"

	"cantina-feedback/usage-svc/internal/domain"
	"cantina-feedback/usage-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type UsageStore interface {
	RecordSelection(ctx context.Context, event domain.SelectionEvent) error
	Summary(ctx context.Context, limit int64) (domain.UsageSummary, error)
	TopCanteensOn(ctx context.Context, day string, limit int64) ([]domain.CanteenUsage, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var _ UsageStore = (*storage.RedisUsageStore)(nil)
