package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cantina-feedback/dashboard-svc/internal/domain"
)

// PostgresSource serves the dataset documents from the feedback_datasets
// table, one JSONB payload per document name.
type PostgresSource struct {
	DB *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

func (s *PostgresSource) Read(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.DB.QueryRowContext(ctx, `
		SELECT payload FROM feedback_datasets
		WHERE name = $1
	`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: document %s not found", domain.ErrMalformedDataset, name)
	}
	if err != nil {
		return nil, fmt.Errorf("query document %s: %w", name, err)
	}
	return payload, nil
}
