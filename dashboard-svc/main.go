package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"cantina-feedback/config"
	httpapi "cantina-feedback/dashboard-svc/internal/api/http"
	"cantina-feedback/dashboard-svc/internal/dataset"
	"cantina-feedback/dashboard-svc/internal/metrics"
	"cantina-feedback/dashboard-svc/internal/service"
	"cantina-feedback/dashboard-svc/internal/storage"
	"cantina-feedback/logger"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.ValidateDashboard()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init("dashboard-svc", cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	log := logger.Get()

	var db *sql.DB
	if cfg.DatasetSource == config.SourcePostgres {
		db = config.MustInitPostgres(cfg)
		defer db.Close()
	}

	source, err := newSource(cfg, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to select dataset source")
	}

	data, err := dataset.NewLoader(source).Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.DatasetSource).Msg("failed to load datasets")
	}
	log.Info().
		Int("canteens", len(data.Averages)).
		Int("comments", len(data.Comments)).
		Str("source", cfg.DatasetSource).
		Msg("datasets loaded")

	var store service.StateStore = storage.NewMemoryStore()
	if cfg.RedisEnabled() {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		store = storage.NewRedisStore(rdb, cfg.SessionTTL)
	}

	var publisher service.SelectionPublisher
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	handler := newApp(cfg, service.NewAggregator(data), store, publisher)

	if err := httpapi.StartServer(cfg.Addr(), handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func newSource(cfg *config.Config, db *sql.DB) (dataset.Source, error) {
	switch cfg.DatasetSource {
	case config.SourceEmbedded:
		return dataset.Embedded(), nil
	case config.SourceDir:
		return dataset.Dir(cfg.DatasetDir), nil
	case config.SourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("dataset source %s needs a database", cfg.DatasetSource)
		}
		return storage.NewPostgresSource(db), nil
	}
	return nil, fmt.Errorf("unknown dataset source %q", cfg.DatasetSource)
}

func newApp(cfg *config.Config, agg *service.Aggregator, store service.StateStore, publisher service.SelectionPublisher) http.Handler {
	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)

	share := service.DefaultShareCodeGenerator{BaseURL: cfg.PublicBaseURL}
	dashboard := service.NewDashboardService(agg, store, publisher, share).
		WithRecorder(metrics.NewTransitions(reg))

	h := httpapi.NewHandler(dashboard, metrics.Handler(reg))
	return httpapi.NewRouter(h, httpMetrics.Middleware())
}
