package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cantina-feedback/config"
	"cantina-feedback/logger"
	httpapi "cantina-feedback/usage-svc/internal/api/http"
	"cantina-feedback/usage-svc/internal/service"
	"cantina-feedback/usage-svc/internal/storage"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.ValidateUsage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init("usage-svc", cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	log := logger.Get()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	store := storage.NewRedisUsageStore(rdb)
	srv := &http.Server{
		Addr:    cfg.UsageAddr(),
		Handler: httpapi.NewRouter(httpapi.NewHandler(store)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		service.NewConsumer(reader, store).Start(ctx)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Usage Service starting")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("usage service stopped with error")
	}
}
