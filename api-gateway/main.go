package main

import (
	"fmt"
	"net/http"
	"os"

	"cantina-feedback/api-gateway/internal/gateway"
	"cantina-feedback/logger"

	"github.com/rs/cors"
)

func main() {
	config, err := gateway.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init("api-gateway", config.LogLevel, config.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	log := logger.Get()

	gw := gateway.NewGateway(config, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	log.Info().Str("port", config.Port).Str("dashboard", config.DashboardSvcURL).Msg("API Gateway starting")
	if err := http.ListenAndServe(":"+config.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
