// Package main is the entry point for Gravenhold.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hollandm/gravenhold/internal/config"
	"github.com/hollandm/gravenhold/internal/dice"
	"github.com/hollandm/gravenhold/internal/game"
	"github.com/hollandm/gravenhold/internal/gamedata"
	"github.com/hollandm/gravenhold/internal/observability"
	"github.com/hollandm/gravenhold/internal/telemetry"
	"github.com/hollandm/gravenhold/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	noColor := flag.Bool("no-color", false, "disable ANSI color output")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_GRAVENHOLD_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without it", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting run", zap.Int64("seed", seed), zap.String("verbosity", cfg.Game.Verbosity))

	registries := game.Registries{
		Enemies:     gamedata.MustLoadEnemyRegistry(),
		Companions:  gamedata.MustLoadCompanionRegistry(),
		Weapons:     gamedata.MustLoadWeaponRegistry(),
		Consumables: gamedata.MustLoadConsumableRegistry(),
	}

	verbosity := game.ParseVerbosity(cfg.Game.Verbosity)
	console := ui.NewConsolePresenter(os.Stdin, os.Stdout, !*noColor, verbosity)

	run := game.NewRun(console, dice.NewSeededSource(seed), logger, registries, verbosity)
	outcome := run.Play(ctx)

	logger.Info("run complete", zap.String("outcome", outcome.String()))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_GRAVENHOLD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRAVENHOLD_DATASET")
	if dataset == "" {
		dataset = "gravenhold" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
