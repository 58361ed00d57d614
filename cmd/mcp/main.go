package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/db"
	ledcormcp "github.com/ledcor/ledcor/pkg/mcp"
	"github.com/ledcor/ledcor/pkg/protocol"
	"github.com/ledcor/ledcor/pkg/schema"
)

func main() {
	// Logging must go to stderr; stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/ledcor/ledcor.db)")
	updateMs := flag.Int("update-interval", 33, "Animation update interval in milliseconds")
	flag.Parse()

	ctx := context.Background()

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Run migrations
	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Bootstrap if needed (first run)
	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
		log.Info().Msg("Database bootstrapped successfully")
	}

	// Load configuration
	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	deviceConfigs := make([]controller.DeviceConfig, 0, len(cfg.Devices))
	for _, d := range cfg.Devices {
		deviceConfigs = append(deviceConfigs, controller.DeviceConfig{
			Name:        d.Name,
			LEDCount:    d.LEDCount,
			LightType:   d.LightType,
			ProductType: d.ProductType,
			Speed:       d.Speed,
			IdleTimeout: time.Duration(d.IdleTimeoutMinutes) * time.Minute,
		})
	}

	codec := protocol.Codec{UseChecksum: cfg.UseChecksum()}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctrl, err := controller.New(deviceConfigs, controller.NewNullDriver(), codec, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create controller")
	}

	// Animation tick loop
	ticker := time.NewTicker(time.Duration(*updateMs) * time.Millisecond)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			ctrl.Tick()
		}
	}()

	validator := schema.NewValidator()

	// Create and start MCP server
	mcpServer := ledcormcp.NewServer(ctrl, validator)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
