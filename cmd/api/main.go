package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ledcor/ledcor/pkg/api"
	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/db"
	"github.com/ledcor/ledcor/pkg/protocol"
	"github.com/ledcor/ledcor/pkg/schema"
	"github.com/ledcor/ledcor/pkg/transport"

	_ "github.com/ledcor/ledcor/docs"
)

// @title           Ledcor API
// @version         1.0
// @description     REST API for controlling addressable LED devices

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/ledcor/ledcor.db)")
	serialPort := flag.String("serial", "", "Serial port override (default: from active profile)")
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

	log.Info().
		Str("profile", cfg.Profile.Name).
		Bool("use_checksum", cfg.UseChecksum()).
		Str("api_address", cfg.APIAddress()).
		Int("devices", len(cfg.Devices)).
		Msg("Configuration loaded")

	// Build the controller from the device inventory
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

	// Attach the serial transport when one is configured
	portPath := *serialPort
	if portPath == "" {
		portPath = cfg.SerialPort()
	}
	if portPath != "" {
		port, err := transport.OpenSerial(portPath)
		if err != nil {
			log.Warn().Err(err).Str("port", portPath).Msg("Serial port unavailable, HTTP only")
		} else {
			defer func() { _ = port.Close() }()

			reader := transport.NewFrameReader(port)
			reader.Start()
			defer reader.Close()

			go func() {
				for frame := range reader.Frames() {
					for _, resp := range ctrl.Process(frame) {
						if _, err := port.Write([]byte(resp)); err != nil {
							log.Error().Err(err).Msg("Failed to write serial response")
						}
					}
				}
			}()

			log.Info().Str("port", portPath).Msg("Serial transport attached")
		}
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

	// Create and start API router
	router := api.NewRouter(ctrl, validator)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	// Start server
	addr := cfg.APIAddress()
	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
