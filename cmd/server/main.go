package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/geokit/internal/config"
	"github.com/woozymasta/geokit/internal/logger"
	"github.com/woozymasta/geokit/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile    string   `short:"c" long:"config"         env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Addr          string   `short:"a" long:"addr"           env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	ErrorDistance *float64 `short:"e" long:"error-distance" env:"ERROR_DISTANCE" description:"Default zone tolerance in meters, overrides config"`
	Port          int      `short:"p" long:"port"           env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		opts.Logger.Setup()
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup Logging
	opts.Logger.Fallback(cfg.LogLevel)
	opts.Logger.Setup()

	if opts.ErrorDistance != nil {
		cfg.ErrorDistance = *opts.ErrorDistance
	}

	srvCtx := server.NewServerContext(cfg)
	handler := server.RequestLogger(srvCtx.Routes())

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("zones_loaded", len(srvCtx.Zones)).
		Float64("error_distance", cfg.ErrorDistance).
		Msg("Web server started")

	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
