package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"listenote/config"
	_ "listenote/docs" // Swagger docs
	"listenote/internal/httpserver"
	"listenote/internal/player"
	"listenote/internal/store"
	"listenote/pkg/log"
	"listenote/pkg/mediameta"
)

// @title       Listenote API
// @description Audio annotation service: import audio, attach timestamped memos, reorder them as a to-do list and review them one at a time.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Listenote...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Store
	st, err := store.New(cfg.Database.Path, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open store: %v", err)
		return
	}

	// 4. Metadata resolver
	resolver, err := mediameta.NewResolver(mediameta.PathProber{}, cfg.Media.CacheSize, cfg.Media.ProbeTimeout, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build metadata resolver: %v", err)
		return
	}

	// 5. Playback tracker over a headless clock device
	device := player.NewClockDevice(func(locator string) int64 {
		src, srcErr := st.AudioSourceByURI(ctx, locator)
		if srcErr != nil {
			return resolver.Resolve(ctx, locator).DurationMs
		}
		return src.DurationMs
	})
	tracker := player.New(device, player.Config{
		PollInterval:  cfg.Player.PollInterval,
		SeekIncrement: cfg.Player.SeekIncrement,
	}, logger)
	defer tracker.Close()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Store:       st,
		Resolver:    resolver,
		Tracker:     tracker,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
