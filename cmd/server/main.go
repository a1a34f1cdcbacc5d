package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"navmenu/internal/cache"
	"navmenu/internal/cms"
	"navmenu/internal/config"
	"navmenu/internal/jobs"
	"navmenu/internal/menu"
	"navmenu/internal/metrics"
	"navmenu/internal/server"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: cfg.SlogLevel() <= slog.LevelDebug,
	})).With("module", "navmenu"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tables, err := config.LoadLookupTables(cfg.LookupFile)
	if err != nil {
		log.Fatalf("Failed to load lookup tables: %v", err)
	}

	client, err := cms.NewClient(cms.Options{
		BaseURL: cfg.CMSBaseURL,
		Token:   cfg.CMSToken,
		Timeout: cfg.CMSTimeout,
		LogCurl: cfg.CMSLogCurl,
	})
	if err != nil {
		log.Fatalf("Failed to create CMS client: %v", err)
	}
	defer client.Close()

	// Cache store: Redis when configured, otherwise in-process
	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store = redisStore
		slog.Info("using redis cache store")
	} else {
		store = cache.NewMemoryStore(nil)
		slog.Info("using in-memory cache store")
	}
	defer store.Close()

	metrics.Init()

	pipeline := menu.NewPipeline(client, tables)
	menus := cache.NewMenuCache(store, cfg.CacheTTL, pipeline.Load)

	refresher := jobs.NewRefresher(menus, cfg.RefreshInterval, nil, cfg.RefreshOnStart)
	go refresher.Start(ctx)

	srv := server.New(cfg)
	srv.RegisterRoutes(menus)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server exited")
}
