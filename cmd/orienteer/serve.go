package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/orienteer/api"
	"github.com/katalvlaran/orienteer/api/tourapi"
	"github.com/katalvlaran/orienteer/cache"
	"github.com/katalvlaran/orienteer/config"
	"github.com/katalvlaran/orienteer/service"
)

// runServer wires config, caches, service and router, then serves until failure.
func runServer(logger *log.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, closeStore, err := newStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	tours, err := service.NewTours(service.Config{
		Store:        store,
		Heuristic:    cfg.Heuristic,
		Workers:      cfg.Workers,
		MaxLandmarks: cfg.MaxLandmarks,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Config{
		Addr:        cfg.HTTPAddr,
		BaseURL:     cfg.BaseURL,
		Controllers: []api.Controller{tourapi.NewController(tours, logger)},
	})
	logger.Printf("[APP] [INFO] listening on %s%s/v1", cfg.HTTPAddr, cfg.BaseURL)

	return router.Run()
}

// newStore builds the memory and Redis caches the config enables. The
// returned store is nil when both are disabled.
func newStore(cfg config.Config, logger *log.Logger) (cache.Store, func(), error) {
	var (
		stores  []cache.Store
		cleanup = func() {}
	)

	if cfg.CacheSize > 0 {
		mem, err := cache.NewMemory(cfg.CacheSize)
		if err != nil {
			return nil, nil, err
		}
		stores = append(stores, mem)
		logger.Printf("[APP] [INFO] memory cache: %d entries", cfg.CacheSize)
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		stores = append(stores, cache.NewRedis(client, cfg.CacheTTL, ""))
		cleanup = func() { _ = client.Close() }
		logger.Printf("[APP] [INFO] redis cache: %s (ttl %s)", cfg.RedisAddr, cfg.CacheTTL)
	}

	if len(stores) == 0 {
		return nil, cleanup, nil
	}
	store, err := cache.Chain(stores...)
	if err != nil {
		return nil, nil, err
	}

	return store, cleanup, nil
}
