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

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/marinfc/tournament-directory/internal/api"
	"github.com/marinfc/tournament-directory/internal/config"
	"github.com/marinfc/tournament-directory/internal/directory"
	"github.com/marinfc/tournament-directory/internal/logger"
	"github.com/marinfc/tournament-directory/internal/review"
	"github.com/marinfc/tournament-directory/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Error("server exited", nil, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(logger.Level(cfg.LogLevel), os.Stderr))

	client, err := connectRedis(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer client.Close()

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	reviews := review.NewHandler(review.NewService(review.NewRedisStore(client)))
	catalog := directory.NewHandler(store)

	srv := api.NewServer(api.Options{
		Port:      cfg.Port,
		Reviews:   reviews.Routes(),
		Directory: catalog.Routes(),
		HealthCheck: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	})

	// Shut down cleanly on SIGINT/SIGTERM, draining in-flight requests.
	done := make(chan error, 1)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		logger.Info("shutting down", nil)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(ctx)
	}()

	logger.Info("server listening", logger.Fields{
		"port":     cfg.Port,
		"data_dir": cfg.DataDir,
	})

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}

// connectRedis dials the review store, retrying the initial ping with
// exponential backoff so the server survives a store that is still
// starting up alongside it.
func connectRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	}
	notify := func(err error, next time.Duration) {
		logger.Warn("redis not ready, retrying", logger.Fields{
			"error":   err.Error(),
			"next_in": next.String(),
		})
	}

	if err := backoff.RetryNotify(ping, bo, notify); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
