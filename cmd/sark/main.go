package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/sark/app"
	"github.com/dmitrymomot/sark/core/config"
	"github.com/dmitrymomot/sark/core/logger"
	"github.com/dmitrymomot/sark/core/response"
	"github.com/dmitrymomot/sark/core/server"
	"github.com/dmitrymomot/sark/integration/database/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	logOpts := []logger.Option{logger.WithDevelopment(cfg.AppName)}
	if cfg.Env == "production" {
		logOpts = []logger.Option{logger.WithProduction(cfg.AppName), logger.WithLevel(logger.ParseLevel(cfg.LogLevel))}
	}
	log := logger.New(logOpts...)

	state := &State{Message: cfg.Message, Visits: &memoryCounter{}}
	var checks []func(context.Context) error

	if cfg.RedisEnabled {
		// Connect retries and pings before returning
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("Failed to connect to redis", logger.Component("redis"), logger.Error(err))
			os.Exit(1)
		}
		defer rdb.Close()

		state.Visits = &redisCounter{client: rdb, key: visitsKey}
		checks = append(checks, redis.Healthcheck(rdb))
	}

	a := app.New(newRouter(log, checks...), state)

	handlerOpts := []server.HandlerOption{
		server.WithAccessLogger(log),
		server.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	}
	if cfg.JSONErrors {
		handlerOpts = append(handlerOpts, server.WithErrorHandler(response.JSONErrorHandler))
	}

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, server.NewHandler(a, handlerOpts...)))

	if err := eg.Wait(); err != nil {
		log.Error("Server stopped with error", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
}
