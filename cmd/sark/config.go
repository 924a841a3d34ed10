package main

import (
	"github.com/dmitrymomot/sark/core/server"
	"github.com/dmitrymomot/sark/integration/database/redis"
)

// Config is loaded from the environment (and .env when present).
type Config struct {
	AppName    string `env:"APP_NAME" envDefault:"sark"`
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	Message    string `env:"SARK_MESSAGE" envDefault:"Hello from state!"`
	JSONErrors bool   `env:"SARK_JSON_ERRORS" envDefault:"false"`

	// Visits are counted in memory unless Redis is enabled.
	RedisEnabled bool `env:"REDIS_ENABLED" envDefault:"false"`
	Redis        redis.Config
	Server       server.Config
}
