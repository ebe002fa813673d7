package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=168h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Ops   OpsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=reservation_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// OpsConfig is the fixed service-account table for the Basic scheme on the
// /ops surface. Exactly two accounts exist: one admin, one plain user.
// Loaded once at startup and read-only afterwards.
type OpsConfig struct {
	AdminUser       string `env:"OPS_ADMIN_USER,       default=admin"`
	AdminPassword   string `env:"OPS_ADMIN_PASSWORD,   default=admin"`
	ServiceUser     string `env:"OPS_SERVICE_USER,     default=test"`
	ServicePassword string `env:"OPS_SERVICE_PASSWORD, default=test"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
