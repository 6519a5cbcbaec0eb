package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	DB DBConfig
}

type DBConfig struct {
	Host         string `env:"DB_HOST,     default=localhost"`
	Port         string `env:"DB_PORT,     default=5432"`
	User         string `env:"DB_USER"`
	Password     string `env:"DB_PASSWORD"`
	Database     string `env:"DB_DATABASE"`
	SSLMode      string `env:"DB_SSLMODE,  default=disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS, default=10"`
}

// DSN renders the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
