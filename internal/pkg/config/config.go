package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
	Login    LoginConfig
}

// UpstreamConfig points at the billing record API.
type UpstreamConfig struct {
	BaseURL string        `env:"UPSTREAM_BASE_URL, default=http://localhost:8080"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT,  default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// SessionConfig controls the session cookie and how long a persisted token
// is kept.
type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=portal_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=24h"`
}

// LoginConfig throttles credential attempts per client IP.
type LoginConfig struct {
	RatePerSecond float64 `env:"LOGIN_RATE,  default=1"`
	Burst         int     `env:"LOGIN_BURST, default=5"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
