package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	Storage  string `env:"STORAGE,   default=mongo"`

	// TrustProxy takes the caller address from X-Forwarded-For set by a
	// proxy on a private network.
	TrustProxy bool `env:"TRUST_PROXY, default=false"`

	// CORSOrigins lists the frontend origins allowed to send credentialed requests.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173"`

	Session   SessionConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
}

type SessionConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	TTL        time.Duration `env:"SESSION_TTL,         default=720h"`
	CookieName string        `env:"SESSION_COOKIE_NAME, default=token"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hostel_complaints"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// RateLimitConfig bounds requests per caller address per fixed window.
type RateLimitConfig struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED,  default=true"`
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=15m"`
}

// SeedConfig names the caretaker account created by cmd/seed.
type SeedConfig struct {
	Name     string `env:"SEED_CARETAKER_NAME, default=Hostel Admin"`
	Email    string `env:"SEED_CARETAKER_EMAIL"`
	Password string `env:"SEED_CARETAKER_PASSWORD"`
}

// IsProduction reports whether the service runs with production settings
// (secure cookies, JSON logs).
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Session.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Storage != StorageMongo && c.Storage != StorageMemory {
		return fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMongo, StorageMemory, c.Storage)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}
