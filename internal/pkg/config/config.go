package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"        validate:"required,numeric"`
	Env      string `env:"ENV,       default=development" validate:"required"`
	LogLevel string `env:"LOG_LEVEL, default=info"        validate:"omitempty,oneof=trace debug info warn warning error"`

	IdentityBackend   string        `env:"IDENTITY_BACKEND,   default=memory" validate:"oneof=memory mongo"`
	PreferenceBackend string        `env:"PREFERENCE_BACKEND, default=memory" validate:"oneof=memory redis"`
	RoutesFile        string        `env:"ROUTES_FILE"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,   default=10s"    validate:"gt=0"`

	Audit AuditConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuditConfig struct {
	Enabled bool `env:"AUDIT_ENABLED, default=false"`
	Workers int  `env:"AUDIT_WORKERS, default=2" validate:"gte=1,lte=64"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=booking_gate"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0" validate:"gte=0"`
}

// Development reports whether the process runs in a local environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process reads configuration through lookuper and validates it.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
