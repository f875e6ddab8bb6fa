package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// PortEnv is the HTTP listen port.
	PortEnv = "PORT"

	// StoreBackendEnv selects the storage backend: memory, bolt, postgres
	// or dynamo.
	StoreBackendEnv = "STORE_BACKEND"

	// DatabaseURLEnv is the postgres DSN.
	DatabaseURLEnv = "DATABASE_URL"

	// BoltPathEnv is the bbolt database file path.
	BoltPathEnv = "BOLT_PATH"

	// DynamoTableEnv is the DynamoDB table name.
	DynamoTableEnv = "DYNAMO_TABLE"

	// AWSRegionEnv is the AWS region for the dynamo backend.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv overrides the AWS endpoint (local stacks).
	AWSEndpointEnv = "AWS_ENDPOINT"

	// MetricsTokenEnv is the bearer token guarding /metrics; empty
	// disables the endpoint.
	MetricsTokenEnv = "METRICS_TOKEN"

	// RateLimitEnv is requests-per-window per IP; 0 disables limiting.
	RateLimitEnv = "RATE_LIMIT"

	// RateWindowEnv is the limiter window in seconds.
	RateWindowEnv = "RATE_WINDOW_SECONDS"

	// EnvFilePath points at an alternative .env file.
	EnvFilePath = "ENV_PATH"

	defaultEnvFilePath = ".env"
	defaultPort        = "8082"
	defaultBackend     = BackendMemory
	defaultBoltPath    = "catalog.db"
	defaultRateWindow  = 60
)

const (
	BackendMemory   = "memory"
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
	BackendDynamo   = "dynamo"
)

// ErrMissingConfig is returned when the selected backend's required values
// are absent.
var ErrMissingConfig = errors.New("missing config data")

// Config is everything catalogd needs, resolved once at startup.
type Config struct {
	Port         string
	StoreBackend string

	DatabaseURL string
	BoltPath    string
	DynamoTable string
	AWSRegion   string
	AWSEndpoint string

	MetricsToken      string
	RateLimit         int
	RateWindowSeconds int
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("%w: %s", ErrMissingConfig, BoltPathEnv)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: %s", ErrMissingConfig, DatabaseURLEnv)
		}
	case BackendDynamo:
		if c.DynamoTable == "" {
			return fmt.Errorf("%w: %s", ErrMissingConfig, DynamoTableEnv)
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}

	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// LoadFromEnv reads the optional .env file, then the environment, and
// validates the result.
func LoadFromEnv() (*Config, error) {
	// Missing .env is fine; the environment may be set another way.
	_ = godotenv.Load(getenv(EnvFilePath, defaultEnvFilePath))

	conf := &Config{
		Port:         getenv(PortEnv, defaultPort),
		StoreBackend: getenv(StoreBackendEnv, defaultBackend),

		DatabaseURL: os.Getenv(DatabaseURLEnv),
		BoltPath:    getenv(BoltPathEnv, defaultBoltPath),
		DynamoTable: os.Getenv(DynamoTableEnv),
		AWSRegion:   os.Getenv(AWSRegionEnv),
		AWSEndpoint: os.Getenv(AWSEndpointEnv),

		MetricsToken:      os.Getenv(MetricsTokenEnv),
		RateLimit:         getenvInt(RateLimitEnv, 0),
		RateWindowSeconds: getenvInt(RateWindowEnv, defaultRateWindow),
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
