package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr             = "localhost:6972"
	DefaultProbeConcurrency = 4
	DefaultProbeTimeout     = 10 * time.Second
)

var MissingDatabaseURLError = errors.New("Required environment variable DATABASE_URL not set")
var MissingJWTSecretError = errors.New("JWT_SECRET not specified")

type Config struct {
	DatabaseURL string
	Addr        string
	CertFile    string
	KeyFile     string
	GzipMode    int
	LogLevel    slog.Level

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	ProbeConcurrency int
	ProbeTimeout     time.Duration
}

func (c *Config) HasTLS() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// Load reads the .env files (if any) into the environment, then the
// configuration from the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:             DefaultAddr,
		LogLevel:         slog.LevelDebug,
		AdminUsername:    "admin",
		ProbeConcurrency: DefaultProbeConcurrency,
		ProbeTimeout:     DefaultProbeTimeout,
	}

	cfg.DatabaseURL, _ = os.LookupEnv("DATABASE_URL")
	if addr, ok := os.LookupEnv("FOLIO_ADDR"); ok {
		cfg.Addr = addr
	} else {
		slog.Info("FOLIO_ADDR not provided, using default '" + cfg.Addr + "'")
	}
	cfg.CertFile, _ = os.LookupEnv("HTTPS_CERT_FILE")
	cfg.KeyFile, _ = os.LookupEnv("HTTPS_KEY_FILE")
	cfg.JWTSecret, _ = os.LookupEnv("JWT_SECRET")
	cfg.AdminPasswordHash, _ = os.LookupEnv("ADMIN_PASSWORD_HASH")
	if username, ok := os.LookupEnv("ADMIN_USERNAME"); ok && username != "" {
		cfg.AdminUsername = username
	}

	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("invalid value for LOG_LEVEL: %w", err)
		}
	}

	if mode, ok := os.LookupEnv("GZIP_MODE"); ok {
		gzipMode, err := strconv.Atoi(mode)
		if err != nil {
			return nil, fmt.Errorf("invalid value for GZIP_MODE: %w", err)
		}
		cfg.GzipMode = gzipMode
	}

	if value, ok := os.LookupEnv("PROBE_CONCURRENCY"); ok {
		concurrency, err := strconv.Atoi(value)
		if err != nil || concurrency < 1 {
			return nil, fmt.Errorf("invalid value for PROBE_CONCURRENCY: %q", value)
		}
		cfg.ProbeConcurrency = concurrency
	}

	if value, ok := os.LookupEnv("PROBE_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for PROBE_TIMEOUT: %w", err)
		}
		cfg.ProbeTimeout = timeout
	}

	return cfg, nil
}

// RequireServer checks the settings needed to run the web server.
func (c *Config) RequireServer() error {
	if c.DatabaseURL == "" {
		return MissingDatabaseURLError
	}
	if c.JWTSecret == "" {
		return MissingJWTSecretError
	}

	return nil
}
