// Package config handles loading and validating the application configuration
// from an optional YAML file, a .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Naver    NaverConfig    `yaml:"naver"`
	Search   SearchConfig   `yaml:"search"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// DatabaseConfig defines the flower document store connection.
type DatabaseConfig struct {
	URI      string `yaml:"uri"`
	PoolSize int    `yaml:"pool_size"`
}

// NaverConfig defines Naver Shopping search API settings.
type NaverConfig struct {
	ClientID      string          `yaml:"client_id"`
	ClientSecret  string          `yaml:"client_secret"`
	ShopURL       string          `yaml:"shop_url"`
	Timeout       time.Duration   `yaml:"timeout"`
	PageSize      int             `yaml:"page_size"`
	ResultCeiling int             `yaml:"result_ceiling"`
	Sort          string          `yaml:"sort"` // sim, date, asc, dsc
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Naver API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// SearchConfig defines how flower names are matched against the store.
type SearchConfig struct {
	// RawRegex passes the user supplied name to the store as a regular
	// expression instead of matching it literally.
	RawRegex bool `yaml:"raw_regex"`
}

// TracingConfig defines OpenTelemetry trace export.
type TracingConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Endpoint    string   `yaml:"endpoint"` // host:port of an OTLP/gRPC collector
	Insecure    bool     `yaml:"insecure"`
	SampleRatio *float64 `yaml:"sample_ratio"` // nil means sample everything
}

// Ratio returns the configured sample ratio, or 1.0 when none was given.
func (t TracingConfig) Ratio() float64 {
	if t.SampleRatio == nil {
		return 1.0
	}
	return *t.SampleRatio
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Environment variables that override the file.
const (
	EnvPort         = "PORT"
	EnvDBURI        = "DB_URI"
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
)

// Load builds the configuration. A .env file in the working directory is
// loaded first if present. When path is empty the configuration comes from
// the environment alone; otherwise the YAML file is read with environment
// variable substitution. PORT, DB_URI, CLIENT_ID and CLIENT_SECRET always
// take precedence over the file.
func Load(path string) (*Config, error) {
	// A missing .env is the normal case in containers.
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvDBURI); v != "" {
		cfg.Database.URI = v
	}
	if v := os.Getenv(EnvClientID); v != "" {
		cfg.Naver.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		cfg.Naver.ClientSecret = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyNaverDefaults(&cfg.Naver)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 5000
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"*"}
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyNaverDefaults(n *NaverConfig) {
	if n.ShopURL == "" {
		n.ShopURL = "https://openapi.naver.com/v1/search/shop.json"
	}
	if n.Timeout == 0 {
		n.Timeout = 10 * time.Second
	}
	if n.PageSize == 0 {
		n.PageSize = 100
	}
	if n.ResultCeiling == 0 {
		n.ResultCeiling = 1000
	}
	if n.Sort == "" {
		n.Sort = "sim"
	}
	applyRateLimitDefaults(&n.RateLimit)
}

// Naver documents 25,000 search calls per day per application.
func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 25000
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.SampleRatio == nil {
		ratio := 1.0
		t.SampleRatio = &ratio
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.URI == "" {
		errs = append(errs, fmt.Errorf("database.uri (%s) is required", EnvDBURI))
	}
	if cfg.Naver.ClientID == "" {
		errs = append(errs, fmt.Errorf("naver.client_id (%s) is required", EnvClientID))
	}
	if cfg.Naver.ClientSecret == "" {
		errs = append(
			errs,
			fmt.Errorf("naver.client_secret (%s) is required", EnvClientSecret),
		)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be 1-65535 (got %d)", cfg.Server.Port))
	}

	if cfg.Naver.PageSize < 1 || cfg.Naver.PageSize > 100 {
		errs = append(
			errs,
			fmt.Errorf("naver.page_size must be 1-100 (got %d)", cfg.Naver.PageSize),
		)
	}
	if cfg.Naver.ResultCeiling < cfg.Naver.PageSize {
		errs = append(
			errs,
			fmt.Errorf(
				"naver.result_ceiling must be >= naver.page_size (got %d)",
				cfg.Naver.ResultCeiling,
			),
		)
	}

	if ratio := cfg.Tracing.Ratio(); ratio < 0 || ratio > 1 {
		errs = append(
			errs,
			fmt.Errorf("tracing.sample_ratio must be 0-1 (got %v)", ratio),
		)
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format),
		)
	}

	return errors.Join(errs...)
}
