package main

import "errors"

// KnownMetrics is the set of metric names exported by flower-finder plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"flowerfinder_http_request_duration_seconds": true,
	"flowerfinder_http_requests_total":           true,

	// Health metrics.
	"flowerfinder_healthz_up": true,
	"flowerfinder_readyz_up":  true,

	// Flower lookups.
	"flowerfinder_flower_lookups_total": true,

	// Naver Shopping API metrics.
	"flowerfinder_naver_api_calls_total":        true,
	"flowerfinder_naver_api_errors_total":       true,
	"flowerfinder_naver_daily_usage":            true,
	"flowerfinder_naver_daily_limit_hits_total": true,

	// Aggregation metrics.
	"flowerfinder_aggregation_pages": true,
	"flowerfinder_aggregation_items": true,

	// Recording rules.
	"flowerfinder:http_requests:rate5m":     true,
	"flowerfinder:http_errors:rate5m":       true,
	"flowerfinder:flower_lookups:rate5m":    true,
	"flowerfinder:naver_api_calls:rate5m":   true,
	"flowerfinder:naver_api_errors:rate5m":  true,
	"flowerfinder:aggregation_pages:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
