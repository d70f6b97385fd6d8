// Package middleware provides the Echo middleware of the flower-finder API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/flower-finder/internal/metrics"
)

// Probe and scrape paths get no request histograms.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// unmatchedRoute labels requests that hit no registered route, keeping
// arbitrary client paths out of the label set.
const unmatchedRoute = "unmatched"

// Metrics returns Echo middleware that records request duration and count
// by method, route template and status. Probe paths only update their
// up/down gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if _, skip := metricsSkipPaths[route]; skip {
				setProbeGauge(route, c.Response().Status)
				return nil
			}
			if route == "" || route == "/*" {
				route = unmatchedRoute
			}

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return nil
		}
	}
}

func setProbeGauge(path string, status int) {
	gauge, ok := probeGauges[path]
	if !ok {
		return
	}
	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
