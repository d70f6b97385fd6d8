package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule(
		"flower-finder-recording-rules",
		"flower-finder-recording",
		[]Rule{
			{
				Record: "flowerfinder:http_requests:rate5m",
				Expr:   `sum by (path) (rate(flowerfinder_http_requests_total{job="flower-finder"}[5m]))`,
			},
			{
				Record: "flowerfinder:http_errors:rate5m",
				Expr:   `sum by (path) (rate(flowerfinder_http_requests_total{job="flower-finder",status=~"5.."}[5m]))`,
			},
			{
				Record: "flowerfinder:flower_lookups:rate5m",
				Expr:   `sum by (result) (rate(flowerfinder_flower_lookups_total{job="flower-finder"}[5m]))`,
			},
			{
				Record: "flowerfinder:naver_api_calls:rate5m",
				Expr:   `sum(rate(flowerfinder_naver_api_calls_total{job="flower-finder"}[5m]))`,
			},
			{
				Record: "flowerfinder:naver_api_errors:rate5m",
				Expr:   `sum(rate(flowerfinder_naver_api_errors_total{job="flower-finder"}[5m]))`,
			},
			{
				Record: "flowerfinder:aggregation_pages:p95_5m",
				Expr:   `histogram_quantile(0.95, sum by (le) (rate(flowerfinder_aggregation_pages_bucket{job="flower-finder"}[5m])))`,
			},
		},
	)
}
