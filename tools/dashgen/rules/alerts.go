package rules

import "fmt"

// naverDailyLimit mirrors the default naver.daily_limit setting.
const (
	naverDailyLimit = 25000
	naverQuotaWarn  = naverDailyLimit * 8 / 10
)

// AlertRules returns a PrometheusRule CR containing alert rules for
// flower-finder operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule(
		"flower-finder-alerts",
		"flower-finder-alerts",
		[]Rule{
			{
				Alert: "FlowerFinderDown",
				Expr:  `absent(up{job="flower-finder"})`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Flower Finder is down",
					"description": "The flower-finder job has been absent for more than 2 minutes.",
				},
			},
			{
				Alert: "FlowerFinderReadinessDown",
				Expr:  `flowerfinder_readyz_up{job="flower-finder"} == 0`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Flower store is unreachable",
					"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
				},
			},
			{
				Alert: "FlowerFinderHighErrorRate",
				Expr:  `sum(flowerfinder:http_errors:rate5m) / sum(flowerfinder:http_requests:rate5m) > 0.05`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "High HTTP error rate on Flower Finder",
					"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
				},
			},
			{
				Alert: "FlowerFinderNaverErrors",
				Expr:  `flowerfinder:naver_api_errors:rate5m / flowerfinder:naver_api_calls:rate5m > 0.1`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Naver Shopping API failures are elevated",
					"description": "More than 10% of Naver Shopping API calls have failed over the last 5 minutes.",
				},
			},
			{
				Alert: "FlowerFinderNaverQuotaHigh",
				Expr:  fmt.Sprintf(`flowerfinder_naver_daily_usage{job="flower-finder"} > %d`, naverQuotaWarn),
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Naver API daily usage is above 80% of the quota",
					"description": fmt.Sprintf("Daily Naver API usage has exceeded %d calls (limit is %d).", naverQuotaWarn, naverDailyLimit),
				},
			},
			{
				Alert: "FlowerFinderNaverLimitReached",
				Expr:  `increase(flowerfinder_naver_daily_limit_hits_total{job="flower-finder"}[5m]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Naver API daily limit has been reached",
					"description": "The local Naver quota is exhausted. Shopping searches fail until the window resets.",
				},
			},
		},
	)
}
