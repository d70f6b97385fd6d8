package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, FlowerLookupsTotal)
	assert.NotNil(t, NaverAPICallsTotal)
	assert.NotNil(t, NaverAPIErrorsTotal)
	assert.NotNil(t, NaverDailyUsage)
	assert.NotNil(t, NaverDailyLimitHits)
	assert.NotNil(t, AggregationPages)
	assert.NotNil(t, AggregationItems)
}
