package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LookupResults returns a timeseries panel of flower lookups by
// result (found, not_found, error).
func LookupResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Flower Lookups").
		Description("Flower lookups per second by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`flowerfinder:flower_lookups:rate5m`, "{{result}}", "A")).
		Unit("reqps").
		FillOpacity(30).
		LineWidth(1).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PagesPerAggregation returns a timeseries panel showing the p95 number of
// upstream pages fetched per shopping aggregation.
func PagesPerAggregation() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Pages per Aggregation (p95)").
		Description("Upstream requests issued per shopping aggregation, ceiling is 10").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`flowerfinder:aggregation_pages:p95_5m`, "p95", "A")).
		Min(0).
		Max(10).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(8, 10)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ItemsPerAggregation returns a timeseries panel showing the average number
// of items returned per shopping aggregation.
func ItemsPerAggregation() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Items per Aggregation").
		Description("Average products returned per shopping aggregation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(fmt.Sprintf(
			`sum(rate(%s[5m])) / sum(rate(%s[5m]))`,
			jobSelector("flowerfinder_aggregation_items_sum"),
			jobSelector("flowerfinder_aggregation_items_count"),
		), "avg items", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
