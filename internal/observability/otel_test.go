package observability

import (
	"context"
	"testing"

	"jobmatch/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics builds an ObservabilityManager whose business metrics feed a
// ManualReader so tests can collect and inspect recorded values.
func newTestMetrics(t *testing.T, fullConfig *config.Config) (*ObservabilityManager, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	om := &ObservabilityManager{
		fullConfig: fullConfig,
		metrics:    &Metrics{},
	}
	meter := provider.Meter("jobmatch-test")
	require.NoError(t, om.createBusinessMetrics(meter))
	require.NoError(t, om.createRateLimitMetrics(meter))

	return om, reader
}

// collectCounterValue returns the summed data points of a counter metric, or
// -1 when the metric was never recorded.
func collectCounterValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return -1
}

func TestRecordBusinessMetricIncrementsPerTypeCounters(t *testing.T) {
	om, reader := newTestMetrics(t, nil)
	metrics := om.GetMetrics()
	ctx := context.Background()

	metrics.RecordBusinessMetric(ctx, "job_extracted", true, om)
	metrics.RecordBusinessMetric(ctx, "resume_extracted", true, om)
	metrics.RecordBusinessMetric(ctx, "advice_generated", true, om)
	metrics.RecordBusinessMetric(ctx, "match_scored", true, om)
	metrics.RecordBusinessMetric(ctx, "match_scored", false, om)
	metrics.RecordBusinessMetric(ctx, "rate_limit_hit", true, om)

	assert.Equal(t, int64(1), collectCounterValue(t, reader, "jobmatch_jobs_extracted_total"))
	assert.Equal(t, int64(1), collectCounterValue(t, reader, "jobmatch_resumes_extracted_total"))
	assert.Equal(t, int64(1), collectCounterValue(t, reader, "jobmatch_advice_generated_total"))
	assert.Equal(t, int64(2), collectCounterValue(t, reader, "jobmatch_matches_scored_total"))
	assert.Equal(t, int64(1), collectCounterValue(t, reader, "jobmatch_rate_limit_hits_total"))
}

func TestRecordBusinessMetricUnknownTypeIsIgnored(t *testing.T) {
	om, reader := newTestMetrics(t, nil)
	metrics := om.GetMetrics()

	metrics.RecordBusinessMetric(context.Background(), "no_such_metric", true, om)

	assert.Equal(t, int64(-1), collectCounterValue(t, reader, "jobmatch_jobs_extracted_total"))
	assert.Equal(t, int64(-1), collectCounterValue(t, reader, "jobmatch_matches_scored_total"))
}

func TestRecordBusinessMetricDisabledByConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Observability.CustomMetrics.BusinessMetrics.Enabled = false

	om, reader := newTestMetrics(t, cfg)
	metrics := om.GetMetrics()

	metrics.RecordBusinessMetric(context.Background(), "job_extracted", true, om)

	assert.Equal(t, int64(-1), collectCounterValue(t, reader, "jobmatch_jobs_extracted_total"))
}

func TestRecordMatchScore(t *testing.T) {
	om, reader := newTestMetrics(t, nil)
	metrics := om.GetMetrics()

	metrics.RecordMatchScore(context.Background(), 73, om)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "jobmatch_match_score" {
				continue
			}
			hist, ok := m.Data.(metricdata.Histogram[float64])
			require.True(t, ok)
			require.Len(t, hist.DataPoints, 1)
			assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
			assert.Equal(t, float64(73), hist.DataPoints[0].Sum)
			found = true
		}
	}
	assert.True(t, found, "jobmatch_match_score histogram not recorded")
}
