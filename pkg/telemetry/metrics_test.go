package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLaunch(t *testing.T) {
	ctx := context.Background()
	metrics, err := NewMetrics(ctx)
	require.NoError(t, err)
	defer metrics.Shutdown(ctx)

	metrics.RecordLaunch(ctx, "Pass", "", 120*time.Millisecond)
	metrics.RecordLaunch(ctx, "Pass", "", 80*time.Millisecond)
	metrics.RecordLaunch(ctx, "Fail", "HTTP_STATUS_ERROR", 40*time.Millisecond)

	families, err := metrics.Gatherer().Gather()
	require.NoError(t, err)

	var launches, histograms float64
	for _, family := range families {
		switch {
		case strings.HasPrefix(family.GetName(), launchesMetricName):
			for _, m := range family.GetMetric() {
				launches += m.GetCounter().GetValue()
			}
		case strings.HasPrefix(family.GetName(), durationMetricName):
			for _, m := range family.GetMetric() {
				histograms += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, float64(3), launches)
	assert.Equal(t, float64(3), histograms)
}

func TestPush(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := context.Background()
	metrics, err := NewMetrics(ctx)
	require.NoError(t, err)
	defer metrics.Shutdown(ctx)

	metrics.RecordLaunch(ctx, "Pass", "", time.Second)
	require.NoError(t, metrics.Push(ctx, server.URL))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/metrics/job/"+PushJobName, gotPath)
}

func TestStartTracing(t *testing.T) {
	ctx, span := StartTracing(context.Background(), "unit")
	defer span.End()
	assert.NotNil(t, ctx)
}
