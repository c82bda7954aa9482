package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/pwinty/internal/telemetry"
)

func TestMetrics_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.RecordRequest("create_order", "200", 0.12)
	m.RecordRequest("create_order", "200", 0.08)
	m.RecordRequest("countries", "500", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("create_order", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("countries", "500")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_RecordError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.RecordError("add_images", "internal")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("add_images", "internal")))
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	// Two unregistered sets must not collide.
	a := telemetry.NewMetrics(nil)
	b := telemetry.NewMetrics(nil)
	require.NotNil(t, a)
	require.NotNil(t, b)

	a.RecordError("countries", "transport")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Errors.WithLabelValues("countries", "transport")))
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	telemetry.NewMetrics(reg)

	assert.Panics(t, func() {
		telemetry.NewMetrics(reg)
	})
}
