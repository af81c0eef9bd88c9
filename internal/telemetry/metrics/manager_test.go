package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersOnGivenRegistry(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterWorkoutsLogged.With(prometheus.Labels{"type": "gym"}).Inc()
	m.CounterWorkoutsLogged.With(prometheus.Labels{"type": "gym"}).Inc()
	m.CounterWorkoutsDeleted.Inc()
	m.GaugeWorkouts.Set(7)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterWorkoutsLogged.WithLabelValues("gym")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterWorkoutsDeleted))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.GaugeWorkouts))

	count, err := testutil.GatherAndCount(reg, "fittrack_test_server_workouts_deleted")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSetupPrometheus(t *testing.T) {
	extra := prometheus.NewCounter(prometheus.CounterOpts{Name: "extra_counter", Help: "extra"})
	reg := SetupPrometheus(extra)
	extra.Inc()

	count, err := testutil.GatherAndCount(reg, "extra_counter")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
