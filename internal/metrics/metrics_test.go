// internal/metrics/metrics_test.go
package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/rs01"
	"github.com/tamzrod/rs01/internal/status"
)

func TestWrite_Measurement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	data := rs01.MeasurementData{Count: 2}
	data.Targets[0] = rs01.Target{Distance: 1200, Intensity: 40}
	data.Targets[1] = rs01.Target{Distance: 2500, Intensity: 30}

	require.NoError(t, m.Write(poller.PollResult{Data: data}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Targets))
	assert.Equal(t, 1200.0, testutil.ToFloat64(m.Distance.WithLabelValues("1")))
	assert.Equal(t, 30.0, testutil.ToFloat64(m.Intensity.WithLabelValues("2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Polls.WithLabelValues(ResultSuccess, "0")))
}

func TestWrite_DropsVanishedTargets(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	two := rs01.MeasurementData{Count: 2}
	require.NoError(t, m.Write(poller.PollResult{Data: two}))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Distance))

	one := rs01.MeasurementData{Count: 1}
	require.NoError(t, m.Write(poller.PollResult{Data: one}))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Distance))
}

func TestWrite_FailureCountsByCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	require.NoError(t, m.Write(poller.PollResult{Err: status.New(status.CRCError, nil)}))
	require.NoError(t, m.Write(poller.PollResult{Err: status.New(status.CRCError, nil)}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Polls.WithLabelValues(ResultFailed, "8")))
}

func TestWriteStatus_AndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	require.NoError(t, m.WriteStatus(status.Snapshot{
		Health:         status.HealthError,
		LastErrorCode:  status.RecvError,
		SecondsInError: 12,
	}))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "rs01_health 2"), body)
	assert.True(t, strings.Contains(body, "rs01_last_error_code 9"), body)
	assert.True(t, strings.Contains(body, "rs01_seconds_in_error 12"), body)
}
