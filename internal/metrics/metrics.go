// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tamzrod/rs01/internal/poller"
	"github.com/tamzrod/rs01/internal/rs01"
	"github.com/tamzrod/rs01/internal/status"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// Metrics exposes the watch loop as Prometheus series.
// It satisfies writer.Sink.
type Metrics struct {
	Polls          *prometheus.CounterVec
	Targets        prometheus.Gauge
	Distance       *prometheus.GaugeVec
	Intensity      *prometheus.GaugeVec
	Health         prometheus.Gauge
	LastErrorCode  prometheus.Gauge
	SecondsInError prometheus.Gauge
}

// New registers every series on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rs01_polls_total",
			Help: "Measurement polls by result and transport status code.",
		}, []string{"result", "code"}),
		Targets: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rs01_targets",
			Help: "Number of objects detected in the last successful poll.",
		}),
		Distance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rs01_target_distance",
			Help: "Distance of each detected object, in device units.",
		}, []string{"target"}),
		Intensity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rs01_target_intensity",
			Help: "Echo intensity of each detected object.",
		}, []string{"target"}),
		Health: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rs01_health",
			Help: "Device health: 0 unknown, 1 ok, 2 error.",
		}),
		LastErrorCode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rs01_last_error_code",
			Help: "Last transport status code, 0 when healthy.",
		}),
		SecondsInError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rs01_seconds_in_error",
			Help: "Seconds the device has been unhealthy.",
		}),
	}

	reg.MustRegister(
		m.Polls,
		m.Targets,
		m.Distance,
		m.Intensity,
		m.Health,
		m.LastErrorCode,
		m.SecondsInError,
	)

	return m
}

// Write records one poll result. Targets beyond the reported count are removed
// so stale objects do not linger.
func (m *Metrics) Write(res poller.PollResult) error {
	if res.Err != nil {
		code := strconv.Itoa(int(status.Code(res.Err)))
		m.Polls.WithLabelValues(ResultFailed, code).Inc()
		return nil
	}

	m.Polls.WithLabelValues(ResultSuccess, "0").Inc()

	detected := res.Data.Detected()
	m.Targets.Set(float64(res.Data.Count))

	for i := 0; i < rs01.MaxTargets; i++ {
		label := strconv.Itoa(i + 1)
		if i < len(detected) {
			m.Distance.WithLabelValues(label).Set(float64(detected[i].Distance))
			m.Intensity.WithLabelValues(label).Set(float64(detected[i].Intensity))
			continue
		}
		m.Distance.DeleteLabelValues(label)
		m.Intensity.DeleteLabelValues(label)
	}

	return nil
}

// WriteStatus mirrors the device status snapshot.
func (m *Metrics) WriteStatus(s status.Snapshot) error {
	m.Health.Set(float64(s.Health))
	m.LastErrorCode.Set(float64(s.LastErrorCode))
	m.SecondsInError.Set(float64(s.SecondsInError))
	return nil
}

// Handler serves the gathered series in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
