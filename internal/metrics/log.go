package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Logger-related Prometheus metrics. These live in a standalone package to
// avoid import cycles between the logger and anything the logger observes.

var (
	LogEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patrones_log_emitted_total",
		Help: "Mensajes emitidos por nivel",
	}, []string{"level"})

	LogDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patrones_log_dropped_total",
		Help: "Mensajes descartados por estar debajo del umbral",
	}, []string{"level"})

	DemoRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patrones_demo_runs_total",
		Help: "Ejecuciones de demos por resultado (ok | error)",
	}, []string{"result"})
)

// RegisterLog registers the logger metrics on the given registry (or default if nil).
func RegisterLog(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{LogEmitted, LogDropped, DemoRuns} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
