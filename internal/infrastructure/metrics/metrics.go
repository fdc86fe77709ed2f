package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "identity"
	name      = "general_counters"
)

func counterOpts() prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
	}
}

// NewCounter registers on the default registry; call it once per process.
func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(counterOpts(), []string{"result"})
}

// NewCounterWith registers on reg, for tests and embedded uses.
func NewCounterWith(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(counterOpts(), []string{"result"})
}
