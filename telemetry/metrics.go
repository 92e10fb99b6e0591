// Package telemetry exposes prometheus metrics for signature operations.
// It is optional: applications that want counters install a Collector as
// the library's operation observer; everyone else pays nothing.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	mldsabip39 "github.com/silica-network/go-mldsa-bip39"
)

// Collector counts keygen, sign and verify operations by level and
// outcome.
type Collector struct {
	operations *prometheus.CounterVec
}

// NewCollector builds a collector and registers it with reg. A nil reg
// skips registration, which is useful for tests.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mldsa_bip39",
			Name:      "operations_total",
			Help:      "Signature operations by operation, level and outcome.",
		}, []string{"operation", "level", "outcome"}),
	}
	if reg != nil {
		if err := reg.Register(c.operations); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records one operation. It matches the library's
// OperationObserverFunc signature.
func (c *Collector) Observe(op string, level mldsabip39.Level, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	c.operations.WithLabelValues(op, level.String(), outcome).Inc()
}

// Install wires the collector into the library as the process-wide
// operation observer.
func (c *Collector) Install() {
	mldsabip39.SetOperationObserver(c.Observe)
}
