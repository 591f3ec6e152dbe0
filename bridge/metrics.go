// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package bridge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/teleport"
)

// Metrics counts bridge operations by outcome and emitted events by name.
type Metrics struct {
	successfulOperationCount *prometheus.CounterVec
	failedOperationCount     *prometheus.CounterVec
	operationLatencyMS       *prometheus.GaugeVec
	emittedEventCount        *prometheus.CounterVec
}

// NewMetrics registers the bridge metrics with registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := Metrics{
		successfulOperationCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_operation_count",
				Help: "Number of bridge operations that committed",
			},
			[]string{"operation"},
		),
		failedOperationCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "failed_operation_count",
				Help: "Number of bridge operations that were rejected",
			},
			[]string{"operation", "failure_reason"},
		),
		operationLatencyMS: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "operation_latency_ms",
				Help: "Latency of the last bridge operation in milliseconds",
			},
			[]string{"operation"},
		),
		emittedEventCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emitted_event_count",
				Help: "Number of events appended to the emission log",
			},
			[]string{"event"},
		),
	}

	registerer.MustRegister(m.successfulOperationCount)
	registerer.MustRegister(m.failedOperationCount)
	registerer.MustRegister(m.operationLatencyMS)
	registerer.MustRegister(m.emittedEventCount)

	return &m
}

func (m *Metrics) observe(op string, err error, elapsed time.Duration) {
	m.operationLatencyMS.WithLabelValues(op).Set(float64(elapsed.Milliseconds()))
	if err != nil {
		m.failedOperationCount.WithLabelValues(op, teleport.Reason(err)).Inc()
		return
	}
	m.successfulOperationCount.WithLabelValues(op).Inc()
}

func (m *Metrics) emitted(event string) {
	m.emittedEventCount.WithLabelValues(event).Inc()
}
