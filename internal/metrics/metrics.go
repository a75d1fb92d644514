// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package metrics exposes chart analysis counters and timings to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/petar-djukic/go-jyotish/internal/analyzer"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const namespace = "jyotish"

// Collector records analyzer events. It implements analyzer.Observer.
type Collector struct {
	chartsTotal      *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	padasTotal       *prometheus.CounterVec
	absentPadas      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

var _ analyzer.Observer = (*Collector)(nil)

// NewCollector creates the collectors and registers them with reg. A nil reg
// gets a fresh private registry.
func NewCollector(reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Collector{
		chartsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "charts_total",
				Help:      "Chart analyses by outcome",
			},
			[]string{"outcome"},
		),
		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Time spent analysing one chart",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"outcome"},
		),
		padasTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "arudha_padas_total",
				Help:      "Computed Arudha padas by correction rule",
			},
			[]string{"exception"},
		),
		absentPadas: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "arudha_padas_absent_total",
				Help:      "Padas skipped because the house lord had no position",
			},
			[]string{"house"},
		),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.chartsTotal, m.analysisDuration, m.padasTotal, m.absentPadas} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ChartAnalyzed counts one analysis and records its duration.
func (m *Collector) ChartAnalyzed(outcome analyzer.Outcome, elapsed time.Duration) {
	m.chartsTotal.WithLabelValues(string(outcome)).Inc()
	m.analysisDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

// PadaComputed counts one pada by the correction it needed.
func (m *Collector) PadaComputed(kind types.ExceptionKind) {
	m.padasTotal.WithLabelValues(string(kind)).Inc()
}

// PadaAbsent counts one pada that could not be computed.
func (m *Collector) PadaAbsent(origin types.House) {
	m.absentPadas.WithLabelValues(strconv.Itoa(int(origin))).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
