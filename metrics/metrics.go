// SPDX-License-Identifier: MIT

// Package metrics records solver runs as Prometheus metrics on a private
// registry. The CLI writes them in text exposition format for the node
// exporter textfile collector, so batch jobs need no HTTP listener.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/eigengame/eigengame"
)

// Result label values of eigengame_solves_total.
const (
	ResultOK        = "ok"
	ResultConverged = "converged"
	ResultError     = "error"
	ResultCancelled = "cancelled"
)

// Recorder holds every metric of one process.
type Recorder struct {
	reg *prometheus.Registry

	// Solves counts finished Solve calls by result.
	Solves *prometheus.CounterVec

	// Epochs is the distribution of epochs actually run.
	Epochs prometheus.Histogram

	// Duration is the wall time of each Solve call in seconds.
	Duration prometheus.Histogram

	// Eigenvalue is the last Rayleigh quotient per dataset and component.
	Eigenvalue *prometheus.GaugeVec
}

// NewRecorder creates and registers the metrics on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eigengame_solves_total",
				Help: "Finished EigenGame solves by result",
			},
			[]string{"result"},
		),
		Epochs: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "eigengame_epochs",
				Help:    "Epochs run per solve",
				Buckets: prometheus.ExponentialBuckets(10, 10, 6),
			},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "eigengame_solve_duration_seconds",
				Help:    "Wall time of each solve in seconds",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
		),
		Eigenvalue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "eigengame_eigenvalue",
				Help: "Rayleigh quotient of each extracted component",
			},
			[]string{"dataset", "component"},
		),
	}
	r.reg.MustRegister(r.Solves, r.Epochs, r.Duration, r.Eigenvalue)

	return r
}

// Registry exposes the underlying registry (e.g. for promhttp or tests).
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSolve records one Solve call. res may be nil when err != nil.
func (r *Recorder) ObserveSolve(dataset string, res *eigengame.Result, elapsed time.Duration, err error) {
	r.Duration.Observe(elapsed.Seconds())
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		r.Solves.WithLabelValues(ResultCancelled).Inc()
		return
	case err != nil:
		r.Solves.WithLabelValues(ResultError).Inc()
		return
	case res.Converged:
		r.Solves.WithLabelValues(ResultConverged).Inc()
	default:
		r.Solves.WithLabelValues(ResultOK).Inc()
	}
	r.Epochs.Observe(float64(res.Epochs))
	for t, v := range res.Eigenvalues {
		r.Eigenvalue.WithLabelValues(dataset, strconv.Itoa(t)).Set(v)
	}
}

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}
