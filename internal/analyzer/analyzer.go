// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analyzer runs the house and Arudha engines over a chart and over
// batches of charts, reporting each run to an optional observer.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/go-jyotish/internal/arudha"
	"github.com/petar-djukic/go-jyotish/internal/house"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const defaultWorkers = 4

// Outcome labels a finished chart analysis.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeMalformed Outcome = "malformed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeLoadError Outcome = "load_error"
)

// Observer is told about every analysis. Implementations must be safe for
// concurrent use; batches call them from several goroutines.
type Observer interface {
	ChartAnalyzed(outcome Outcome, elapsed time.Duration)
	PadaComputed(kind types.ExceptionKind)
	PadaAbsent(origin types.House)
}

// RunResult holds both reports for one chart.
type RunResult struct {
	Houses types.HouseReport  `json:"houses"`
	Arudha types.ArudhaReport `json:"arudha"`
}

// Deps holds the runner's settings and collaborators.
type Deps struct {
	Observer    Observer // Optional
	Workers     int      // Concurrent charts in a batch (default 4)
	RankSize    int      // Strongest/weakest list length (default 3)
	SkipAspects bool     // Omit per-house aspect lists
}

// Runner orchestrates chart analyses. It holds no per-chart state and is
// safe for concurrent use.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Workers <= 0 {
		deps.Workers = defaultWorkers
	}
	return &Runner{deps: deps}
}

// Run validates the chart and computes both reports. A malformed chart
// yields an error and no partial result.
func (r *Runner) Run(ctx context.Context, c types.Chart) (*RunResult, error) {
	start := time.Now()
	if err := r.check(ctx, c, start); err != nil {
		return nil, err
	}

	result := &RunResult{
		Houses: house.Analyze(c, r.houseConfig()),
		Arudha: arudha.Analyze(c),
	}
	r.observePadas(result.Arudha)
	r.observe(OutcomeOK, start)
	return result, nil
}

// Houses computes the house report only.
func (r *Runner) Houses(ctx context.Context, c types.Chart) (types.HouseReport, error) {
	start := time.Now()
	if err := r.check(ctx, c, start); err != nil {
		return types.HouseReport{}, err
	}
	report := house.Analyze(c, r.houseConfig())
	r.observe(OutcomeOK, start)
	return report, nil
}

// Arudha computes the Arudha report only.
func (r *Runner) Arudha(ctx context.Context, c types.Chart) (types.ArudhaReport, error) {
	start := time.Now()
	if err := r.check(ctx, c, start); err != nil {
		return types.ArudhaReport{}, err
	}
	report := arudha.Analyze(c)
	r.observePadas(report)
	r.observe(OutcomeOK, start)
	return report, nil
}

// Job is one chart of a batch. Load is called on a worker goroutine.
type Job struct {
	Name string
	Load func(ctx context.Context) (types.Chart, error)
}

// BatchItem is the outcome of one job. Exactly one of Result and Err is set.
type BatchItem struct {
	Name   string     `json:"name"`
	Result *RunResult `json:"result,omitempty"`
	Err    error      `json:"-"`
	Error  string     `json:"error,omitempty"` // Err as text, for encoders
}

// Batch analyses jobs on a bounded pool of workers. A failing job never
// stops the others; items come back in job order.
func (r *Runner) Batch(ctx context.Context, jobs []Job) []BatchItem {
	items := make([]BatchItem, len(jobs))

	var g errgroup.Group
	g.SetLimit(r.deps.Workers)
	for i, job := range jobs {
		items[i].Name = job.Name
		g.Go(func() error {
			items[i].Result, items[i].Err = r.runJob(ctx, job)
			if items[i].Err != nil {
				items[i].Error = items[i].Err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()
	return items
}

func (r *Runner) runJob(ctx context.Context, job Job) (*RunResult, error) {
	if err := ctx.Err(); err != nil {
		r.observe(OutcomeCancelled, time.Now())
		return nil, err
	}
	if job.Load == nil {
		return nil, fmt.Errorf("%s: no chart source", job.Name)
	}
	c, err := job.Load(ctx)
	if err != nil {
		r.observe(OutcomeLoadError, time.Now())
		return nil, err
	}
	return r.Run(ctx, c)
}

func (r *Runner) check(ctx context.Context, c types.Chart, start time.Time) error {
	if err := ctx.Err(); err != nil {
		r.observe(OutcomeCancelled, start)
		return err
	}
	if err := c.Validate(); err != nil {
		r.observe(OutcomeMalformed, start)
		return err
	}
	return nil
}

func (r *Runner) houseConfig() house.Config {
	return house.Config{RankSize: r.deps.RankSize, SkipAspects: r.deps.SkipAspects}
}

func (r *Runner) observe(o Outcome, start time.Time) {
	if r.deps.Observer == nil {
		return
	}
	r.deps.Observer.ChartAnalyzed(o, time.Since(start))
}

func (r *Runner) observePadas(report types.ArudhaReport) {
	if r.deps.Observer == nil {
		return
	}
	for _, p := range report.Ordered() {
		r.deps.Observer.PadaComputed(p.Exception.Kind)
	}
	for _, a := range report.Absent {
		r.deps.Observer.PadaAbsent(a.Origin)
	}
}
