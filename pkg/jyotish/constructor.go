// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package jyotish

import (
	"context"
	"fmt"

	"github.com/petar-djukic/go-jyotish/internal/analyzer"
	"github.com/petar-djukic/go-jyotish/internal/arudha"
	"github.com/petar-djukic/go-jyotish/internal/aspect"
	"github.com/petar-djukic/go-jyotish/internal/chart"
	"github.com/petar-djukic/go-jyotish/internal/house"
	"github.com/petar-djukic/go-jyotish/internal/metrics"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const (
	defaultWorkers  = 4
	defaultRankSize = 3
)

// AnalyzeHouses returns the full house report. A malformed chart yields
// ErrMalformedChart and no partial result.
func AnalyzeHouses(c types.Chart) (types.HouseReport, error) {
	if err := c.Validate(); err != nil {
		return types.HouseReport{}, err
	}
	return house.Analyze(c, house.Config{}), nil
}

// AnalyzeArudhaPadas returns the Arudha report. Padas whose lord is
// missing from the chart are listed as absent.
func AnalyzeArudhaPadas(c types.Chart) (types.ArudhaReport, error) {
	if err := c.Validate(); err != nil {
		return types.ArudhaReport{}, err
	}
	return arudha.Analyze(c), nil
}

// AspectsOnHouse returns the angular aspects and drishti on house h,
// strongest first. The slice is empty, never nil, when nothing aspects h.
func AspectsOnHouse(c types.Chart, h types.House) ([]types.AspectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHouse, int(h))
	}
	return aspect.OnHouse(c, h), nil
}

// LoadChart reads a YAML, TOML or JSON chart document.
func LoadChart(path string) (types.Chart, error) {
	doc, err := chart.Load(path)
	if err != nil {
		return types.Chart{}, err
	}
	return doc.Chart, nil
}

// New validates the config and returns a ready-to-use Analyzer. When
// cfg.Registry is set the analyzer's counters are registered on it.
func New(cfg Config) (Analyzer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	deps := analyzer.Deps{
		Workers:     cfg.Workers,
		RankSize:    cfg.RankSize,
		SkipAspects: cfg.SkipAspects,
	}
	if cfg.Registry != nil {
		m, err := metrics.NewCollector(cfg.Registry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		deps.Observer = m
	}
	return &analyzerAdapter{runner: analyzer.NewRunner(deps)}, nil
}

// analyzerAdapter adapts internal/analyzer.Runner to the public Analyzer
// interface.
type analyzerAdapter struct {
	runner *analyzer.Runner
}

func (a *analyzerAdapter) Analyze(ctx context.Context, c types.Chart) (*Result, error) {
	ir, err := a.runner.Run(ctx, c)
	if ir == nil {
		return nil, err
	}
	return &Result{Houses: ir.Houses, Arudha: ir.Arudha}, err
}

func (a *analyzerAdapter) Houses(ctx context.Context, c types.Chart) (types.HouseReport, error) {
	return a.runner.Houses(ctx, c)
}

func (a *analyzerAdapter) Arudha(ctx context.Context, c types.Chart) (types.ArudhaReport, error) {
	return a.runner.Arudha(ctx, c)
}

func (a *analyzerAdapter) Batch(ctx context.Context, paths []string) []BatchItem {
	jobs := make([]analyzer.Job, len(paths))
	names := make([]string, len(paths))
	for i, path := range paths {
		jobs[i] = analyzer.Job{
			Name: path,
			Load: func(context.Context) (types.Chart, error) {
				doc, err := chart.Load(path)
				if err != nil {
					return types.Chart{}, err
				}
				names[i] = doc.Name
				return doc.Chart, nil
			},
		}
	}

	items := a.runner.Batch(ctx, jobs)
	out := make([]BatchItem, len(items))
	for i, it := range items {
		out[i] = BatchItem{Path: paths[i], Name: names[i], Err: it.Err, Error: it.Error}
		if it.Result != nil {
			out[i].Result = &Result{Houses: it.Result.Houses, Arudha: it.Result.Arudha}
		}
	}
	return out
}

// validateConfig checks the ranges of the numeric settings.
func validateConfig(cfg Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("Workers must not be negative")
	}
	if cfg.RankSize < 0 || cfg.RankSize > 12 {
		return fmt.Errorf("RankSize must be in 0..12")
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.RankSize == 0 {
		cfg.RankSize = defaultRankSize
	}
}
