// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package jyotish is the public interface of go-jyotish, a Vedic chart
// engine: house strength analysis, Arudha padas and aspects on a house.
//
// The package-level functions are pure and synchronous. Analyzer adds
// batch processing, cancellation and optional prometheus instrumentation.
package jyotish

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/petar-djukic/go-jyotish/pkg/types"
)

// Error types for the jyotish API.
var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrMalformedChart = types.ErrMalformedChart
	ErrUnknownSign    = types.ErrUnknownSign
	ErrUnknownPlanet  = types.ErrUnknownPlanet
	ErrUnknownHouse   = types.ErrUnknownHouse
)

// Config configures an Analyzer.
type Config struct {
	Workers     int                  // Concurrent charts in Batch (default 4)
	RankSize    int                  // Strongest/weakest list length, 1..12 (default 3)
	SkipAspects bool                 // Omit per-house aspect lists from house reports
	Registry    *prometheus.Registry // When set, analyses are counted on it
}

// Result holds both reports for one chart.
type Result struct {
	Houses types.HouseReport  `json:"houses"`
	Arudha types.ArudhaReport `json:"arudha"`
}

// BatchItem is the outcome for one chart file of a batch. Exactly one of
// Result and Err is set.
type BatchItem struct {
	Path   string  `json:"path"`
	Name   string  `json:"name"`
	Result *Result `json:"result,omitempty"`
	Err    error   `json:"-"`
	Error  string  `json:"error,omitempty"`
}

// Analyzer runs chart analyses. Implementations are safe for concurrent use.
type Analyzer interface {
	// Analyze validates the chart and computes the house and Arudha reports.
	Analyze(ctx context.Context, c types.Chart) (*Result, error)
	// Houses computes the house report only.
	Houses(ctx context.Context, c types.Chart) (types.HouseReport, error)
	// Arudha computes the Arudha report only.
	Arudha(ctx context.Context, c types.Chart) (types.ArudhaReport, error)
	// Batch loads and analyses each chart file on a bounded worker pool.
	// One file failing never stops the others; items keep the order of paths.
	Batch(ctx context.Context, paths []string) []BatchItem
}
