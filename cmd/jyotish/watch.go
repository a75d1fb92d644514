// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/go-jyotish/internal/analyzer"
	"github.com/petar-djukic/go-jyotish/internal/chart"
	"github.com/petar-djukic/go-jyotish/internal/metrics"
	"github.com/petar-djukic/go-jyotish/internal/watch"
	"github.com/petar-djukic/go-jyotish/pkg/jyotish"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

// newWatchCmd creates the "watch" command.
func (a *app) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path]...",
		Short: "Re-analyse chart documents whenever they change",
		Long: "Watch analyses each chart once, then again after every edit. Directories " +
			"select every chart document inside them. With metrics_addr set, counters are " +
			"served on /metrics until the command is interrupted.",
		RunE: a.runWatch,
	}
	cmd.Flags().StringSliceP("chart", "c", nil, "Chart document or directory (repeatable)")
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before a change is analysed")
	return cmd
}

func (a *app) runWatch(cmd *cobra.Command, args []string) error {
	paths, _ := cmd.Flags().GetStringSlice("chart")
	paths = append(paths, args...)
	if len(paths) == 0 {
		return fmt.Errorf("watch: no chart paths given")
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		return err
	}
	runner := analyzer.NewRunner(analyzer.Deps{
		Observer:    collector,
		Workers:     a.cfg.Workers,
		RankSize:    a.cfg.RankSize,
		SkipAspects: a.cfg.SkipAspects,
	})

	w, err := watch.New(paths, debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if addr := a.cfg.MetricsAddr; addr != "" {
		a.log.Info("serving metrics", "addr", addr)
		g.Go(func() error { return collector.Serve(ctx, addr) })
	}

	g.Go(func() error {
		for _, path := range initialCharts(paths) {
			a.analyzeFile(ctx, runner, path)
		}
		a.log.Info("watching", "paths", paths, "debounce", debounce)
		for {
			select {
			case <-ctx.Done():
				return nil
			case change, ok := <-w.Changes:
				if !ok {
					return nil
				}
				if change.Kind == watch.ChangeRemoved {
					a.log.Info("chart removed", "path", change.File)
					continue
				}
				a.analyzeFile(ctx, runner, change.File)
			}
		}
	})
	return g.Wait()
}

// analyzeFile loads and analyses one chart and prints the result. Failures
// are logged; the watch keeps going.
func (a *app) analyzeFile(ctx context.Context, runner *analyzer.Runner, path string) {
	start := time.Now()
	var name string
	items := runner.Batch(ctx, []analyzer.Job{{
		Name: path,
		Load: func(context.Context) (types.Chart, error) {
			doc, err := chart.Load(path)
			name = doc.Name
			return doc.Chart, err
		},
	}})

	it := items[0]
	if it.Err != nil {
		a.log.Warn("analysis failed", "path", path, "err", it.Err)
		return
	}
	a.log.Debug("chart analysed", "path", path, "elapsed", time.Since(start))
	res := &jyotish.Result{Houses: it.Result.Houses, Arudha: it.Result.Arudha}
	if err := a.printResult(name, res); err != nil {
		a.log.Error("writing result", "err", err)
	}
}

// initialCharts expands directories into the chart documents they hold.
func initialCharts(paths []string) []string {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, err := chart.FormatFromPath(e.Name()); err == nil {
				out = append(out, filepath.Join(p, e.Name()))
			}
		}
	}
	return out
}
