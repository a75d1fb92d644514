// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-jyotish/internal/chart"
	"github.com/petar-djukic/go-jyotish/internal/report"
	"github.com/petar-djukic/go-jyotish/pkg/jyotish"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

// chartFlag registers the -c flag every single-chart command takes.
func chartFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("chart", "c", "", "Chart document (required)")
	_ = cmd.MarkFlagRequired("chart")
}

// loadChart reads the document named by -c.
func (a *app) loadChart(cmd *cobra.Command) (chart.Document, error) {
	path, _ := cmd.Flags().GetString("chart")
	doc, err := chart.Load(path)
	if err != nil {
		return chart.Document{}, fmt.Errorf("loading %s: %w", path, err)
	}
	a.log.Debug("chart loaded", "path", path, "name", doc.Name, "planets", len(doc.Chart.Present()))
	return doc, nil
}

func (a *app) newAnalyzer() (jyotish.Analyzer, error) {
	return jyotish.New(jyotish.Config{
		Workers:     a.cfg.Workers,
		RankSize:    a.cfg.RankSize,
		SkipAspects: a.cfg.SkipAspects,
	})
}

// newHousesCmd creates the "houses" command.
func (a *app) newHousesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "houses",
		Short: "Report the strength of all twelve houses",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadChart(cmd)
			if err != nil {
				return err
			}
			an, err := a.newAnalyzer()
			if err != nil {
				return err
			}
			r, err := an.Houses(cmd.Context(), doc.Chart)
			if err != nil {
				return err
			}
			if a.text() {
				_, err = fmt.Fprint(a.stdout, report.Houses(r, a.renderConfig()))
				return err
			}
			return a.printJSON(r)
		},
	}
	chartFlag(cmd)
	return cmd
}

// newArudhaCmd creates the "arudha" command.
func (a *app) newArudhaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arudha",
		Short: "Report the Arudha padas",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadChart(cmd)
			if err != nil {
				return err
			}
			an, err := a.newAnalyzer()
			if err != nil {
				return err
			}
			r, err := an.Arudha(cmd.Context(), doc.Chart)
			if err != nil {
				return err
			}
			if len(r.Absent) > 0 {
				a.log.Info("padas absent", "count", len(r.Absent))
			}
			if a.text() {
				_, err = fmt.Fprint(a.stdout, report.Arudha(r, a.renderConfig()))
				return err
			}
			return a.printJSON(r)
		},
	}
	chartFlag(cmd)
	return cmd
}

// newAspectsCmd creates the "aspects" command.
func (a *app) newAspectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aspects",
		Short: "List the aspects on one house",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("house")
			doc, err := a.loadChart(cmd)
			if err != nil {
				return err
			}
			h := types.House(n)
			aspects, err := jyotish.AspectsOnHouse(doc.Chart, h)
			if err != nil {
				return err
			}
			if a.text() {
				_, err = fmt.Fprint(a.stdout, report.Aspects(h, aspects, a.renderConfig()))
				return err
			}
			return a.printJSON(aspects)
		},
	}
	chartFlag(cmd)
	cmd.Flags().Int("house", 0, "House number, 1..12 (required)")
	_ = cmd.MarkFlagRequired("house")
	return cmd
}

// analysis is the JSON shape of "analyze".
type analysis struct {
	Name string `json:"name"`
	*jyotish.Result
}

// newAnalyzeCmd creates the "analyze" command.
func (a *app) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report houses and Arudha padas together",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadChart(cmd)
			if err != nil {
				return err
			}
			an, err := a.newAnalyzer()
			if err != nil {
				return err
			}
			res, err := an.Analyze(cmd.Context(), doc.Chart)
			if err != nil {
				return err
			}
			return a.printResult(doc.Name, res)
		},
	}
	chartFlag(cmd)
	return cmd
}

func (a *app) printResult(name string, res *jyotish.Result) error {
	if !a.text() {
		return a.printJSON(analysis{Name: name, Result: res})
	}
	rc := a.renderConfig()
	_, err := fmt.Fprintf(a.stdout, "%s\n\n%s\n%s", name, report.Houses(res.Houses, rc), report.Arudha(res.Arudha, rc))
	return err
}

// newBatchCmd creates the "batch" command.
func (a *app) newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <chart>...",
		Short: "Analyse several chart documents concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.newAnalyzer()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			items := an.Batch(ctx, args)
			failed := 0
			for _, it := range items {
				if it.Err != nil {
					failed++
					a.log.Warn("chart failed", "path", it.Path, "err", it.Err)
				}
			}

			if a.text() {
				for _, it := range items {
					if it.Result == nil {
						fmt.Fprintf(a.stdout, "%s: %s\n\n", it.Path, it.Error)
						continue
					}
					if err := a.printResult(it.Name, it.Result); err != nil {
						return err
					}
					fmt.Fprintln(a.stdout)
				}
			} else if err := a.printJSON(items); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d charts failed", failed, len(items))
			}
			return nil
		},
	}
}
