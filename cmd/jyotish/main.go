// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command jyotish analyses chart documents from the command line.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-jyotish/internal/config"
	"github.com/petar-djukic/go-jyotish/internal/report"
)

const version = "0.1.0"

// app carries the state shared by every command. Each root command gets its
// own viper instance so tests do not leak settings into each other.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "jyotish",
		Short:         "Vedic chart analysis",
		Long:          "jyotish reads a chart document (YAML, TOML or JSON) and reports house strengths, Arudha padas and aspects.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default ./.jyotish.yaml)")
	pf.String("format", config.FormatJSON, "Output format: json or text")
	pf.Int("workers", 4, "Concurrent charts in batch mode")
	pf.Int("rank-size", 3, "Houses listed as strongest and weakest")
	pf.Bool("skip-aspects", false, "Omit per-house aspect lists")
	pf.String("metrics-addr", "", "Serve prometheus metrics on this address (watch only)")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.BoolP("verbose", "v", false, "Debug logging")
	pf.Bool("plain", false, "Text output without colours")

	// Bind flags to viper.
	for key, flag := range map[string]string{
		"config":       "config",
		"plain":        "plain",
		"format":       "format",
		"workers":      "workers",
		"rank_size":    "rank-size",
		"skip_aspects": "skip-aspects",
		"metrics_addr": "metrics-addr",
		"log_level":    "log-level",
		"verbose":      "verbose",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	// Env vars: JYOTISH_FORMAT, JYOTISH_WORKERS, etc.
	a.v.SetEnvPrefix("JYOTISH")
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		a.newHousesCmd(),
		a.newArudhaCmd(),
		a.newAspectsCmd(),
		a.newAnalyzeCmd(),
		a.newBatchCmd(),
		a.newWatchCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// init reads the optional config file and resolves the settings.
func (a *app) init() error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		a.v.SetConfigName(".jyotish")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := a.v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	a.log.Debug("config resolved", "file", a.v.ConfigFileUsed(), "format", cfg.Format, "workers", cfg.Workers)
	return nil
}

func (a *app) text() bool {
	return a.cfg.Format == config.FormatText
}

func (a *app) renderConfig() report.Config {
	return report.Config{Plain: a.cfg.Plain}
}

// printJSON writes v as indented JSON to stdout.
func (a *app) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print jyotish version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jyotish %s\n", version)
		},
	}
}
