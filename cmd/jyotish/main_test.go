// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const chartYAML = `
name: aries rising
ascendant: {sign: Aries, longitude: 0}
planets:
  Mars: 195
  Jupiter: 280
  Saturn: 5
`

func writeChart(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "jyotish "+version+"\n", out)
}

func TestHouses_JSON(t *testing.T) {
	path := writeChart(t, t.TempDir(), "natal.yaml", chartYAML)
	out, _, err := execute(t, "houses", "-c", path, "--rank-size", "4")
	require.NoError(t, err)

	var r types.HouseReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Len(t, r.Houses, 12)
	assert.Len(t, r.Ranking.Strongest, 4)
}

func TestArudha_Text(t *testing.T) {
	path := writeChart(t, t.TempDir(), "natal.yaml", chartYAML)
	out, _, err := execute(t, "arudha", "-c", path, "--format", "text", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Arudha Lagna: house 10, Capricorn")
}

func TestArudha_JSON(t *testing.T) {
	path := writeChart(t, t.TempDir(), "natal.yaml", chartYAML)
	out, _, err := execute(t, "arudha", "-c", path)
	require.NoError(t, err)

	var r struct {
		Padas map[string]struct {
			Corrected int    `json:"corrected"`
			Sign      string `json:"sign"`
		} `json:"padas"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 10, r.Padas["1"].Corrected)
	assert.Equal(t, "Capricorn", r.Padas["1"].Sign)
}

func TestAspects(t *testing.T) {
	path := writeChart(t, t.TempDir(), "natal.yaml", chartYAML)

	out, _, err := execute(t, "aspects", "-c", path, "--house", "10", "--format", "text", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Aspects on house 10")
	assert.Contains(t, out, "drishti (4th)")

	_, _, err = execute(t, "aspects", "-c", path, "--house", "13")
	assert.ErrorIs(t, err, types.ErrUnknownHouse)

	_, _, err = execute(t, "aspects", "-c", path)
	assert.Error(t, err, "house is required")
}

func TestAnalyze(t *testing.T) {
	path := writeChart(t, t.TempDir(), "natal.yaml", chartYAML)
	out, _, err := execute(t, "analyze", "-c", path, "--skip-aspects")
	require.NoError(t, err)

	var r struct {
		Name   string            `json:"name"`
		Houses types.HouseReport `json:"houses"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "aries rising", r.Name)
	for _, h := range r.Houses.Houses {
		assert.Empty(t, h.Aspects)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "analyze")
	assert.Error(t, err, "chart is required")

	bad := writeChart(t, dir, "bad.yaml", "planets: {Sun: 10}\n")
	_, _, err = execute(t, "analyze", "-c", bad)
	assert.ErrorIs(t, err, types.ErrMalformedChart)

	good := writeChart(t, dir, "natal.yaml", chartYAML)
	_, _, err = execute(t, "analyze", "-c", good, "--format", "xml")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeChart(t, dir, "natal.yaml", chartYAML)
	cfg := writeChart(t, dir, "settings.yaml", "format: text\nplain: true\nlog_level: debug\n")

	out, stderr, err := execute(t, "houses", "-c", path, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Strongest:")
	assert.Contains(t, stderr, "chart loaded")

	_, _, err = execute(t, "houses", "-c", path, "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeChart(t, dir, "a.yaml", chartYAML)
	other := writeChart(t, dir, "b.json", `{"ascendant": {"sign": "Leo", "longitude": 130}, "planets": [{"name": "Sun", "longitude": 140}]}`)

	out, _, err := execute(t, "batch", good, other, "--workers", "2")
	require.NoError(t, err)

	var items []struct {
		Path   string          `json:"path"`
		Name   string          `json:"name"`
		Result json.RawMessage `json:"result"`
		Error  string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "aries rising", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
	assert.NotEmpty(t, items[1].Result)
}

func TestBatch_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeChart(t, dir, "a.yaml", chartYAML)
	bad := writeChart(t, dir, "bad.toml", "name = \"no ascendant\"\n")

	out, stderr, err := execute(t, "batch", good, bad, "--format", "text", "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 charts failed")
	assert.Contains(t, out, "aries rising")
	assert.Contains(t, out, bad+": ")
	assert.Contains(t, stderr, "chart failed")
}

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeChart(t, dir, "natal.yaml", chartYAML)

	var stdout, stderr syncBuffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"watch", "-c", path, "--debounce", "20ms", "--format", "text", "--plain"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Count(stdout.String(), "aries rising") == 1
	}, 5*time.Second, 10*time.Millisecond, "initial analysis")

	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(chartYAML, "aries rising", "edited", 1)), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "edited")
	}, 5*time.Second, 10*time.Millisecond, "re-analysis after edit")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_NoPaths(t *testing.T) {
	_, _, err := execute(t, "watch")
	assert.Error(t, err)
}
