// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package chart decodes chart documents (YAML, TOML or JSON) into a
// validated types.Chart. Planet positions may be written as a map keyed by
// planet name or as a list of entries with a name field; a bare number is
// taken as a longitude. Every shape is normalised here so the engines only
// ever see types.Chart.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-jyotish/internal/zodiac"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

// Format is a chart document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported chart format")

// Document is a decoded chart file.
type Document struct {
	Name  string      // Optional label from the document, else the file base name
	Path  string      // Source path; empty for Decode
	Chart types.Chart // Validated chart
}

type rawDocument struct {
	Name      string        `mapstructure:"name"`
	Ascendant *rawAscendant `mapstructure:"ascendant"`
	Planets   any           `mapstructure:"planets"`
}

type rawAscendant struct {
	Sign      string   `mapstructure:"sign"`
	Longitude *float64 `mapstructure:"longitude"`
}

type rawPosition struct {
	Name       string   `mapstructure:"name"`
	Longitude  *float64 `mapstructure:"longitude"`
	Sign       string   `mapstructure:"sign"`
	Dignity    string   `mapstructure:"dignity"`
	Retrograde bool     `mapstructure:"retrograde"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and decodes the chart document at path.
func Load(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading chart %s: %w", path, err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Decode parses data in the given format and builds the chart.
func Decode(data []byte, format Format) (Document, error) {
	tree := map[string]any{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &tree)
	case FormatTOML:
		err = toml.Unmarshal(data, &tree)
	case FormatJSON:
		err = json.Unmarshal(data, &tree)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Document{}, fmt.Errorf("%w: parsing %s: %v", types.ErrMalformedChart, format, err)
	}

	var raw rawDocument
	if err := decodeStrict(tree, &raw); err != nil {
		return Document{}, err
	}

	asc, err := buildAscendant(raw.Ascendant)
	if err != nil {
		return Document{}, err
	}
	positions, err := buildPositions(raw.Planets)
	if err != nil {
		return Document{}, err
	}
	c, err := types.NewChart(asc, positions)
	if err != nil {
		return Document{}, err
	}
	return Document{Name: raw.Name, Chart: c}, nil
}

func buildAscendant(raw *rawAscendant) (types.Ascendant, error) {
	if raw == nil || raw.Longitude == nil {
		return types.Ascendant{}, fmt.Errorf("%w: ascendant missing", types.ErrMalformedChart)
	}
	asc := types.Ascendant{Longitude: *raw.Longitude}
	if raw.Sign == "" {
		asc.Sign = zodiac.SignOfLongitude(asc.Longitude)
		return asc, nil
	}
	s, err := types.ParseSign(raw.Sign)
	if err != nil {
		return types.Ascendant{}, fmt.Errorf("%w: ascendant: %w", types.ErrMalformedChart, err)
	}
	asc.Sign = s
	return asc, nil
}

// buildPositions accepts a map keyed by planet name or a list of named
// entries. Either form allows a bare longitude in place of an entry.
func buildPositions(v any) (map[types.Planet]types.Position, error) {
	out := map[types.Planet]types.Position{}
	switch planets := v.(type) {
	case nil:
		return out, nil
	case map[string]any:
		for _, name := range slices.Sorted(maps.Keys(planets)) {
			raw, err := decodeEntry(planets[name])
			if err != nil {
				return nil, fmt.Errorf("planet %s: %w", name, err)
			}
			raw.Name = name
			if err := addPosition(out, raw); err != nil {
				return nil, err
			}
		}
	case []any:
		for i, entry := range planets {
			raw, err := decodeEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("planet #%d: %w", i+1, err)
			}
			if raw.Name == "" {
				return nil, fmt.Errorf("%w: planet #%d has no name", types.ErrMalformedChart, i+1)
			}
			if err := addPosition(out, raw); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: planets must be a map or a list, got %T", types.ErrMalformedChart, v)
	}
	return out, nil
}

func decodeEntry(entry any) (rawPosition, error) {
	var raw rawPosition
	if _, ok := entry.(map[string]any); ok {
		if err := decodeStrict(entry, &raw); err != nil {
			return rawPosition{}, err
		}
		return raw, nil
	}
	var lon float64
	if err := mapstructure.Decode(entry, &lon); err != nil {
		return rawPosition{}, fmt.Errorf("%w: expected a longitude or a position: %v", types.ErrMalformedChart, err)
	}
	raw.Longitude = &lon
	return raw, nil
}

func addPosition(out map[types.Planet]types.Position, raw rawPosition) error {
	p, err := types.ParsePlanet(raw.Name)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrMalformedChart, err)
	}
	if _, dup := out[p]; dup {
		return fmt.Errorf("%w: %s listed twice", types.ErrMalformedChart, p)
	}
	if raw.Longitude == nil {
		return fmt.Errorf("%w: %s has no longitude", types.ErrMalformedChart, p)
	}

	pos := types.Position{Longitude: *raw.Longitude, Retrograde: raw.Retrograde}
	if raw.Sign == "" {
		pos.Sign = zodiac.SignOfLongitude(pos.Longitude)
	} else if pos.Sign, err = types.ParseSign(raw.Sign); err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrMalformedChart, p, err)
	}
	if pos.Dignity, err = types.ParseDignity(raw.Dignity); err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	out[p] = pos
	return nil
}

// decodeStrict rejects keys the target does not declare so typos surface
// instead of silently dropping data.
func decodeStrict(input, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("%w: %v", types.ErrMalformedChart, err)
	}
	return nil
}
