// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"fmt"
	"math"
)

// Error sentinels shared by every entry point.
var (
	// ErrMalformedChart marks a chart the engine refuses to compute.
	ErrMalformedChart = errors.New("malformed chart")
	// ErrUnknownSign marks an unrecognised sign name or index.
	ErrUnknownSign = errors.New("unknown sign")
	// ErrUnknownPlanet marks an unrecognised planet name or index.
	ErrUnknownPlanet = errors.New("unknown planet")
	// ErrUnknownHouse marks a house number outside 1..12.
	ErrUnknownHouse = errors.New("unknown house")
)

// Position is a planet's place in the chart.
type Position struct {
	Longitude  float64 `json:"longitude"`            // Sidereal longitude in degrees, [0,360)
	Sign       Sign    `json:"sign"`                 // As supplied; engines derive the occupied sign from Longitude
	Dignity    Dignity `json:"dignity,omitempty"`    // Precomputed dignity (DignityUnknown if not supplied)
	Retrograde bool    `json:"retrograde,omitempty"` // Informational only
}

// Ascendant is the rising point that anchors house numbering. Sign must be
// the sign holding Longitude: house signs and lords are counted from Sign
// while planets are placed into houses from Longitude.
type Ascendant struct {
	Sign      Sign    `json:"sign"`      // Sign of house 1
	Longitude float64 `json:"longitude"` // Degrees, [0,360)
}

// Chart is the normalised, read-only input to every computation. Build it
// with NewChart; the zero value is not a valid chart.
type Chart struct {
	Ascendant Ascendant
	positions map[Planet]Position
	valid     bool
}

// NewChart validates the ascendant and positions and returns an immutable
// chart. A planet missing from positions is not an error; it is reported as
// absent by the engines.
func NewChart(asc Ascendant, positions map[Planet]Position) (Chart, error) {
	if err := asc.validate(); err != nil {
		return Chart{}, err
	}

	c := Chart{
		Ascendant: asc,
		positions: make(map[Planet]Position, len(positions)),
		valid:     true,
	}
	for p := range positions {
		if !p.Valid() {
			return Chart{}, fmt.Errorf("%w: %w: %d", ErrMalformedChart, ErrUnknownPlanet, int(p))
		}
	}
	for _, p := range Planets() {
		pos, ok := positions[p]
		if !ok {
			continue
		}
		if err := validateLongitude(p.String(), pos.Longitude); err != nil {
			return Chart{}, err
		}
		c.positions[p] = pos
	}
	return c, nil
}

// Validate reports whether the chart was built by NewChart and its
// ascendant has not since been changed to an unusable value.
func (c Chart) Validate() error {
	if !c.valid {
		return fmt.Errorf("%w: ascendant missing", ErrMalformedChart)
	}
	return c.Ascendant.validate()
}

// Position returns the planet's position and whether the chart has it.
func (c Chart) Position(p Planet) (Position, bool) {
	pos, ok := c.positions[p]
	return pos, ok
}

// Present returns the planets that have positions, in Planets() order.
func (c Chart) Present() []Planet {
	out := make([]Planet, 0, len(c.positions))
	for _, p := range Planets() {
		if _, ok := c.positions[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (a Ascendant) validate() error {
	if err := validateLongitude("ascendant", a.Longitude); err != nil {
		return err
	}
	if a.Longitude >= 360 || a.Longitude < 0 {
		return fmt.Errorf("%w: ascendant longitude %v outside [0,360)", ErrMalformedChart, a.Longitude)
	}
	if !a.Sign.Valid() {
		return fmt.Errorf("%w: ascendant: %w: %d", ErrMalformedChart, ErrUnknownSign, int(a.Sign))
	}
	if held := Sign(int(a.Longitude/30) % SignCount); held != a.Sign {
		return fmt.Errorf("%w: ascendant sign %s does not hold longitude %v (%s)", ErrMalformedChart, a.Sign, a.Longitude, held)
	}
	return nil
}

func validateLongitude(what string, lon float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("%w: %s longitude is not a finite number", ErrMalformedChart, what)
	}
	return nil
}
