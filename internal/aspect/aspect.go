// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package aspect computes the influences planets cast on a house: angular
// aspects measured against the house centre with an orb, and classical
// whole-house aspects (drishti) that ignore degrees.
package aspect

import (
	"math"
	"slices"

	"github.com/petar-djukic/go-jyotish/internal/zodiac"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

type angle struct {
	kind   types.AspectKind
	degree float64
	orb    float64
}

// Kinds are listed in the order results are emitted for one planet.
var angles = []angle{
	{types.Conjunction, 0, 8},
	{types.Sextile, 60, 6},
	{types.Square, 90, 8},
	{types.Trine, 120, 8},
	{types.Opposition, 180, 8},
}

type drishti struct {
	ordinals []int // Houses counted inclusively from the planet's own house
	strength int
}

var specialAspects = map[types.Planet]drishti{
	types.Mars:    {ordinals: []int{4, 7, 8}, strength: 75},
	types.Jupiter: {ordinals: []int{5, 7, 9}, strength: 80},
	types.Saturn:  {ordinals: []int{3, 7, 10}, strength: 70},
	types.Rahu:    {ordinals: []int{5, 7, 9}, strength: 60},
	types.Ketu:    {ordinals: []int{5, 7, 9}, strength: 60},
}

// OnHouse returns every aspect on house h, strongest first. Ties keep planet
// order, then angular kinds before drishti. A chart without planet positions
// yields an empty, non-nil slice.
func OnHouse(c types.Chart, h types.House) []types.AspectResult {
	centre := zodiac.HouseCentre(c.Ascendant.Longitude, h)
	out := []types.AspectResult{}

	for _, p := range c.Present() {
		pos, _ := c.Position(p)
		from := zodiac.HouseOfLongitude(pos.Longitude, c.Ascendant.Longitude)
		sep := zodiac.Separation(pos.Longitude, centre)

		for _, a := range angles {
			orbErr := math.Abs(sep - a.degree)
			if orbErr > a.orb {
				continue
			}
			out = append(out, types.AspectResult{
				Planet:     p,
				House:      h,
				Kind:       a.kind,
				Separation: sep,
				Orb:        orbErr,
				Strength:   orbStrength(orbErr, a.orb),
				FromHouse:  from,
			})
		}

		if ordinal, strength, ok := Casts(p, from, h); ok {
			out = append(out, types.AspectResult{
				Planet:     p,
				House:      h,
				Kind:       types.Drishti,
				Separation: sep,
				Strength:   strength,
				Ordinal:    ordinal,
				FromHouse:  from,
			})
		}
	}

	sortResults(out)
	return out
}

// DrishtiOn returns only the whole-house aspects on house h, strongest first.
func DrishtiOn(c types.Chart, h types.House) []types.AspectResult {
	out := []types.AspectResult{}
	for _, a := range OnHouse(c, h) {
		if a.IsDrishti() {
			out = append(out, a)
		}
	}
	return out
}

// Casts reports whether planet p sitting in house from casts a whole-house
// aspect on house to, with the inclusive ordinal and the fixed strength.
func Casts(p types.Planet, from, to types.House) (ordinal, strength int, ok bool) {
	d, found := specialAspects[p]
	if !found {
		return 0, 0, false
	}
	ordinal = zodiac.HouseDistance(from, to)
	if !slices.Contains(d.ordinals, ordinal) {
		return 0, 0, false
	}
	return ordinal, d.strength, true
}

// Ordinals returns the houses, counted inclusively from its own, that p
// aspects by drishti. Planets without special aspects return nil.
func Ordinals(p types.Planet) []int {
	d, ok := specialAspects[p]
	if !ok {
		return nil
	}
	return slices.Clone(d.ordinals)
}

func orbStrength(orbErr, maxOrb float64) int {
	s := int(math.Round(100 * (1 - orbErr/maxOrb)))
	return max(0, s)
}

func sortResults(rs []types.AspectResult) {
	slices.SortStableFunc(rs, func(a, b types.AspectResult) int {
		if a.Strength != b.Strength {
			return b.Strength - a.Strength
		}
		if a.Planet != b.Planet {
			return int(a.Planet) - int(b.Planet)
		}
		return int(a.Kind) - int(b.Kind)
	})
}
