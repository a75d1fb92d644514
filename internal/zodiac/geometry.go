// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package zodiac holds the wheel arithmetic and static reference tables that
// every engine builds on. Higher packages must go through HouseDistance and
// HouseByOffset rather than doing their own modular arithmetic.
package zodiac

import (
	"fmt"
	"math"

	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const (
	fullCircle = 360.0
	signArc    = 30.0
)

// NormalizeDegrees maps any finite angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	r := math.Mod(deg, fullCircle)
	if r < 0 {
		r += fullCircle
	}
	// -1e-15 + 360 rounds to 360.
	if r >= fullCircle {
		r = 0
	}
	return r
}

// SignOfLongitude returns the sign containing the longitude.
func SignOfLongitude(lon float64) types.Sign {
	return types.Sign(int(math.Floor(NormalizeDegrees(lon)/signArc)) % types.SignCount)
}

// DegreeInSign returns the offset of the longitude within its sign, [0,30).
func DegreeInSign(lon float64) float64 {
	return math.Mod(NormalizeDegrees(lon), signArc)
}

// HouseOfLongitude returns the house holding lon for an ascendant at asc.
// Houses are equal 30 degree arcs measured from the ascendant degree.
func HouseOfLongitude(lon, asc float64) types.House {
	idx := int(math.Floor(NormalizeDegrees(lon-asc)/signArc)) % types.HouseCount
	return types.House(idx + 1)
}

// HouseDistance counts from one house to another inclusively: a house is
// 1 from itself, the next house is 2, the opposite house is 7. The result is
// always in 1..12. Self-distance is 1, not a full cycle of 12: the Arudha
// projection depends on this.
func HouseDistance(from, to types.House) int {
	mustHouse(from)
	mustHouse(to)
	d := int(to-from) + 1
	if d <= 0 {
		d += types.HouseCount
	}
	return d
}

// HouseByOffset returns the house reached by counting distance houses from
// start, start itself being the first. HouseByOffset(h, HouseDistance(h, x))
// is x for every pair of houses.
func HouseByOffset(start types.House, distance int) types.House {
	mustHouse(start)
	idx := (int(start) - 1 + distance - 1) % types.HouseCount
	if idx < 0 {
		idx += types.HouseCount
	}
	return types.House(idx + 1)
}

// SignOfHouse returns the sign on house h, counted forward from the
// ascendant sign.
func SignOfHouse(ascSign types.Sign, h types.House) types.Sign {
	mustHouse(h)
	mustSign(ascSign)
	return types.Sign((int(ascSign) + int(h) - 1) % types.SignCount)
}

// HouseCentre returns the midpoint longitude of house h.
func HouseCentre(asc float64, h types.House) float64 {
	mustHouse(h)
	return NormalizeDegrees(asc + float64(h-1)*signArc + signArc/2)
}

// Separation is the shorter arc between two longitudes, [0,180].
func Separation(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	return math.Min(d, fullCircle-d)
}

func mustHouse(h types.House) {
	if !h.Valid() {
		panic(fmt.Sprintf("zodiac: %v: %d", types.ErrUnknownHouse, int(h)))
	}
}

func mustSign(s types.Sign) {
	if !s.Valid() {
		panic(fmt.Sprintf("zodiac: %v: %d", types.ErrUnknownSign, int(s)))
	}
}
