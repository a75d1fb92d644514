// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package zodiac

import (
	"testing"

	"github.com/petar-djukic/go-jyotish/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-30, 330},
		{-720, 0},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "in=%v", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestSignOfLongitude(t *testing.T) {
	tests := []struct {
		lon  float64
		want types.Sign
	}{
		{0, types.Aries},
		{29.999, types.Aries},
		{30, types.Taurus},
		{275, types.Capricorn},
		{359.99, types.Pisces},
		{360, types.Aries},
		{-1, types.Pisces},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SignOfLongitude(tt.lon), "lon=%v", tt.lon)
	}
}

func TestHouseOfLongitude_TotalCoverage(t *testing.T) {
	for asc := 0.0; asc < 360; asc += 7.25 {
		counts := map[types.House]int{}
		for lon := 0.0; lon < 360; lon += 0.5 {
			h := HouseOfLongitude(lon, asc)
			assert.True(t, h.Valid(), "lon=%v asc=%v", lon, asc)
			counts[h]++
		}
		assert.Len(t, counts, types.HouseCount, "asc=%v", asc)
	}
}

func TestHouseOfLongitude_FromAscendantDegree(t *testing.T) {
	assert.Equal(t, types.House(1), HouseOfLongitude(15, 15))
	assert.Equal(t, types.House(12), HouseOfLongitude(14.9, 15))
	assert.Equal(t, types.House(2), HouseOfLongitude(45, 15))
	assert.Equal(t, types.House(7), HouseOfLongitude(200, 15))
	assert.Equal(t, types.House(1), HouseOfLongitude(10, 350))
}

func TestHouseDistance_Inclusive(t *testing.T) {
	tests := []struct {
		from, to types.House
		want     int
	}{
		{1, 1, 1},
		{1, 2, 2},
		{1, 7, 7},
		{7, 1, 7},
		{12, 1, 2},
		{3, 2, 12},
		{4, 1, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HouseDistance(tt.from, tt.to), "from=%d to=%d", tt.from, tt.to)
	}
}

func TestHouseDistance_SelfIsOne(t *testing.T) {
	for _, h := range types.Houses() {
		assert.Equal(t, 1, HouseDistance(h, h), "house %d", h)
		assert.Equal(t, h, HouseByOffset(h, 1))
	}
}

func TestHouseDistance_NeverZero(t *testing.T) {
	for _, from := range types.Houses() {
		for _, to := range types.Houses() {
			d := HouseDistance(from, to)
			assert.GreaterOrEqual(t, d, 1)
			assert.LessOrEqual(t, d, 12)
		}
	}
}

func TestHouseByOffset(t *testing.T) {
	tests := []struct {
		start    types.House
		distance int
		want     types.House
	}{
		{1, 1, 1},
		{1, 10, 10},
		{7, 7, 1},
		{12, 2, 1},
		{10, 10, 7},
		{5, 12, 4},
		{5, 13, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HouseByOffset(tt.start, tt.distance), "start=%d d=%d", tt.start, tt.distance)
	}
}

func TestHouseDistance_RoundTripsOffset(t *testing.T) {
	for _, h := range types.Houses() {
		for d := 1; d <= 12; d++ {
			assert.Equal(t, d, HouseDistance(h, HouseByOffset(h, d)), "h=%d d=%d", h, d)
		}
		for _, x := range types.Houses() {
			assert.Equal(t, x, HouseByOffset(h, HouseDistance(h, x)))
		}
	}
}

func TestPrimitives_PanicOnUnknownHouse(t *testing.T) {
	assert.Panics(t, func() { HouseDistance(0, 1) })
	assert.Panics(t, func() { HouseDistance(1, 13) })
	assert.Panics(t, func() { HouseByOffset(13, 1) })
	assert.Panics(t, func() { SignOfHouse(types.Aries, 0) })
	assert.Panics(t, func() { SignOfHouse(types.Sign(12), 1) })
}

func TestSignOfHouse(t *testing.T) {
	assert.Equal(t, types.Aries, SignOfHouse(types.Aries, 1))
	assert.Equal(t, types.Capricorn, SignOfHouse(types.Aries, 10))
	assert.Equal(t, types.Aries, SignOfHouse(types.Pisces, 2))
	assert.Equal(t, types.Sagittarius, SignOfHouse(types.Leo, 5))

	seen := map[types.Sign]bool{}
	for _, h := range types.Houses() {
		seen[SignOfHouse(types.Virgo, h)] = true
	}
	assert.Len(t, seen, types.SignCount)
}

func TestHouseCentre(t *testing.T) {
	assert.InDelta(t, 15.0, HouseCentre(0, 1), 1e-9)
	assert.InDelta(t, 195.0, HouseCentre(0, 7), 1e-9)
	assert.InDelta(t, 5.0, HouseCentre(320, 2), 1e-9)
}

func TestSeparation(t *testing.T) {
	assert.InDelta(t, 10.0, Separation(355, 5), 1e-9)
	assert.InDelta(t, 180.0, Separation(0, 180), 1e-9)
	assert.InDelta(t, 90.0, Separation(45, 315), 1e-9)
	assert.InDelta(t, 0.0, Separation(120, 480), 1e-9)
}
