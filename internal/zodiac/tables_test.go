// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package zodiac

import (
	"testing"

	"github.com/petar-djukic/go-jyotish/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestSignLord(t *testing.T) {
	assert.Equal(t, types.Mars, SignLord(types.Aries))
	assert.Equal(t, types.Moon, SignLord(types.Cancer))
	assert.Equal(t, types.Sun, SignLord(types.Leo))
	assert.Equal(t, types.Saturn, SignLord(types.Aquarius))
	assert.Equal(t, types.Jupiter, SignLord(types.Pisces))
	assert.Equal(t, types.Saturn, HouseLord(types.Aries, 10))
	assert.Equal(t, types.Venus, HouseLord(types.Scorpio, 7))
}

func TestOwnSigns(t *testing.T) {
	assert.Equal(t, []types.Sign{types.Aries, types.Scorpio}, OwnSigns(types.Mars))
	assert.Equal(t, []types.Sign{types.Leo}, OwnSigns(types.Sun))
	assert.Empty(t, OwnSigns(types.Rahu))
}

func TestDignityOf(t *testing.T) {
	tests := []struct {
		name   string
		planet types.Planet
		sign   types.Sign
		want   types.Dignity
	}{
		{"sun exalted", types.Sun, types.Aries, types.Exalted},
		{"sun debilitated", types.Sun, types.Libra, types.Debilitated},
		{"sun own", types.Sun, types.Leo, types.OwnSign},
		{"mercury exaltation beats rulership", types.Mercury, types.Virgo, types.Exalted},
		{"mercury own gemini", types.Mercury, types.Gemini, types.OwnSign},
		{"saturn debilitated aries", types.Saturn, types.Aries, types.Debilitated},
		{"jupiter neutral", types.Jupiter, types.Gemini, types.Neutral},
		{"rahu always neutral", types.Rahu, types.Taurus, types.Neutral},
		{"ketu always neutral", types.Ketu, types.Scorpio, types.Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DignityOf(tt.planet, tt.sign))
		})
	}
}

func TestResolveDignity(t *testing.T) {
	supplied := types.Position{Longitude: 10, Dignity: types.Enemy}
	assert.Equal(t, types.Enemy, ResolveDignity(types.Sun, supplied))

	derived := types.Position{Longitude: 10}
	assert.Equal(t, types.Exalted, ResolveDignity(types.Sun, derived))
}

func TestBeneficMalefic_Partition(t *testing.T) {
	for _, p := range types.Planets() {
		assert.NotEqual(t, IsBenefic(p), IsMalefic(p), "planet %s", p)
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []types.Category{types.CategoryAngular, types.CategoryTrine}, Categories(1))
	assert.Equal(t, []types.Category{types.CategoryDifficult, types.CategoryGrowth}, Categories(6))
	assert.Equal(t, []types.Category{types.CategoryAngular, types.CategoryGrowth}, Categories(10))
	assert.Empty(t, Categories(2))
	assert.True(t, IsTrine(9))
	assert.True(t, IsDifficult(12))
	assert.False(t, IsGrowth(4))
	assert.Equal(t, []types.House{3, 6, 10, 11}, CategoryHouses(types.CategoryGrowth))
}

func TestSignification(t *testing.T) {
	s := Signification(7)
	assert.Equal(t, "Kalatra", s.Name)
	assert.Equal(t, types.NatureKendra, s.Nature)
	assert.Equal(t, types.Kama, s.Purushartha)
	assert.Equal(t, types.Venus, s.Karaka)
	assert.Contains(t, s.Significations, "spouse")

	// Callers get a copy.
	s.Significations[0] = "changed"
	assert.Equal(t, "spouse", Signification(7).Significations[0])

	for _, h := range types.Houses() {
		assert.Equal(t, h, Signification(h).House)
	}
}
