// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package house

import (
	"testing"

	"github.com/petar-djukic/go-jyotish/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLordInfo_MarsInSeventh(t *testing.T) {
	c := newChart(t, ariesRising, map[types.Planet]types.Position{
		types.Mars: {Longitude: 195},
	})

	first := LordInfo(c, 1)
	require.NotNil(t, first)
	assert.Equal(t, types.HouseLordInfo{
		Planet:          types.Mars,
		CurrentHouse:    7,
		CurrentSign:     types.Libra,
		Dignity:         types.Neutral,
		IsInOwnHouse:    false,
		DistanceFromOwn: 7,
		Placement:       types.PlacementKendra,
		StrengthScore:   4,
	}, *first)

	// Mars also rules Scorpio on house 8; house 7 is the 12th from there.
	eighth := LordInfo(c, 8)
	require.NotNil(t, eighth)
	assert.Equal(t, 12, eighth.DistanceFromOwn)
	assert.Equal(t, types.PlacementDusthana, eighth.Placement)

	assert.Nil(t, LordInfo(c, 2), "Venus has no position")
}

func TestPlacementOf(t *testing.T) {
	want := map[int]types.PlacementKind{
		1: types.PlacementSelf, 2: types.PlacementOther, 3: types.PlacementOther,
		4: types.PlacementKendra, 5: types.PlacementTrikona, 6: types.PlacementDusthana,
		7: types.PlacementKendra, 8: types.PlacementDusthana, 9: types.PlacementTrikona,
		10: types.PlacementKendra, 11: types.PlacementOther, 12: types.PlacementDusthana,
	}
	for d, kind := range want {
		assert.Equal(t, kind, placementOf(d), "distance %d", d)
	}
}

func TestLordScore(t *testing.T) {
	tests := []struct {
		name    string
		dignity types.Dignity
		current types.House
		want    int
	}{
		{"exalted in lagna hits the ceiling", types.Exalted, 1, 8},
		{"own sign in trine", types.OwnSign, 9, 6},
		{"neutral in other", types.Neutral, 2, 3},
		{"debilitated in dusthana clamps to floor", types.Debilitated, 8, 1},
		{"unknown counts as zero", types.DignityUnknown, 10, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lordScore(tt.dignity, tt.current))
		})
	}
}
