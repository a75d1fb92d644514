// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package house

import (
	"github.com/petar-djukic/go-jyotish/internal/zodiac"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const (
	lordBase     = 3
	lordScoreMin = 1
	lordScoreMax = 8
)

// LordInfo resolves the lord of house h and where it sits. It returns nil
// when the lord has no position in the chart.
func LordInfo(c types.Chart, h types.House) *types.HouseLordInfo {
	lord := zodiac.HouseLord(c.Ascendant.Sign, h)
	pos, ok := c.Position(lord)
	if !ok {
		return nil
	}

	current := zodiac.HouseOfLongitude(pos.Longitude, c.Ascendant.Longitude)
	distance := zodiac.HouseDistance(h, current)
	dignity := zodiac.ResolveDignity(lord, pos)

	return &types.HouseLordInfo{
		Planet:          lord,
		CurrentHouse:    current,
		CurrentSign:     zodiac.SignOfLongitude(pos.Longitude),
		Dignity:         dignity,
		IsInOwnHouse:    current == h,
		DistanceFromOwn: distance,
		Placement:       placementOf(distance),
		StrengthScore:   lordScore(dignity, current),
	}
}

// placementOf classifies the inclusive distance from the ruled house to the
// lord. Distance 1 is self-placed even though it is also angular and trine.
func placementOf(distance int) types.PlacementKind {
	h := types.House(distance)
	switch {
	case distance == 1:
		return types.PlacementSelf
	case zodiac.IsAngular(h):
		return types.PlacementKendra
	case zodiac.IsTrine(h):
		return types.PlacementTrikona
	case zodiac.IsDifficult(h):
		return types.PlacementDusthana
	default:
		return types.PlacementOther
	}
}

// lordScore rates the lord itself, independent of the house it rules.
func lordScore(d types.Dignity, current types.House) int {
	score := lordBase + dignityTerm(d)
	if zodiac.IsAngular(current) {
		score++
	}
	if zodiac.IsTrine(current) {
		score++
	}
	if zodiac.IsDifficult(current) {
		score--
	}
	return clamp(score, lordScoreMin, lordScoreMax)
}

func dignityTerm(d types.Dignity) int {
	switch d {
	case types.Exalted:
		return 3
	case types.OwnSign:
		return 2
	case types.Debilitated:
		return -2
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
