// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package house scores the twelve houses of a chart. Each house gets a
// bounded integer strength built from its lord's dignity and placement, its
// occupants and its category, plus a ranking and category averages over the
// whole wheel.
package house

import (
	"sort"

	"github.com/petar-djukic/go-jyotish/internal/aspect"
	"github.com/petar-djukic/go-jyotish/internal/zodiac"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const (
	baseStrength    = 5
	minStrength     = 1
	maxStrength     = 10
	defaultRankSize = 3
)

// Config configures a house analysis.
type Config struct {
	RankSize    int  // Houses in the strongest and weakest lists (default 3)
	SkipAspects bool // Leave HouseAnalysis.Aspects empty
}

// Analyze scores every house of c. The chart must already be validated.
func Analyze(c types.Chart, cfg Config) types.HouseReport {
	rankSize := cfg.RankSize
	if rankSize <= 0 || rankSize > types.HouseCount {
		rankSize = defaultRankSize
	}

	houses := make([]types.HouseAnalysis, 0, types.HouseCount)
	for _, h := range types.Houses() {
		houses = append(houses, analyzeHouse(c, h, cfg.SkipAspects))
	}

	return types.HouseReport{
		Houses:           houses,
		Ranking:          rank(houses, rankSize),
		CategoryAverages: categoryAverages(houses),
		LordGroups:       lordGroups(houses),
		Placements:       Placements(c),
	}
}

// AnalyzeHouse scores a single house, aspects included.
func AnalyzeHouse(c types.Chart, h types.House) types.HouseAnalysis {
	return analyzeHouse(c, h, false)
}

func analyzeHouse(c types.Chart, h types.House, skipAspects bool) types.HouseAnalysis {
	lord := LordInfo(c, h)
	occupants := Occupants(c, h)
	comp := strength(h, lord, occupants)
	s := clamp(comp.Raw, minStrength, maxStrength)

	aspects := []types.AspectResult{}
	if !skipAspects {
		aspects = aspect.OnHouse(c, h)
	}

	return types.HouseAnalysis{
		House:         h,
		Sign:          zodiac.SignOfHouse(c.Ascendant.Sign, h),
		Signification: zodiac.Signification(h),
		Categories:    zodiac.Categories(h),
		LordPlanet:    zodiac.HouseLord(c.Ascendant.Sign, h),
		Lord:          lord,
		Occupants:     occupants,
		Aspects:       aspects,
		Strength:      s,
		Grade:         GradeOf(s),
		Components:    comp,
	}
}

// Occupants lists the planets in house h in fixed planet order.
func Occupants(c types.Chart, h types.House) []types.Planet {
	out := []types.Planet{}
	for _, p := range c.Present() {
		pos, _ := c.Position(p)
		if zodiac.HouseOfLongitude(pos.Longitude, c.Ascendant.Longitude) == h {
			out = append(out, p)
		}
	}
	return out
}

// strength adds up the scoring terms for house h. A nil lord contributes
// nothing.
func strength(h types.House, lord *types.HouseLordInfo, occupants []types.Planet) types.StrengthComponents {
	comp := types.StrengthComponents{Base: baseStrength}

	if lord != nil {
		comp.Dignity = dignityTerm(lord.Dignity)
		if lord.IsInOwnHouse {
			comp.OwnHouse = 2
		}
		// A self-placed lord is at distance 1, which is both angular and trine.
		d := types.House(lord.DistanceFromOwn)
		if zodiac.IsAngular(d) || zodiac.IsTrine(d) {
			comp.LordAngle = 1
		}
	}

	angularOrTrine := zodiac.IsAngular(h) || zodiac.IsTrine(h)
	growth := zodiac.IsGrowth(h)
	for _, p := range occupants {
		if angularOrTrine && zodiac.IsBenefic(p) {
			comp.Occupants++
		}
		if growth && zodiac.IsMalefic(p) {
			comp.Occupants++
		}
	}

	if zodiac.IsAngular(h) {
		comp.Category++
	}
	if zodiac.IsTrine(h) {
		comp.Category++
	}
	if zodiac.IsDifficult(h) {
		comp.Category--
	}

	comp.Raw = comp.Base + comp.Dignity + comp.OwnHouse + comp.LordAngle + comp.Occupants + comp.Category
	return comp
}

// GradeOf maps a strength score to its presentation grade.
func GradeOf(strength int) types.Grade {
	switch {
	case strength >= 8:
		return types.GradeExcellent
	case strength >= 6:
		return types.GradeGood
	case strength >= 4:
		return types.GradeAverage
	case strength >= 2:
		return types.GradeWeak
	default:
		return types.GradeVeryWeak
	}
}

func rank(houses []types.HouseAnalysis, n int) types.Ranking {
	ranks := make([]types.HouseRank, len(houses))
	for i, ha := range houses {
		ranks[i] = types.HouseRank{House: ha.House, Strength: ha.Strength, Grade: ha.Grade}
	}

	desc := append([]types.HouseRank(nil), ranks...)
	sort.Slice(desc, func(i, j int) bool {
		if desc[i].Strength != desc[j].Strength {
			return desc[i].Strength > desc[j].Strength
		}
		return desc[i].House < desc[j].House
	})

	asc := append([]types.HouseRank(nil), ranks...)
	sort.Slice(asc, func(i, j int) bool {
		if asc[i].Strength != asc[j].Strength {
			return asc[i].Strength < asc[j].Strength
		}
		return asc[i].House < asc[j].House
	})

	return types.Ranking{
		Strongest: append([]types.HouseRank(nil), desc[:n]...),
		Weakest:   asc[:n],
		Ordered:   desc,
	}
}

func categoryAverages(houses []types.HouseAnalysis) types.CategoryAverages {
	avg := func(c types.Category) float64 {
		hs := zodiac.CategoryHouses(c)
		total := 0
		for _, h := range hs {
			total += houses[h-1].Strength
		}
		return float64(total) / float64(len(hs))
	}
	return types.CategoryAverages{
		Angular:   avg(types.CategoryAngular),
		Trine:     avg(types.CategoryTrine),
		Difficult: avg(types.CategoryDifficult),
		Growth:    avg(types.CategoryGrowth),
	}
}

func lordGroups(houses []types.HouseAnalysis) types.LordGroups {
	group := func(hs []types.House) types.LordGroup {
		g := types.LordGroup{Houses: hs}
		total := 0
		for _, h := range hs {
			if lord := houses[h-1].Lord; lord != nil {
				g.Present++
				total += lord.StrengthScore
			}
		}
		if g.Present > 0 {
			g.Average = float64(total) / float64(g.Present)
		}
		return g
	}
	return types.LordGroups{
		DharmaTrikona: group(zodiac.CategoryHouses(types.CategoryTrine)),
		Kendra:        group(zodiac.CategoryHouses(types.CategoryAngular)),
		Dusthana:      group(zodiac.CategoryHouses(types.CategoryDifficult)),
	}
}

// Placements lists each present planet's house, sign and dignity.
func Placements(c types.Chart) []types.PlanetPlacement {
	out := []types.PlanetPlacement{}
	for _, p := range c.Present() {
		pos, _ := c.Position(p)
		out = append(out, types.PlanetPlacement{
			Planet:  p,
			House:   zodiac.HouseOfLongitude(pos.Longitude, c.Ascendant.Longitude),
			Sign:    zodiac.SignOfLongitude(pos.Longitude),
			Dignity: zodiac.ResolveDignity(p, pos),
		})
	}
	return out
}
