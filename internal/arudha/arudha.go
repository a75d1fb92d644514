// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package arudha computes Arudha padas: the image of a house obtained by
// counting from the house to its lord and the same count again from the
// lord. A pada that lands on its own house or the 7th from it is moved to
// the 10th from there, once.
package arudha

import (
	"github.com/petar-djukic/go-jyotish/internal/zodiac"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

// correctionOffset is the "10th from there" rule.
const correctionOffset = 10

// Projection is the house arithmetic of one pada, independent of any chart.
type Projection struct {
	Distance  int
	Candidate types.House
	Corrected types.House
	Kind      types.ExceptionKind
}

// Project counts from origin to the lord's house and projects the same
// count forward from the lord's house, then applies the correction rules.
// The corrected house is not re-checked.
func Project(origin, lordHouse types.House) Projection {
	distance := zodiac.HouseDistance(origin, lordHouse)
	candidate := zodiac.HouseByOffset(lordHouse, distance)

	pr := Projection{
		Distance:  distance,
		Candidate: candidate,
		Corrected: candidate,
		Kind:      types.ExceptionNone,
	}
	switch {
	case candidate == origin:
		pr.Corrected = zodiac.HouseByOffset(candidate, correctionOffset)
		pr.Kind = types.ExceptionSelfCoincidence
	case zodiac.HouseDistance(origin, candidate) == 7 || zodiac.HouseDistance(candidate, origin) == 7:
		pr.Corrected = zodiac.HouseByOffset(candidate, correctionOffset)
		pr.Kind = types.ExceptionSeventhCoincides
	}
	return pr
}

// Compute returns the pada of house h. The second result is false when the
// lord of h has no position in the chart.
func Compute(c types.Chart, h types.House) (types.ArudhaResult, bool) {
	lord := zodiac.HouseLord(c.Ascendant.Sign, h)
	pos, ok := c.Position(lord)
	if !ok {
		return types.ArudhaResult{}, false
	}

	lordHouse := zodiac.HouseOfLongitude(pos.Longitude, c.Ascendant.Longitude)
	pr := Project(h, lordHouse)

	return types.ArudhaResult{
		Origin:    h,
		Lord:      lord,
		LordHouse: lordHouse,
		Distance:  pr.Distance,
		Candidate: pr.Candidate,
		Corrected: pr.Corrected,
		Sign:      zodiac.SignOfHouse(c.Ascendant.Sign, pr.Corrected),
		Exception: types.ArudhaException{
			Applied: pr.Kind != types.ExceptionNone,
			Kind:    pr.Kind,
		},
	}, true
}

// Analyze computes all twelve padas and the derived views over them.
func Analyze(c types.Chart) types.ArudhaReport {
	report := types.ArudhaReport{
		Padas:     make(map[types.House]types.ArudhaResult, types.HouseCount),
		Absent:    []types.AbsentPada{},
		Alignment: []types.AlignmentEntry{},
	}

	for _, h := range types.Houses() {
		pada, ok := Compute(c, h)
		if !ok {
			report.Absent = append(report.Absent, types.AbsentPada{
				Origin: h,
				Lord:   zodiac.HouseLord(c.Ascendant.Sign, h),
			})
			continue
		}
		report.Padas[h] = pada
	}

	if al, ok := report.Padas[1]; ok {
		detail := lagnaDetail(c, al)
		report.Lagna = &detail
	}
	report.Patterns = patterns(report.Ordered())
	report.Alignment = alignment(c, report.Ordered())
	return report
}
