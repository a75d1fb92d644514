// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// ExceptionKind names the correction rule applied to an Arudha candidate.
type ExceptionKind string

const (
	ExceptionNone             ExceptionKind = "none"
	ExceptionSelfCoincidence  ExceptionKind = "selfCoincidence"
	ExceptionSeventhCoincides ExceptionKind = "seventhHouseCoincidence"
)

// ArudhaException records whether a correction fired.
type ArudhaException struct {
	Applied bool          `json:"applied"`
	Kind    ExceptionKind `json:"kind"`
}

// ArudhaResult is the pada of one origin house. Corrected is never the
// origin house and never the 7th from it.
type ArudhaResult struct {
	Origin    House           `json:"origin"`
	Lord      Planet          `json:"lord"`
	LordHouse House           `json:"lord_house"`
	Distance  int             `json:"distance"`  // Inclusive count origin -> lord house
	Candidate House           `json:"candidate"` // Projected before correction
	Corrected House           `json:"corrected"`
	Sign      Sign            `json:"sign"`
	Exception ArudhaException `json:"exception"`
}

// Label returns the conventional pada name: AL for house 1, A2..A12
// otherwise.
func (r ArudhaResult) Label() string {
	return PadaLabel(r.Origin)
}

// PadaLabel returns AL for house 1 and An for the others.
func PadaLabel(h House) string {
	if h == 1 {
		return "AL"
	}
	return fmt.Sprintf("A%d", int(h))
}

// AbsentPada is a pada that could not be computed because its lord has no
// position in the chart.
type AbsentPada struct {
	Origin House  `json:"origin"`
	Lord   Planet `json:"lord"`
}

// DrishtiSource is a planet casting a whole-house aspect on a target.
type DrishtiSource struct {
	Planet    Planet `json:"planet"`
	FromHouse House  `json:"from_house"`
	Ordinal   int    `json:"ordinal"` // Nth house counted inclusively from FromHouse
	Strength  int    `json:"strength"`
}

// HouseOccupancy is a house with its sign and the planets in it.
type HouseOccupancy struct {
	House     House    `json:"house"`
	Sign      Sign     `json:"sign"`
	Occupants []Planet `json:"occupants"`
}

// LagnaDetail describes the Arudha Lagna and its neighbourhood.
type LagnaDetail struct {
	Pada        ArudhaResult    `json:"pada"`
	Occupants   []Planet        `json:"occupants"`
	Drishti     []DrishtiSource `json:"drishti"`
	Sustenance  HouseOccupancy  `json:"sustenance"`  // 2nd from AL
	Expenditure HouseOccupancy  `json:"expenditure"` // 12th from AL
}

// SignCluster is a sign holding two or more padas.
type SignCluster struct {
	Sign  Sign    `json:"sign"`
	Padas []House `json:"padas"` // Origin houses, ascending
}

// PadaPatterns groups padas by origin category and by sign.
type PadaPatterns struct {
	ByNature map[HouseNature][]House `json:"by_nature"` // Origin houses keyed by the nature of the origin
	Clusters []SignCluster           `json:"clusters"`
}

// Domain tags an origin house as public or private for the alignment matrix.
type Domain string

const (
	DomainPublic  Domain = "public"  // 1, 7, 10, 11
	DomainPrivate Domain = "private" // 4, 8, 12
)

// AlignmentEntry compares an origin house with its pada. A pada never shares
// its origin's sign, so agreement is judged by element.
type AlignmentEntry struct {
	Origin      House   `json:"origin"`
	Domain      Domain  `json:"domain"`
	OriginSign  Sign    `json:"origin_sign"`
	PadaSign    Sign    `json:"pada_sign"`
	PadaHouse   House   `json:"pada_house"`
	Distance    int     `json:"distance"` // Inclusive count origin -> pada house
	Element     Element `json:"element"`  // Element of the pada sign
	SameElement bool    `json:"same_element"`
}

// ArudhaReport holds all padas computed for a chart.
type ArudhaReport struct {
	Padas     map[House]ArudhaResult `json:"padas"`
	Absent    []AbsentPada           `json:"absent"`
	Lagna     *LagnaDetail           `json:"lagna"` // nil when the lord of house 1 is absent
	Patterns  PadaPatterns           `json:"patterns"`
	Alignment []AlignmentEntry       `json:"alignment"`
}

// Pada returns the pada for origin house h and whether it was computed.
func (r *ArudhaReport) Pada(h House) (ArudhaResult, bool) {
	p, ok := r.Padas[h]
	return p, ok
}

// ArudhaLagna returns the pada of house 1.
func (r *ArudhaReport) ArudhaLagna() (ArudhaResult, bool) {
	return r.Pada(1)
}

// Ordered returns the computed padas by ascending origin house.
func (r *ArudhaReport) Ordered() []ArudhaResult {
	out := make([]ArudhaResult, 0, len(r.Padas))
	for _, h := range Houses() {
		if p, ok := r.Padas[h]; ok {
			out = append(out, p)
		}
	}
	return out
}
