// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// HouseNature is the classical nature recorded for a house in the
// signification table.
type HouseNature string

const (
	NatureKendra   HouseNature = "kendra"
	NatureTrikona  HouseNature = "trikona"
	NatureDusthana HouseNature = "dusthana"
	NatureUpachaya HouseNature = "upachaya"
	NatureMaraka   HouseNature = "maraka"
)

// Purushartha is the life aim a house serves.
type Purushartha string

const (
	Dharma Purushartha = "dharma"
	Artha  Purushartha = "artha"
	Kama   Purushartha = "kama"
	Moksha Purushartha = "moksha"
)

// HouseSignification is read-only reference data for one house.
type HouseSignification struct {
	House          House       `json:"house"`
	Name           string      `json:"name"`
	Significations []string    `json:"significations"`
	Nature         HouseNature `json:"nature"`
	Purushartha    Purushartha `json:"purushartha"`
	Karaka         Planet      `json:"karaka"`
}

// Category is a house-number-keyed grouping used in scoring. A house may
// belong to several categories (house 1 is angular and trine).
type Category string

const (
	CategoryAngular   Category = "angular"   // 1, 4, 7, 10
	CategoryTrine     Category = "trine"     // 1, 5, 9
	CategoryDifficult Category = "difficult" // 6, 8, 12
	CategoryGrowth    Category = "growth"    // 3, 6, 10, 11
)

// Grade is the presentation label attached to a strength score.
type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeAverage   Grade = "Average"
	GradeWeak      Grade = "Weak"
	GradeVeryWeak  Grade = "Very Weak"
)

// PlacementKind classifies where a lord sits counted from the house it rules.
type PlacementKind string

const (
	PlacementSelf     PlacementKind = "self"
	PlacementKendra   PlacementKind = "kendra"
	PlacementTrikona  PlacementKind = "trikona"
	PlacementDusthana PlacementKind = "dusthana"
	PlacementOther    PlacementKind = "other"
)

// HouseLordInfo describes the ruling planet of a house and where it sits.
// It is derived fresh per chart.
type HouseLordInfo struct {
	Planet          Planet        `json:"planet"`
	CurrentHouse    House         `json:"current_house"`
	CurrentSign     Sign          `json:"current_sign"`
	Dignity         Dignity       `json:"dignity"`
	IsInOwnHouse    bool          `json:"is_in_own_house"`
	DistanceFromOwn int           `json:"distance_from_own"` // Inclusive count from the ruled house, 1..12
	Placement       PlacementKind `json:"placement"`
	StrengthScore   int           `json:"strength_score"` // 1..8
}

// StrengthComponents breaks a house strength into its additive terms before
// clamping.
type StrengthComponents struct {
	Base      int `json:"base"`
	Dignity   int `json:"dignity"`    // Lord dignity term
	OwnHouse  int `json:"own_house"`  // Lord in the house it rules
	LordAngle int `json:"lord_angle"` // Lord angular/trine from own house
	Occupants int `json:"occupants"`
	Category  int `json:"category"`
	Raw       int `json:"raw"` // Sum before clamping
}

// HouseAnalysis is the per-house output of the strength engine.
type HouseAnalysis struct {
	House         House              `json:"house"`
	Sign          Sign               `json:"sign"`
	Signification HouseSignification `json:"signification"`
	Categories    []Category         `json:"categories"`
	LordPlanet    Planet             `json:"lord_planet"`
	Lord          *HouseLordInfo     `json:"lord"` // nil when the lord has no position
	Occupants     []Planet           `json:"occupants"`
	Aspects       []AspectResult     `json:"aspects"`
	Strength      int                `json:"strength"` // 1..10
	Grade         Grade              `json:"grade"`
	Components    StrengthComponents `json:"components"`
}

// HouseRank is one entry of a strength ranking.
type HouseRank struct {
	House    House `json:"house"`
	Strength int   `json:"strength"`
	Grade    Grade `json:"grade"`
}

// Ranking lists the strongest and weakest houses.
type Ranking struct {
	Strongest []HouseRank `json:"strongest"` // Descending strength, ties by house number
	Weakest   []HouseRank `json:"weakest"`   // Ascending strength, ties by house number
	Ordered   []HouseRank `json:"ordered"`   // All twelve, descending
}

// CategoryAverages holds mean strength per house category.
type CategoryAverages struct {
	Angular   float64 `json:"angular"`
	Trine     float64 `json:"trine"`
	Difficult float64 `json:"difficult"`
	Growth    float64 `json:"growth"`
}

// LordGroup summarises the lords of a set of houses. Absent lords are
// counted in Houses but not in Present or Average.
type LordGroup struct {
	Houses  []House `json:"houses"`
	Present int     `json:"present"`
	Average float64 `json:"average"` // Mean lord StrengthScore over present lords; 0 when none
}

// LordGroups holds the classical lord groupings.
type LordGroups struct {
	DharmaTrikona LordGroup `json:"dharma_trikona"`
	Kendra        LordGroup `json:"kendra"`
	Dusthana      LordGroup `json:"dusthana"`
}

// PlanetPlacement is a present planet's house, sign and dignity.
type PlanetPlacement struct {
	Planet  Planet  `json:"planet"`
	House   House   `json:"house"`
	Sign    Sign    `json:"sign"`
	Dignity Dignity `json:"dignity"`
}

// HouseReport is the output of a full house analysis.
type HouseReport struct {
	Houses           []HouseAnalysis   `json:"houses"` // Twelve entries, house 1 first
	Ranking          Ranking           `json:"ranking"`
	CategoryAverages CategoryAverages  `json:"category_averages"`
	LordGroups       LordGroups        `json:"lord_groups"`
	Placements       []PlanetPlacement `json:"placements"`
}

// House returns the analysis for h.
func (r *HouseReport) House(h House) (HouseAnalysis, bool) {
	if !h.Valid() || len(r.Houses) != HouseCount {
		return HouseAnalysis{}, false
	}
	return r.Houses[h-1], true
}
