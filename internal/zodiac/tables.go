// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package zodiac

import (
	"slices"

	"github.com/petar-djukic/go-jyotish/pkg/types"
)

var signLords = [types.SignCount]types.Planet{
	types.Mars,    // Aries
	types.Venus,   // Taurus
	types.Mercury, // Gemini
	types.Moon,    // Cancer
	types.Sun,     // Leo
	types.Mercury, // Virgo
	types.Venus,   // Libra
	types.Mars,    // Scorpio
	types.Jupiter, // Sagittarius
	types.Saturn,  // Capricorn
	types.Saturn,  // Aquarius
	types.Jupiter, // Pisces
}

// SignLord returns the planet ruling s.
func SignLord(s types.Sign) types.Planet {
	mustSign(s)
	return signLords[s]
}

// HouseLord returns the planet ruling house h for the given ascendant sign.
func HouseLord(ascSign types.Sign, h types.House) types.Planet {
	return SignLord(SignOfHouse(ascSign, h))
}

// Nodes have no entry.
var exaltation = map[types.Planet]types.Sign{
	types.Sun:     types.Aries,
	types.Moon:    types.Taurus,
	types.Mars:    types.Capricorn,
	types.Mercury: types.Virgo,
	types.Jupiter: types.Cancer,
	types.Venus:   types.Pisces,
	types.Saturn:  types.Libra,
}

var debilitation = map[types.Planet]types.Sign{
	types.Sun:     types.Libra,
	types.Moon:    types.Scorpio,
	types.Mars:    types.Cancer,
	types.Mercury: types.Pisces,
	types.Jupiter: types.Capricorn,
	types.Venus:   types.Virgo,
	types.Saturn:  types.Aries,
}

// ExaltationSign returns the sign where p is exalted.
func ExaltationSign(p types.Planet) (types.Sign, bool) {
	s, ok := exaltation[p]
	return s, ok
}

// DebilitationSign returns the sign where p is debilitated.
func DebilitationSign(p types.Planet) (types.Sign, bool) {
	s, ok := debilitation[p]
	return s, ok
}

// OwnSigns returns the signs p rules, in zodiac order.
func OwnSigns(p types.Planet) []types.Sign {
	var out []types.Sign
	for i, lord := range signLords {
		if lord == p {
			out = append(out, types.Sign(i))
		}
	}
	return out
}

// DignityOf derives p's dignity in sign s. Exaltation takes precedence over
// rulership (Mercury in Virgo is Exalted). Anything else is Neutral.
func DignityOf(p types.Planet, s types.Sign) types.Dignity {
	if ex, ok := exaltation[p]; ok && ex == s {
		return types.Exalted
	}
	if deb, ok := debilitation[p]; ok && deb == s {
		return types.Debilitated
	}
	if p != types.Rahu && p != types.Ketu && SignLord(s) == p {
		return types.OwnSign
	}
	return types.Neutral
}

// ResolveDignity returns the supplied dignity of a position, or derives it
// from the sign the longitude falls in.
func ResolveDignity(p types.Planet, pos types.Position) types.Dignity {
	if pos.Dignity != types.DignityUnknown {
		return pos.Dignity
	}
	return DignityOf(p, SignOfLongitude(pos.Longitude))
}

// IsBenefic reports natural benefics: Jupiter, Venus, Mercury and Moon.
func IsBenefic(p types.Planet) bool {
	switch p {
	case types.Jupiter, types.Venus, types.Mercury, types.Moon:
		return true
	}
	return false
}

// IsMalefic reports natural malefics: Sun, Mars, Saturn and the nodes.
func IsMalefic(p types.Planet) bool {
	switch p {
	case types.Sun, types.Mars, types.Saturn, types.Rahu, types.Ketu:
		return true
	}
	return false
}

var categories = map[types.Category][]types.House{
	types.CategoryAngular:   {1, 4, 7, 10},
	types.CategoryTrine:     {1, 5, 9},
	types.CategoryDifficult: {6, 8, 12},
	types.CategoryGrowth:    {3, 6, 10, 11},
}

var categoryOrder = []types.Category{
	types.CategoryAngular, types.CategoryTrine, types.CategoryDifficult, types.CategoryGrowth,
}

// CategoryHouses returns the houses in category c, ascending.
func CategoryHouses(c types.Category) []types.House {
	return slices.Clone(categories[c])
}

// InCategory reports whether house h belongs to c.
func InCategory(h types.House, c types.Category) bool {
	return slices.Contains(categories[c], h)
}

// Categories lists every category house h belongs to.
func Categories(h types.House) []types.Category {
	mustHouse(h)
	out := []types.Category{}
	for _, c := range categoryOrder {
		if InCategory(h, c) {
			out = append(out, c)
		}
	}
	return out
}

// IsAngular reports kendra houses 1, 4, 7 and 10.
func IsAngular(h types.House) bool { return InCategory(h, types.CategoryAngular) }

// IsTrine reports trikona houses 1, 5 and 9.
func IsTrine(h types.House) bool { return InCategory(h, types.CategoryTrine) }

// IsDifficult reports dusthana houses 6, 8 and 12.
func IsDifficult(h types.House) bool { return InCategory(h, types.CategoryDifficult) }

// IsGrowth reports upachaya houses 3, 6, 10 and 11.
func IsGrowth(h types.House) bool { return InCategory(h, types.CategoryGrowth) }

var significations = [types.HouseCount]types.HouseSignification{
	{House: 1, Name: "Lagna", Nature: types.NatureKendra, Purushartha: types.Dharma, Karaka: types.Sun,
		Significations: []string{"personality", "health", "appearance", "self", "vitality"}},
	{House: 2, Name: "Dhana", Nature: types.NatureMaraka, Purushartha: types.Artha, Karaka: types.Jupiter,
		Significations: []string{"wealth", "family", "speech", "values", "face", "food"}},
	{House: 3, Name: "Sahaja", Nature: types.NatureUpachaya, Purushartha: types.Kama, Karaka: types.Mars,
		Significations: []string{"siblings", "courage", "communication", "short journeys", "skills"}},
	{House: 4, Name: "Sukha", Nature: types.NatureKendra, Purushartha: types.Moksha, Karaka: types.Moon,
		Significations: []string{"mother", "home", "happiness", "land", "education", "vehicles"}},
	{House: 5, Name: "Putra", Nature: types.NatureTrikona, Purushartha: types.Dharma, Karaka: types.Jupiter,
		Significations: []string{"children", "creativity", "intelligence", "romance", "speculation"}},
	{House: 6, Name: "Ripu", Nature: types.NatureDusthana, Purushartha: types.Artha, Karaka: types.Mars,
		Significations: []string{"enemies", "disease", "debts", "service", "obstacles"}},
	{House: 7, Name: "Kalatra", Nature: types.NatureKendra, Purushartha: types.Kama, Karaka: types.Venus,
		Significations: []string{"spouse", "partnerships", "business", "public dealings"}},
	{House: 8, Name: "Ayur", Nature: types.NatureDusthana, Purushartha: types.Moksha, Karaka: types.Saturn,
		Significations: []string{"longevity", "transformation", "occult", "research", "inheritance"}},
	{House: 9, Name: "Bhagya", Nature: types.NatureTrikona, Purushartha: types.Dharma, Karaka: types.Jupiter,
		Significations: []string{"fortune", "father", "dharma", "higher learning", "long journeys"}},
	{House: 10, Name: "Karma", Nature: types.NatureKendra, Purushartha: types.Artha, Karaka: types.Sun,
		Significations: []string{"career", "reputation", "authority", "status", "government"}},
	{House: 11, Name: "Labha", Nature: types.NatureUpachaya, Purushartha: types.Kama, Karaka: types.Jupiter,
		Significations: []string{"gains", "elder siblings", "hopes", "social circle", "income"}},
	{House: 12, Name: "Vyaya", Nature: types.NatureDusthana, Purushartha: types.Moksha, Karaka: types.Saturn,
		Significations: []string{"losses", "spirituality", "foreign lands", "expenses", "liberation"}},
}

// Signification returns a copy of the reference entry for house h.
func Signification(h types.House) types.HouseSignification {
	mustHouse(h)
	s := significations[h-1]
	s.Significations = slices.Clone(s.Significations)
	return s
}
