// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package arudha

import (
	"sort"

	"github.com/petar-djukic/go-jyotish/internal/aspect"
	"github.com/petar-djukic/go-jyotish/internal/house"
	"github.com/petar-djukic/go-jyotish/internal/zodiac"
	"github.com/petar-djukic/go-jyotish/pkg/types"
)

var (
	publicHouses  = []types.House{1, 7, 10, 11}
	privateHouses = []types.House{4, 8, 12}
)

func lagnaDetail(c types.Chart, al types.ArudhaResult) types.LagnaDetail {
	return types.LagnaDetail{
		Pada:        al,
		Occupants:   house.Occupants(c, al.Corrected),
		Drishti:     drishtiOn(c, al.Corrected),
		Sustenance:  occupancy(c, zodiac.HouseByOffset(al.Corrected, 2)),
		Expenditure: occupancy(c, zodiac.HouseByOffset(al.Corrected, 12)),
	}
}

// drishtiOn lists the planets casting a whole-house aspect on target.
func drishtiOn(c types.Chart, target types.House) []types.DrishtiSource {
	out := []types.DrishtiSource{}
	for _, p := range c.Present() {
		pos, _ := c.Position(p)
		from := zodiac.HouseOfLongitude(pos.Longitude, c.Ascendant.Longitude)
		if ordinal, strength, ok := aspect.Casts(p, from, target); ok {
			out = append(out, types.DrishtiSource{
				Planet:    p,
				FromHouse: from,
				Ordinal:   ordinal,
				Strength:  strength,
			})
		}
	}
	return out
}

func occupancy(c types.Chart, h types.House) types.HouseOccupancy {
	return types.HouseOccupancy{
		House:     h,
		Sign:      zodiac.SignOfHouse(c.Ascendant.Sign, h),
		Occupants: house.Occupants(c, h),
	}
}

// patterns groups padas by the nature of their origin house and finds signs
// holding more than one pada. padas must be in origin order.
func patterns(padas []types.ArudhaResult) types.PadaPatterns {
	byNature := map[types.HouseNature][]types.House{}
	bySign := map[types.Sign][]types.House{}
	for _, p := range padas {
		n := zodiac.Signification(p.Origin).Nature
		byNature[n] = append(byNature[n], p.Origin)
		bySign[p.Sign] = append(bySign[p.Sign], p.Origin)
	}

	clusters := []types.SignCluster{}
	for s, origins := range bySign {
		if len(origins) < 2 {
			continue
		}
		clusters = append(clusters, types.SignCluster{Sign: s, Padas: origins})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if len(clusters[i].Padas) != len(clusters[j].Padas) {
			return len(clusters[i].Padas) > len(clusters[j].Padas)
		}
		return clusters[i].Sign < clusters[j].Sign
	})

	return types.PadaPatterns{ByNature: byNature, Clusters: clusters}
}

// alignment compares public and private origin houses with their padas.
// padas must be in origin order.
func alignment(c types.Chart, padas []types.ArudhaResult) []types.AlignmentEntry {
	out := []types.AlignmentEntry{}
	for _, p := range padas {
		var domain types.Domain
		switch {
		case contains(publicHouses, p.Origin):
			domain = types.DomainPublic
		case contains(privateHouses, p.Origin):
			domain = types.DomainPrivate
		default:
			continue
		}
		originSign := zodiac.SignOfHouse(c.Ascendant.Sign, p.Origin)
		out = append(out, types.AlignmentEntry{
			Origin:      p.Origin,
			Domain:      domain,
			OriginSign:  originSign,
			PadaSign:    p.Sign,
			PadaHouse:   p.Corrected,
			Distance:    zodiac.HouseDistance(p.Origin, p.Corrected),
			Element:     p.Sign.Element(),
			SameElement: originSign.Element() == p.Sign.Element(),
		})
	}
	return out
}

func contains(hs []types.House, h types.House) bool {
	for _, x := range hs {
		if x == h {
			return true
		}
	}
	return false
}
