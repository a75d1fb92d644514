// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"strings"
)

// AspectKind identifies how a planet influences a house.
type AspectKind int

const (
	Conjunction AspectKind = iota // 0 degrees
	Sextile                       // 60 degrees
	Square                        // 90 degrees
	Trine                         // 120 degrees
	Opposition                    // 180 degrees
	Drishti                       // Classical whole-house aspect, orb-independent
)

func (k AspectKind) String() string {
	switch k {
	case Conjunction:
		return "conjunction"
	case Sextile:
		return "sextile"
	case Square:
		return "square"
	case Trine:
		return "trine"
	case Opposition:
		return "opposition"
	case Drishti:
		return "drishti"
	default:
		return fmt.Sprintf("AspectKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k AspectKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name, case-insensitively.
func (k *AspectKind) UnmarshalText(text []byte) error {
	for c := Conjunction; c <= Drishti; c++ {
		if strings.EqualFold(c.String(), string(text)) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown aspect kind %q", text)
}

// AspectResult is one influence of a planet on a house.
type AspectResult struct {
	Planet     Planet     `json:"planet"`               // Aspecting planet
	House      House      `json:"house"`                // Aspected house
	Kind       AspectKind `json:"kind"`                 // Angular kind or Drishti
	Separation float64    `json:"separation"`           // Angular distance planet to house centre, [0,180]
	Orb        float64    `json:"orb"`                  // |Separation - exact angle|; 0 for Drishti
	Strength   int        `json:"strength"`             // 0..100
	Ordinal    int        `json:"ordinal,omitempty"`    // Drishti only: the Nth house counted from the planet
	FromHouse  House      `json:"from_house,omitempty"` // House the planet occupies
}

// IsDrishti reports whether the result is a classical whole-house aspect.
func (a AspectResult) IsDrishti() bool {
	return a.Kind == Drishti
}
