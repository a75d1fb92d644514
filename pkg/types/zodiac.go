// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the chart and result values shared across go-jyotish
// packages.
package types

import (
	"fmt"
	"strings"
)

// Sign is one of the twelve zodiac signs, Aries (0) through Pisces (11).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of signs on the wheel.
const SignCount = 12

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// String returns the English sign name.
func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// MarshalText encodes the sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSign, int(s))
	}
	return []byte(signNames[s]), nil
}

// UnmarshalText decodes a sign name (case-insensitive).
func (s *Sign) UnmarshalText(text []byte) error {
	v, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSign resolves a sign name, ignoring case and surrounding space.
func ParseSign(name string) (Sign, error) {
	n := strings.TrimSpace(name)
	for i, s := range signNames {
		if strings.EqualFold(s, n) {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSign, name)
}

// Element is the classical element of a sign. Signs cycle fire, earth, air,
// water from Aries.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Element returns the sign's element.
func (s Sign) Element() Element {
	if !s.Valid() {
		return ""
	}
	return [...]Element{Fire, Earth, Air, Water}[int(s)%4]
}

// Planet is one of the nine classical bodies (grahas).
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// PlanetCount is the number of classical bodies.
const PlanetCount = 9

var planetNames = [PlanetCount]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// Planets returns the nine bodies in their fixed traversal order. Every
// computation iterates planets in this order so results are deterministic.
func Planets() []Planet {
	return []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
}

// Valid reports whether p is one of the nine bodies.
func (p Planet) Valid() bool {
	return p >= Sun && p <= Ketu
}

// String returns the English planet name.
func (p Planet) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// MarshalText encodes the planet by name.
func (p Planet) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlanet, int(p))
	}
	return []byte(planetNames[p]), nil
}

// UnmarshalText decodes a planet name (case-insensitive).
func (p *Planet) UnmarshalText(text []byte) error {
	v, err := ParsePlanet(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlanet resolves a planet name, ignoring case and surrounding space.
func ParsePlanet(name string) (Planet, error) {
	n := strings.TrimSpace(name)
	for i, s := range planetNames {
		if strings.EqualFold(s, n) {
			return Planet(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
}

// House is a house number on the 12-house wheel, 1 through 12.
type House int

// HouseCount is the number of houses.
const HouseCount = 12

// Valid reports whether h is in 1..12.
func (h House) Valid() bool {
	return h >= 1 && h <= HouseCount
}

// Houses returns 1..12 in order.
func Houses() []House {
	hs := make([]House, HouseCount)
	for i := range hs {
		hs[i] = House(i + 1)
	}
	return hs
}

// Dignity is a planet's qualitative condition in its current sign.
type Dignity int

const (
	DignityUnknown Dignity = iota // Not supplied; derived from the sign when needed
	Exalted
	OwnSign
	Friendly
	Neutral
	Enemy
	Debilitated
)

var dignityNames = map[Dignity]string{
	DignityUnknown: "",
	Exalted:        "Exalted",
	OwnSign:        "Own Sign",
	Friendly:       "Friendly Sign",
	Neutral:        "Neutral Sign",
	Enemy:          "Enemy Sign",
	Debilitated:    "Debilitated",
}

func (d Dignity) String() string {
	if name, ok := dignityNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Dignity(%d)", int(d))
}

// MarshalText encodes the dignity by its display name.
func (d Dignity) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a dignity name.
func (d *Dignity) UnmarshalText(text []byte) error {
	v, err := ParseDignity(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDignity accepts the display names plus the short forms "own",
// "friendly", "neutral" and "enemy". An empty string yields DignityUnknown.
func ParseDignity(name string) (Dignity, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "":
		return DignityUnknown, nil
	case "exalted", "exaltation":
		return Exalted, nil
	case "own sign", "own", "ownsign", "own_sign":
		return OwnSign, nil
	case "friendly sign", "friendly", "friend":
		return Friendly, nil
	case "neutral sign", "neutral":
		return Neutral, nil
	case "enemy sign", "enemy":
		return Enemy, nil
	case "debilitated", "debilitation":
		return Debilitated, nil
	}
	return DignityUnknown, fmt.Errorf("%w: unknown dignity %q", ErrMalformedChart, name)
}
