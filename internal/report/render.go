// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders analysis results as compact terminal tables.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/petar-djukic/go-jyotish/pkg/types"
)

const absentMark = "-"

// Config configures rendering.
type Config struct {
	Plain bool // Drop colours and emphasis
}

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	grades  map[types.Grade]lipgloss.Style
	applied lipgloss.Style
}

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorAccent  = lipgloss.Color("#FFD700")
	colorSuccess = lipgloss.Color("#00E676")
	colorDanger  = lipgloss.Color("#FF5252")
	colorMuted   = lipgloss.Color("#8C8C8C")
)

func newStyles(cfg Config) styles {
	if cfg.Plain {
		plain := lipgloss.NewStyle()
		return styles{title: plain, label: plain, muted: plain, applied: plain, grades: map[types.Grade]lipgloss.Style{}}
	}
	return styles{
		title:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		label:   lipgloss.NewStyle().Foreground(colorPrimary),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
		applied: lipgloss.NewStyle().Foreground(colorAccent),
		grades: map[types.Grade]lipgloss.Style{
			types.GradeExcellent: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
			types.GradeGood:      lipgloss.NewStyle().Foreground(colorSuccess),
			types.GradeWeak:      lipgloss.NewStyle().Foreground(colorDanger),
			types.GradeVeryWeak:  lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
		},
	}
}

func (s styles) grade(g types.Grade) string {
	if st, ok := s.grades[g]; ok {
		return st.Render(string(g))
	}
	return string(g)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// Houses renders a house report: one row per house, then the ranking,
// category averages and lord groups.
func Houses(r types.HouseReport, cfg Config) string {
	st := newStyles(cfg)
	var b strings.Builder

	b.WriteString(st.title.Render("Houses"))
	b.WriteString("\n")

	t := newTable("House", "Sign", "Name", "Lord", "Lord in", "Occupants", "Aspects", "Strength", "Grade")
	for _, ha := range r.Houses {
		lordIn := absentMark
		if ha.Lord != nil {
			lordIn = fmt.Sprintf("%d %s", ha.Lord.CurrentHouse, ha.Lord.Dignity)
		}
		t.Row(
			strconv.Itoa(int(ha.House)),
			ha.Sign.String(),
			ha.Signification.Name,
			ha.LordPlanet.String(),
			lordIn,
			planetList(ha.Occupants),
			strconv.Itoa(len(ha.Aspects)),
			strconv.Itoa(ha.Strength),
			st.grade(ha.Grade),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", st.label.Render("Strongest:"), rankList(r.Ranking.Strongest))
	fmt.Fprintf(&b, "%s %s\n", st.label.Render("Weakest:"), rankList(r.Ranking.Weakest))

	avg := r.CategoryAverages
	fmt.Fprintf(&b, "%s angular %.2f  trine %.2f  difficult %.2f  growth %.2f\n",
		st.label.Render("Averages:"), avg.Angular, avg.Trine, avg.Difficult, avg.Growth)

	lg := r.LordGroups
	fmt.Fprintf(&b, "%s dharma %s  kendra %s  dusthana %s\n",
		st.label.Render("Lords:"), lordGroup(lg.DharmaTrikona), lordGroup(lg.Kendra), lordGroup(lg.Dusthana))
	return b.String()
}

// Arudha renders the padas, absent padas and the Arudha Lagna detail.
func Arudha(r types.ArudhaReport, cfg Config) string {
	st := newStyles(cfg)
	var b strings.Builder

	b.WriteString(st.title.Render("Arudha padas"))
	b.WriteString("\n")

	t := newTable("Pada", "Lord", "Lord in", "Count", "Candidate", "House", "Sign", "Correction")
	for _, p := range r.Ordered() {
		correction := st.muted.Render(string(types.ExceptionNone))
		if p.Exception.Applied {
			correction = st.applied.Render(string(p.Exception.Kind))
		}
		t.Row(
			p.Label(),
			p.Lord.String(),
			strconv.Itoa(int(p.LordHouse)),
			strconv.Itoa(p.Distance),
			strconv.Itoa(int(p.Candidate)),
			strconv.Itoa(int(p.Corrected)),
			p.Sign.String(),
			correction,
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	if len(r.Absent) > 0 {
		parts := make([]string, len(r.Absent))
		for i, a := range r.Absent {
			parts[i] = fmt.Sprintf("%s (%s)", types.PadaLabel(a.Origin), a.Lord)
		}
		fmt.Fprintf(&b, "%s %s\n", st.label.Render("Absent:"), strings.Join(parts, ", "))
	}

	if l := r.Lagna; l != nil {
		fmt.Fprintf(&b, "%s house %d, %s, occupants %s\n",
			st.label.Render("Arudha Lagna:"), l.Pada.Corrected, l.Pada.Sign, planetList(l.Occupants))
		drishti := make([]string, len(l.Drishti))
		for i, d := range l.Drishti {
			drishti[i] = fmt.Sprintf("%s from %d", d.Planet, d.FromHouse)
		}
		fmt.Fprintf(&b, "  drishti: %s\n", orDash(strings.Join(drishti, ", ")))
		fmt.Fprintf(&b, "  2nd: %d %s %s\n", l.Sustenance.House, l.Sustenance.Sign, planetList(l.Sustenance.Occupants))
		fmt.Fprintf(&b, "  12th: %d %s %s\n", l.Expenditure.House, l.Expenditure.Sign, planetList(l.Expenditure.Occupants))
	}

	for _, c := range r.Patterns.Clusters {
		labels := make([]string, len(c.Padas))
		for i, h := range c.Padas {
			labels[i] = types.PadaLabel(h)
		}
		fmt.Fprintf(&b, "%s %s holds %s\n", st.label.Render("Cluster:"), c.Sign, strings.Join(labels, ", "))
	}
	return b.String()
}

// Aspects renders the aspects on one house.
func Aspects(h types.House, aspects []types.AspectResult, cfg Config) string {
	st := newStyles(cfg)
	var b strings.Builder

	b.WriteString(st.title.Render(fmt.Sprintf("Aspects on house %d", h)))
	b.WriteString("\n")
	if len(aspects) == 0 {
		b.WriteString(st.muted.Render("none"))
		b.WriteString("\n")
		return b.String()
	}

	t := newTable("Planet", "From", "Kind", "Separation", "Orb", "Strength")
	for _, a := range aspects {
		kind := a.Kind.String()
		if a.IsDrishti() {
			kind = fmt.Sprintf("drishti (%s)", ordinal(a.Ordinal))
		}
		t.Row(
			a.Planet.String(),
			strconv.Itoa(int(a.FromHouse)),
			kind,
			fmt.Sprintf("%.2f", a.Separation),
			fmt.Sprintf("%.2f", a.Orb),
			strconv.Itoa(a.Strength),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

func planetList(ps []types.Planet) string {
	if len(ps) == 0 {
		return absentMark
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

func rankList(rs []types.HouseRank) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = fmt.Sprintf("%d (%d)", r.House, r.Strength)
	}
	return orDash(strings.Join(parts, ", "))
}

func lordGroup(g types.LordGroup) string {
	if g.Present == 0 {
		return absentMark
	}
	return fmt.Sprintf("%.2f (%d/%d)", g.Average, g.Present, len(g.Houses))
}

func orDash(s string) string {
	if s == "" {
		return absentMark
	}
	return s
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
