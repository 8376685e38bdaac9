package categories

import (
	"github.com/samber/lo"
)

// The standard reporting dimensions. Each constructor builds a fresh
// immutable map, so callers can hold one per pipeline without sharing
// mutable state.

// EffortRanks orders estimated effort labels from smallest to largest.
func EffortRanks() *Map[int] {
	return NewMap(
		lo.T2("Hours", 1),
		lo.T2("Days", 2),
		lo.T2("Weeks", 3),
		lo.T2("Months", 4),
		lo.T2("Quarters", 5),
	)
}

// ImpactRanks orders estimated impact labels from lowest to highest.
func ImpactRanks() *Map[int] {
	return NewMap(
		lo.T2("Very Low", 1),
		lo.T2("Low", 2),
		lo.T2("Medium", 3),
		lo.T2("High", 4),
		lo.T2("Very High", 5),
	)
}

// PriorityColors maps priority tiers to color tokens. Tiers outside the
// map carry no color and are excluded from colored plots.
func PriorityColors() *Map[string] {
	return NewMap(
		lo.T2("P1", "red"),
		lo.T2("P2", "orange"),
		lo.T2("P3", "green"),
		lo.T2("P4", "blue"),
	)
}

// PriorityTexts maps priority tiers to their display form.
func PriorityTexts() *Map[string] {
	return NewMap(
		lo.T2("P1", "P1 🔥"),
		lo.T2("P2", "P2 🚨"),
		lo.T2("P3", "P3 ⭐"),
		lo.T2("P4", "P4 🐢"),
		lo.T2("P5", "P5 🐌"),
	).WithDefault("unknown")
}

// StagingGlyphs maps staging phases to fixed width progress glyphs.
func StagingGlyphs() *Map[string] {
	return NewMap(
		lo.T2("Triage", "▰▱▱▱▱"),
		lo.T2("Analysis", "▰▰▱▱▱"),
		lo.T2("Alpha Test", "▰▰▰▱▱"),
		lo.T2("Beta Test", "▰▰▰▰▱"),
		lo.T2("Roll-out", "▰▰▰▰▰"),
	).WithDefault("-----")
}

// StatusColors maps project statuses to color tokens.
func StatusColors() *Map[string] {
	return NewMap(
		lo.T2("Open", "pink"),
		lo.T2("On Hold", "orange"),
		lo.T2("New", "purple"),
		lo.T2("Blocked", "orange"),
	).WithDefault("teal")
}
