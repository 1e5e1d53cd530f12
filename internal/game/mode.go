// Package game holds the state and rules of one verse-ordering session,
// independent of how cards are drawn or how pointer events arrive.
package game

import "strings"

type Mode int

const (
	// ModeGame scrambles the verses for the player to reorder.
	ModeGame Mode = iota
	// ModeStudy shows the verses in order with references.
	ModeStudy
)

// ParseMode maps a selector value to a Mode. Anything that is not "study"
// is Game mode.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "study") {
		return ModeStudy
	}
	return ModeGame
}

func (m Mode) String() string {
	if m == ModeStudy {
		return "study"
	}
	return "game"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeStudy {
		return ModeGame
	}
	return ModeStudy
}

// Region is one of the two panes a card can sit in.
type Region int

const (
	RegionSource Region = iota
	RegionTarget
)

func (r Region) String() string {
	if r == RegionTarget {
		return "target"
	}
	return "source"
}

// Other returns the opposite region.
func (r Region) Other() Region {
	if r == RegionTarget {
		return RegionSource
	}
	return RegionTarget
}

// Mark is the verification state drawn on a card.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)
