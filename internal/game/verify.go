package game

import "fmt"

type Status int

const (
	// StatusWrongMode means verification is not offered in this mode.
	StatusWrongMode Status = iota
	// StatusEmpty means nothing has been placed in the target region.
	StatusEmpty
	StatusSuccess
	StatusFailure
)

// Verdict is the outcome of one verification run.
type Verdict struct {
	Status     Status
	Incomplete bool
	Placed     int
	Total      int
	// Marks holds the mark given to each target position, top to bottom.
	Marks      []Mark
}

// Scored reports whether the arrangement was actually compared.
func (v Verdict) Scored() bool {
	return v.Status == StatusSuccess || v.Status == StatusFailure
}

// Message is the status line shown for the verdict.
func (v Verdict) Message() string {
	switch {
	case v.Status == StatusWrongMode:
		return "Check Order is only for Game Mode. Switch to Game Mode and reload the chapter."
	case v.Status == StatusEmpty:
		return "Drag verses to the right side first."
	case v.Status == StatusSuccess:
		return "Perfect! All verses are in the correct order."
	case v.Incomplete:
		return fmt.Sprintf("You don't have all the verses on the right side yet (%d of %d placed).", v.Placed, v.Total)
	default:
		return "Some verses are out of order. Adjust the red ones and try again."
	}
}

// WrongModeVerdict is what verification reports outside Game mode.
func WrongModeVerdict() Verdict {
	return Verdict{Status: StatusWrongMode}
}

// Verify compares the target region, top to bottom, against CorrectOrder
// and marks every card there. A partial arrangement is still marked but can
// never succeed.
func (s *Session) Verify() Verdict {
	if s.Mode != ModeGame {
		return WrongModeVerdict()
	}

	placed := s.regions[RegionTarget]
	v := Verdict{
		Placed:     len(placed),
		Total:      s.Len(),
		Incomplete: len(placed) < s.Len(),
	}
	if len(placed) == 0 {
		v.Status = StatusEmpty
		return v
	}

	s.ClearMarks()
	allCorrect := true
	v.Marks = make([]Mark, len(placed))
	for pos, i := range placed {
		if pos < len(s.CorrectOrder) && i == s.CorrectOrder[pos] {
			v.Marks[pos] = MarkCorrect
		} else {
			v.Marks[pos] = MarkIncorrect
			allCorrect = false
		}
		s.marks[i] = v.Marks[pos]
	}

	if allCorrect && !v.Incomplete {
		v.Status = StatusSuccess
	} else {
		v.Status = StatusFailure
	}
	return v
}
