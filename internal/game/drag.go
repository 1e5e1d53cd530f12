package game

import (
	"math"
	"slices"
)

// Box is the vertical extent of a card, in the same coordinates as the
// pointer position passed to DragOver.
type Box struct {
	Top    float64
	Height float64
}

// Mid returns the vertical midpoint of the box.
func (b Box) Mid() float64 { return b.Top + b.Height/2 }

// PickUp starts dragging verse index i. It fails when cards are not
// draggable or i is not on the board.
func (s *Session) PickUp(i int) bool {
	if !s.Draggable() {
		return false
	}
	if _, _, ok := s.Locate(i); !ok {
		return false
	}
	s.dragged = i
	return true
}

// Dragged returns the verse index being dragged.
func (s *Session) Dragged() (int, bool) {
	return s.dragged, s.dragged != noCard
}

// DragOver highlights r and, while a card is in motion, moves it to the
// insertion point for pointer position y: before the non-dragged card whose
// midpoint is below y and closest to it, or at the end when there is none.
func (s *Session) DragOver(r Region, y float64, boxOf func(i int) Box) {
	s.hover[r] = true
	if s.dragged == noCard {
		return
	}

	before := noCard
	closest := math.Inf(-1)
	for _, i := range s.regions[r] {
		if i == s.dragged {
			continue
		}
		offset := y - boxOf(i).Mid()
		if offset < 0 && offset > closest {
			closest = offset
			before = i
		}
	}

	s.detach(s.dragged)
	if before == noCard {
		s.regions[r] = append(s.regions[r], s.dragged)
		return
	}
	pos := slices.Index(s.regions[r], before)
	s.regions[r] = slices.Insert(s.regions[r], pos, s.dragged)
}

// Drop ends the hover on r. The card already sits where the last DragOver
// put it.
func (s *Session) Drop(r Region) {
	s.hover[r] = false
}

// EndDrag finishes a gesture, dropped or cancelled. Marks are cleared since
// they described the arrangement before the move.
func (s *Session) EndDrag() {
	s.dragged = noCard
	s.hover = [2]bool{}
	s.ClearMarks()
}

// Move places verse index i at pos in region r, clamping pos to the
// region's bounds. It is the keyboard counterpart of a drag.
func (s *Session) Move(i int, r Region, pos int) bool {
	if !s.Draggable() {
		return false
	}
	if _, _, ok := s.Locate(i); !ok {
		return false
	}
	s.detach(i)
	pos = max(0, min(pos, len(s.regions[r])))
	s.regions[r] = slices.Insert(s.regions[r], pos, i)
	return true
}

func (s *Session) detach(i int) {
	for r := range s.regions {
		if pos := slices.Index(s.regions[r], i); pos >= 0 {
			s.regions[r] = slices.Delete(s.regions[r], pos, pos+1)
			return
		}
	}
}
