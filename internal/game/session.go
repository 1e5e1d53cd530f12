package game

import (
	"slices"

	"github.com/google/uuid"

	"verse-order/internal/chapter"
)

const noCard = -1

// Session is the state of one loaded chapter. It is rebuilt from scratch on
// every load and never updated incrementally across chapters.
type Session struct {
	ID         string
	Generation uint64
	Chapter    chapter.Chapter
	Mode       Mode

	// CorrectOrder is the canonical order verification compares against.
	// It is always the identity permutation.
	CorrectOrder []int

	regions [2][]int
	hover   [2]bool
	marks   map[int]Mark
	dragged int
}

// NewSession lays out ch for mode. Game mode scrambles every card into the
// source region; Study mode puts them in order into the target region.
// A nil shuffler uses DefaultShuffler.
func NewSession(ch chapter.Chapter, mode Mode, generation uint64, shuffle Shuffler) *Session {
	if shuffle == nil {
		shuffle = DefaultShuffler
	}

	s := &Session{
		ID:           uuid.NewString(),
		Generation:   generation,
		Chapter:      ch,
		Mode:         mode,
		CorrectOrder: Identity(ch.Len()),
		marks:        make(map[int]Mark),
		dragged:      noCard,
	}

	switch mode {
	case ModeStudy:
		s.regions[RegionTarget] = slices.Clone(s.CorrectOrder)
		s.regions[RegionSource] = []int{}
	default:
		scrambled := slices.Clone(s.CorrectOrder)
		Shuffle(scrambled, shuffle)
		s.regions[RegionSource] = scrambled
		s.regions[RegionTarget] = []int{}
	}
	return s
}

// Intro is the status line shown right after a chapter loads.
func (s *Session) Intro() string {
	if s.Mode == ModeStudy {
		return "Study Mode: Verses are shown in correct order with references for review."
	}
	return "Game Mode: Drag verses from left to right and arrange them in order."
}

// Cards returns the verse indices in region r, top to bottom.
func (s *Session) Cards(r Region) []int {
	return slices.Clone(s.regions[r])
}

// Len returns the number of verses in the chapter.
func (s *Session) Len() int { return s.Chapter.Len() }

// Draggable reports whether cards can be moved at all.
func (s *Session) Draggable() bool { return s.Mode == ModeGame }

// CanVerify reports whether the verification action is available.
func (s *Session) CanVerify() bool { return s.Mode == ModeGame }

// Locate returns the region and position of verse index i.
func (s *Session) Locate(i int) (Region, int, bool) {
	for _, r := range []Region{RegionSource, RegionTarget} {
		if pos := slices.Index(s.regions[r], i); pos >= 0 {
			return r, pos, true
		}
	}
	return RegionSource, 0, false
}

// Mark returns the verification mark on verse index i.
func (s *Session) Mark(i int) Mark { return s.marks[i] }

// ClearMarks resets every card to its neutral look.
func (s *Session) ClearMarks() {
	clear(s.marks)
}
