package game

// CardView is everything needed to draw one card.
type CardView struct {
	Index         int
	Reference     string
	Text          string
	ShowReference bool
	Draggable     bool
	Dragging      bool
	Mark          Mark
}

// RegionView is one pane and its cards, top to bottom.
type RegionView struct {
	Region Region
	Hover  bool
	Cards  []CardView
}

// View is a snapshot of the board for rendering.
type View struct {
	Mode      Mode
	CanVerify bool
	Regions   [2]RegionView
}

// View builds the render model for the current arrangement.
func (s *Session) View() View {
	v := View{
		Mode:      s.Mode,
		CanVerify: s.CanVerify(),
	}
	for _, r := range []Region{RegionSource, RegionTarget} {
		rv := RegionView{
			Region: r,
			Hover:  s.hover[r],
			Cards:  make([]CardView, 0, len(s.regions[r])),
		}
		for _, i := range s.regions[r] {
			verse := s.Chapter.Verses[i]
			rv.Cards = append(rv.Cards, CardView{
				Index:         i,
				Reference:     verse.Reference,
				Text:          verse.Text,
				ShowReference: s.Mode == ModeStudy,
				Draggable:     s.Draggable(),
				Dragging:      i == s.dragged,
				Mark:          s.marks[i],
			})
		}
		v.Regions[r] = rv
	}
	return v
}
