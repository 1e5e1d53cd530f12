package game

// ScrollSync keeps the two regions' scroll offsets equal. While one region's
// offset is copied to the other, the other's scroll callback is suppressed so
// it cannot bounce the offset back.
type ScrollSync struct {
	syncing [2]bool
}

// Scrolled is called when region r was scrolled to offset. apply sets the
// other region's offset and may re-enter Scrolled for that region.
func (s *ScrollSync) Scrolled(r Region, offset int, apply func(Region, int)) {
	if s.syncing[r] {
		return
	}
	other := r.Other()
	s.syncing[other] = true
	apply(other, offset)
	s.syncing[other] = false
}
