package ui

import "math"

// Scroller owns the timeline's horizontal scroll offset and zoom. Zoom is
// expressed directly as pixels per measure so the timing context handed to
// the core always reflects the current wheel state.
type Scroller struct {
	OffsetX float64 // screen translation applied to world x, always <= 0
	PPM     float64 // pixels per measure
}

const (
	minPPM = 40
	maxPPM = 1200
)

func NewScroller(ppm float64) *Scroller {
	s := &Scroller{PPM: ppm}
	s.clampPPM()
	return s
}

func (s *Scroller) clampPPM() {
	if s.PPM < minPPM {
		s.PPM = minPPM
	}
	if s.PPM > maxPPM {
		s.PPM = maxPPM
	}
}

// Snap clamps the offset to integer pixels and a sane range so scrolling far
// into a long arrangement doesn't accumulate floating-point error.
func (s *Scroller) Snap() {
	s.OffsetX = math.Round(s.OffsetX)
	const limit = 1e6
	if s.OffsetX > 0 {
		s.OffsetX = 0
	} else if s.OffsetX < -limit {
		s.OffsetX = -limit
	}
}

// HandleWheel applies horizontal wheel to scroll and vertical wheel to zoom.
// Zooming rescales the offset so the measure under the cursor stays put:
// every world x is proportional to PPM, so scaling PPM by k scales world
// coordinates by k too. When allow is false (a gesture owns the pointer) the
// wheel is ignored.
func (s *Scroller) HandleWheel(allow bool) {
	if !allow {
		return
	}
	wx, wy := wheel()
	if wx != 0 {
		s.OffsetX += wx * 20
	}
	if wy != 0 {
		mx, _ := cursorPosition()
		worldX := float64(mx) - s.OffsetX
		const (
			zoomFactor      = 1.05
			zoomSensitivity = 0.5
		)
		k := math.Pow(zoomFactor, wy*zoomSensitivity)
		newPPM := s.PPM * k
		if newPPM < minPPM {
			k = minPPM / s.PPM
			newPPM = minPPM
		} else if newPPM > maxPPM {
			k = maxPPM / s.PPM
			newPPM = maxPPM
		}
		s.OffsetX = float64(mx) - worldX*k
		s.PPM = newPPM
	}
	s.Snap()
}
