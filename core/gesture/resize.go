package gesture

import (
	"arranger/core/timing"
	"arranger/core/track"
)

// Edge selects which side of a block a resize grabs. It is fixed for the
// session's whole lifetime.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
)

func (e Edge) String() string {
	if e == EdgeLeft {
		return "left"
	}
	return "right"
}

// Frame is the live visible geometry of a block during a resize: its left
// edge, its width and the content counter-shift, all in pixels.
type Frame struct {
	Position      float64
	Width         float64
	ContentOffset float64
}

// Resize is the trim-resize state machine. Moving an edge only changes which
// window of the content is visible; the content itself stays visually glued
// in place via the ContentOffset counter-transform.
//
// The anchor content offset is captured at Start rather than recomputed from
// trim state on every frame: recomputation would double-apply any partial
// edit already rendered and make rapid successive edits jitter.
type Resize struct {
	trackID track.ID
	edge    Edge

	anchorPointerX float64
	anchor         Frame
	last           Frame
	active         bool
}

// ResizeResult reports the finished gesture as a pixel delta. Converting the
// delta into a tick-denominated trim adjustment is the owner's job: only it
// knows the content's full duration, which this core merely borrows.
type ResizeResult struct {
	TrackID     track.ID
	Edge        Edge
	DeltaPixels float64
}

// Active reports whether a gesture is in flight.
func (r *Resize) Active() bool { return r.active }

// TrackID returns the track the active gesture belongs to, track.Invalid
// when idle.
func (r *Resize) TrackID() track.ID {
	if !r.active {
		return track.Invalid
	}
	return r.trackID
}

// Edge returns which edge the active gesture is dragging.
func (r *Resize) Edge() Edge { return r.edge }

// Start anchors the session on pointer-down on an edge handle.
func (r *Resize) Start(id track.ID, edge Edge, pointerX float64, current Frame) {
	if r.active {
		panic("gesture: resize start while active")
	}
	r.trackID = id
	r.edge = edge
	r.anchorPointerX = pointerX
	r.anchor = current
	r.last = current
	r.active = true
}

// Update computes the live geometry for the current pointer position.
// Invariants across every frame: the width never drops below one grid
// subdivision, and the edge opposite the dragged one never moves.
func (r *Resize) Update(pointerX float64, c timing.Context) Frame {
	if !r.active {
		panic("gesture: resize update before start")
	}
	sub := c.SubdivisionWidth()
	delta := pointerX - r.anchorPointerX

	switch r.edge {
	case EdgeRight:
		// Only how much content is visible from the right changes; the
		// left edge and the content anchor stay put.
		r.last = Frame{
			Position:      r.anchor.Position,
			Width:         timing.Snap(r.anchor.Width+delta, sub, sub),
			ContentOffset: r.anchor.ContentOffset,
		}
	case EdgeLeft:
		right := r.anchor.Position + r.anchor.Width
		rawPos := r.anchor.Position + delta
		if rawPos < 0 {
			rawPos = 0
		}
		pos := timing.Snap(rawPos, sub, 0)
		width := timing.Snap(right-pos, sub, sub)
		// re-derive the position from the clamped width so the minimum-width
		// floor can never silently detach the right edge
		pos = right - width
		r.last = Frame{
			Position:      pos,
			Width:         width,
			ContentOffset: r.anchor.ContentOffset - (pos - r.anchor.Position),
		}
	}
	return r.last
}

// Commit ends the gesture and reports the edge's pixel delta: width change
// for the right edge, position change for the left edge.
func (r *Resize) Commit() ResizeResult {
	if !r.active {
		panic("gesture: resize commit before start")
	}
	r.active = false
	res := ResizeResult{TrackID: r.trackID, Edge: r.edge}
	if r.edge == EdgeRight {
		res.DeltaPixels = r.last.Width - r.anchor.Width
	} else {
		res.DeltaPixels = r.last.Position - r.anchor.Position
	}
	return res
}
