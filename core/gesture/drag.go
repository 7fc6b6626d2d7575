package gesture

import (
	"math"

	"arranger/core/timing"
	"arranger/core/track"
)

// Drag is the position-drag state machine: it moves a track block in time
// (x, snapped to the grid subdivision) and across lanes (y, snapped to the
// lane height). The zero value is an idle session ready for Start.
type Drag struct {
	trackID    track.ID
	laneHeight float64

	anchorPointer Point
	anchorPos     Point
	last          Point
	active        bool
}

// DragResult is the final, fully-resolved outcome of one drag.
type DragResult struct {
	TrackID track.ID
	Ticks   float64 // new musical start offset
	Lane    int     // new lane index
	Moved   bool    // false: released in place, owner must not persist anything
}

// Active reports whether a gesture is in flight.
func (d *Drag) Active() bool { return d.active }

// TrackID returns the track the active gesture belongs to, track.Invalid
// when idle.
func (d *Drag) TrackID() track.ID {
	if !d.active {
		return track.Invalid
	}
	return d.trackID
}

// Start anchors the session on pointer-down. Starting while a gesture is
// already active is a caller bug.
func (d *Drag) Start(id track.ID, pointer, trackPos Point, laneHeight float64) {
	if d.active {
		panic("gesture: drag start while active")
	}
	if laneHeight <= 0 {
		panic("gesture: non-positive lane height")
	}
	d.trackID = id
	d.laneHeight = laneHeight
	d.anchorPointer = pointer
	d.anchorPos = trackPos
	d.last = trackPos
	d.active = true
}

// Update computes the snapped live position for the current pointer and
// returns it for immediate re-render. Nothing is persisted.
func (d *Drag) Update(pointer Point, c timing.Context) Point {
	if !d.active {
		panic("gesture: drag update before start")
	}
	rawX := d.anchorPos.X + (pointer.X - d.anchorPointer.X)
	rawY := d.anchorPos.Y + (pointer.Y - d.anchorPointer.Y)
	d.last = Point{
		X: timing.Snap(rawX, c.SubdivisionWidth(), 0),
		Y: timing.Snap(rawY, d.laneHeight, 0),
	}
	return d.last
}

// Commit ends the gesture and resolves the last snapped position into ticks
// and a lane index. Moved is false when the result is identical to the
// anchor, so a press-and-release in place never turns into a state change.
func (d *Drag) Commit(c timing.Context) DragResult {
	if !d.active {
		panic("gesture: drag commit before start")
	}
	d.active = false
	res := DragResult{
		TrackID: d.trackID,
		Ticks:   timing.PixelsToTicks(d.last.X, c),
		Lane:    int(math.Round(d.last.Y / d.laneHeight)),
	}
	anchorTicks := timing.PixelsToTicks(d.anchorPos.X, c)
	anchorLane := int(math.Round(d.anchorPos.Y / d.laneHeight))
	res.Moved = res.Ticks != anchorTicks || res.Lane != anchorLane
	return res
}
