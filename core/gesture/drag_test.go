package gesture

import (
	"testing"

	"arranger/core/timing"
	"arranger/core/track"
)

var ctx = timing.Context{BPM: 120, Sig: timing.Sig{Beats: 4, Unit: 4}, PixelsPerMeasure: 200}

const laneH = 80.0

func TestDragSnapsBothAxes(t *testing.T) {
	// from (100,0), pointer moves (+37,+5): x snaps to 137.5, y back to lane 0
	var d Drag
	d.Start(1, Point{10, 10}, Point{100, 0}, laneH)
	got := d.Update(Point{47, 15}, ctx)
	if got.X != 137.5 || got.Y != 0 {
		t.Fatalf("live position=(%f,%f) want (137.5,0)", got.X, got.Y)
	}
	res := d.Commit(ctx)
	if !res.Moved {
		t.Fatalf("expected Moved")
	}
	if res.Lane != 0 {
		t.Fatalf("lane=%d want 0", res.Lane)
	}
	if want := timing.PixelsToTicks(137.5, ctx); res.Ticks != want {
		t.Fatalf("ticks=%f want %f", res.Ticks, want)
	}
}

func TestDragLaneChange(t *testing.T) {
	var d Drag
	d.Start(1, Point{0, 0}, Point{0, 0}, laneH)
	got := d.Update(Point{0, 130}, ctx) // past the halfway point of lane 1
	if got.Y != 2*laneH {
		t.Fatalf("y=%f want %f", got.Y, 2*laneH)
	}
	if res := d.Commit(ctx); res.Lane != 2 {
		t.Fatalf("lane=%d want 2", res.Lane)
	}
}

func TestDragClampsToOrigin(t *testing.T) {
	var d Drag
	d.Start(1, Point{500, 500}, Point{12.5, 80}, laneH)
	got := d.Update(Point{0, 0}, ctx)
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("position=(%f,%f) want (0,0)", got.X, got.Y)
	}
}

func TestDragNoOp(t *testing.T) {
	// press and release in place: no updates, result must not count as a move
	var d Drag
	d.Start(7, Point{40, 40}, Point{25, 160}, laneH)
	res := d.Commit(ctx)
	if res.Moved {
		t.Fatalf("in-place release reported as move: %+v", res)
	}
	if want := timing.PixelsToTicks(25, ctx); res.Ticks != want {
		t.Fatalf("ticks=%f want %f", res.Ticks, want)
	}
	if res.Lane != 2 {
		t.Fatalf("lane=%d want 2", res.Lane)
	}
}

func TestDragUsesCurrentContext(t *testing.T) {
	// zoom changes mid-gesture; the next update must use the new context
	var d Drag
	d.Start(1, Point{0, 0}, Point{0, 0}, laneH)
	d.Update(Point{30, 0}, ctx)
	zoomed := ctx
	zoomed.PixelsPerMeasure = 400 // subdivision width 25
	got := d.Update(Point{30, 0}, zoomed)
	if got.X != 25 {
		t.Fatalf("x=%f want 25 after zoom", got.X)
	}
}

func TestDragReuseAfterCommit(t *testing.T) {
	var d Drag
	d.Start(1, Point{0, 0}, Point{0, 0}, laneH)
	d.Commit(ctx)
	if d.Active() {
		t.Fatalf("still active after commit")
	}
	d.Start(2, Point{0, 0}, Point{0, 0}, laneH) // must not panic
	d.Commit(ctx)
}

func TestDragIdleTrackID(t *testing.T) {
	var d Drag
	if got := d.TrackID(); got != track.Invalid {
		t.Fatalf("idle session track=%d want %d", got, track.Invalid)
	}
	d.Start(5, Point{}, Point{}, laneH)
	if got := d.TrackID(); got != 5 {
		t.Fatalf("active session track=%d want 5", got)
	}
	d.Commit(ctx)
	if got := d.TrackID(); got != track.Invalid {
		t.Fatalf("committed session track=%d want %d", got, track.Invalid)
	}
}

func TestDragPreconditionPanics(t *testing.T) {
	expectPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s did not panic", name)
			}
		}()
		f()
	}
	expectPanic("update before start", func() {
		var d Drag
		d.Update(Point{}, ctx)
	})
	expectPanic("commit before start", func() {
		var d Drag
		d.Commit(ctx)
	})
	expectPanic("double start", func() {
		var d Drag
		d.Start(1, Point{}, Point{}, laneH)
		d.Start(1, Point{}, Point{}, laneH)
	})
}
