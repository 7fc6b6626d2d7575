package ui

import (
	"image"
	"testing"

	"arranger/core/gesture"
	"arranger/core/timing"
	"arranger/core/track"
)

var actx = timing.Context{BPM: 120, Sig: timing.Sig{Beats: 4, Unit: 4}, PixelsPerMeasure: 200}

// lane 0 pixels start below the transport bar plus the ruler
const laneY0 = transportHeight + rulerHeight

func newTestView(tracks ...*track.Track) *ArrangeView {
	v := NewArrangeView(image.Rect(0, transportHeight, 1024, 640), testLogger)
	v.Tracks = tracks
	return v
}

func update(v *ArrangeView, x, y int, left bool) bool {
	var capturing bool
	frame(x, y, left, func() { capturing = v.Update(actx, 0) })
	return capturing
}

func TestDragMovesTrack(t *testing.T) {
	tr := track.NewAudio(1, "vox", 2, actx) // 200px wide at this zoom
	v := newTestView(tr)

	update(v, 100, laneY0+36, true)
	if !v.drag.Active() {
		t.Fatalf("press on block body did not start a drag")
	}
	update(v, 137, laneY0+41, true) // +37px snaps to 37.5
	update(v, 137, laneY0+41, false)
	if v.drag.Active() {
		t.Fatalf("release did not end the drag")
	}
	if want := timing.PixelsToTicks(37.5, actx); tr.StartTicks != want {
		t.Fatalf("start ticks=%f want %f", tr.StartTicks, want)
	}
	if tr.Lane != 0 {
		t.Fatalf("lane=%d want 0", tr.Lane)
	}
}

func TestDragAcrossLanes(t *testing.T) {
	tr := track.NewAudio(1, "vox", 2, actx)
	v := newTestView(tr)

	update(v, 100, laneY0+36, true)
	update(v, 100, laneY0+36+laneHeight, true)
	update(v, 100, laneY0+36+laneHeight, false)
	if tr.Lane != 1 {
		t.Fatalf("lane=%d want 1", tr.Lane)
	}
	if tr.StartTicks != 0 {
		t.Fatalf("vertical move changed start ticks: %f", tr.StartTicks)
	}
}

func TestDragInPlaceIsNoOp(t *testing.T) {
	tr := track.NewAudio(1, "vox", 2, actx)
	tr.StartTicks = 480
	v := newTestView(tr)

	update(v, 100, laneY0+36, true)
	update(v, 100, laneY0+36, false)
	if tr.StartTicks != 480 || tr.Lane != 0 {
		t.Fatalf("in-place release mutated track: ticks=%f lane=%d", tr.StartTicks, tr.Lane)
	}
}

func TestResizeLeftEdgeTrims(t *testing.T) {
	tr := track.NewAudio(1, "vox", 2, actx)
	v := newTestView(tr)

	update(v, 2, laneY0+36, true) // within the left edge grab margin
	if !v.resize.Active() {
		t.Fatalf("press on left edge did not start a resize")
	}
	update(v, 52, laneY0+36, true) // +50px = 4 subdivisions
	update(v, 52, laneY0+36, false)

	if tr.TrimStart != 480 || tr.TrimEnd != 1920 {
		t.Fatalf("trim=[%f,%f] want [480,1920]", tr.TrimStart, tr.TrimEnd)
	}
	if tr.StartTicks != 480 {
		t.Fatalf("start ticks=%f want 480", tr.StartTicks)
	}
	if got := track.VisibleWidth(tr, actx, 0); got != 150 {
		t.Fatalf("derived width=%f want 150", got)
	}
}

func TestResizeRightEdgeCollapse(t *testing.T) {
	tr := track.NewAudio(1, "vox", 2, actx)
	v := newTestView(tr)

	update(v, 200, laneY0+36, true)
	if !v.resize.Active() || v.resize.Edge() != gesture.EdgeRight {
		t.Fatalf("press on right edge did not start a right resize")
	}
	update(v, -300, laneY0+36, true) // collapse far past the left edge
	update(v, -300, laneY0+36, false)

	// one subdivision of visible content survives
	if got := track.VisibleWidth(tr, actx, 0); got != actx.SubdivisionWidth() {
		t.Fatalf("width=%f want %f", got, actx.SubdivisionWidth())
	}
	if tr.TrimStart != 0 {
		t.Fatalf("right resize moved trim start: %f", tr.TrimStart)
	}
}

func TestZeroWidthBlocksIgnorePointer(t *testing.T) {
	loading := &track.Track{ID: 1, Kind: track.KindAudio} // no content yet
	v := newTestView(loading)

	if update(v, 2, laneY0+36, true) {
		t.Fatalf("zero-width block captured the pointer")
	}
	if v.drag.Active() || v.resize.Active() {
		t.Fatalf("gesture started on zero-width block")
	}
}

func TestGestureCapturesPointer(t *testing.T) {
	tr := track.NewAudio(1, "vox", 2, actx)
	v := newTestView(tr)

	if !update(v, 100, laneY0+36, true) {
		t.Fatalf("active drag not reported as capturing")
	}
	update(v, 100, laneY0+36, false)
	if update(v, 500, laneY0+36, false) {
		t.Fatalf("idle view reported capturing")
	}
}

func TestLiveOverlayDoesNotMutateTrack(t *testing.T) {
	tr := track.NewAudio(1, "vox", 2, actx)
	v := newTestView(tr)

	update(v, 100, laneY0+36, true)
	update(v, 162, laneY0+36, true)
	// mid-gesture: live frame moved, persisted state untouched
	if f := v.blockFrame(tr, actx); f.Position == 0 {
		t.Fatalf("live overlay not applied")
	}
	if tr.StartTicks != 0 {
		t.Fatalf("update mutated track before commit: %f", tr.StartTicks)
	}
	update(v, 162, laneY0+36, false)
	if tr.StartTicks == 0 {
		t.Fatalf("commit did not persist the move")
	}
}
