package ui

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"arranger/core/gesture"
	"arranger/core/timing"
	"arranger/core/track"
	app_log "arranger/internal/log"
)

const (
	rulerHeight = 24
	laneHeight  = 80
	edgeGrab    = 5 // px hit-box on each block edge
	blockInset  = 6 // vertical gap between a block and its lane bounds
)

/* ───────────────────────────────────────────────────────────── */

// ArrangeView owns the tracks and routes pointer input into the gesture
// sessions. It is the collaborator the core reports to: live Update frames
// are kept in a per-gesture overlay and only a Commit mutates a track.
type ArrangeView struct {
	Bounds image.Rectangle
	Tracks []*track.Track
	logger *app_log.Logger

	drag   gesture.Drag
	resize gesture.Resize

	liveDrag  gesture.Point // overlay while drag is active
	liveFrame gesture.Frame // overlay while resize is active

	leftPrev bool
}

func NewArrangeView(b image.Rectangle, logger *app_log.Logger) *ArrangeView {
	return &ArrangeView{Bounds: b, logger: logger}
}

// Lanes returns how many full lanes fit in the view.
func (v *ArrangeView) Lanes() int {
	n := (v.Bounds.Dy() - rulerHeight) / laneHeight
	if n < 1 {
		n = 1
	}
	return n
}

// TrackByID returns the track with the given id, nil if absent.
func (v *ArrangeView) TrackByID(id track.ID) *track.Track {
	for _, t := range v.Tracks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

/* ─── geometry ─────────────────────────────────────────────── */

// blockFrame returns a track's visible geometry in world pixels, substituting
// the live gesture overlay while that track's gesture is in flight.
func (v *ArrangeView) blockFrame(t *track.Track, c timing.Context) gesture.Frame {
	if v.resize.Active() && v.resize.TrackID() == t.ID {
		return v.liveFrame
	}
	f := gesture.Frame{
		Position:      timing.TicksToPixels(t.StartTicks, c),
		Width:         track.VisibleWidth(t, c, 0),
		ContentOffset: track.ContentOffset(t, c),
	}
	if v.drag.Active() && v.drag.TrackID() == t.ID {
		f.Position = v.liveDrag.X
	}
	return f
}

// blockLane returns the lane a track renders in, following the live drag.
func (v *ArrangeView) blockLane(t *track.Track) int {
	if v.drag.Active() && v.drag.TrackID() == t.ID {
		return int(v.liveDrag.Y / laneHeight)
	}
	return t.Lane
}

func (v *ArrangeView) laneTop(lane int) int {
	return v.Bounds.Min.Y + rulerHeight + lane*laneHeight
}

/* ─── pointer routing ──────────────────────────────────────── */

// Update runs one frame of pointer routing. scrollX is the scroller's screen
// translation; the sessions always receive scroll-adjusted world pixels.
// It reports whether a gesture owns the pointer (blocks wheel scrolling).
func (v *ArrangeView) Update(c timing.Context, scrollX float64) bool {
	mx, my := cursorPosition()
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	pressed := left && !v.leftPrev
	released := !left && v.leftPrev
	v.leftPrev = left

	wx := float64(mx) - scrollX
	wy := float64(my - v.Bounds.Min.Y - rulerHeight)

	switch {
	case v.resize.Active():
		if left {
			v.liveFrame = v.resize.Update(wx, c)
		}
		if released {
			v.applyResize(v.resize.Commit(), c)
		}
	case v.drag.Active():
		if left {
			v.liveDrag = v.drag.Update(gesture.Point{X: wx, Y: wy}, c)
		}
		if released {
			v.applyDrag(v.drag.Commit(c))
		}
	case pressed && pt(mx, my, v.laneArea()):
		v.beginGesture(wx, wy, c)
	}
	return v.drag.Active() || v.resize.Active()
}

func (v *ArrangeView) laneArea() image.Rectangle {
	return image.Rect(v.Bounds.Min.X, v.Bounds.Min.Y+rulerHeight, v.Bounds.Max.X, v.Bounds.Max.Y)
}

// beginGesture hit-tests the press and starts the matching session. Edge
// handles win over the body; zero-width (still loading) content gets no
// resize handles.
func (v *ArrangeView) beginGesture(wx, wy float64, c timing.Context) {
	if wy < 0 {
		return
	}
	lane := int(wy) / laneHeight
	for i := len(v.Tracks) - 1; i >= 0; i-- {
		t := v.Tracks[i]
		if t.Lane != lane {
			continue
		}
		f := v.blockFrame(t, c)
		if f.Width <= 0 {
			continue
		}
		switch {
		case wx >= f.Position-edgeGrab && wx <= f.Position+edgeGrab:
			v.resize.Start(t.ID, gesture.EdgeLeft, wx, f)
			v.liveFrame = f
			v.logger.Debugf("[ARRANGE] resize start track=%d edge=left", t.ID)
		case wx >= f.Position+f.Width-edgeGrab && wx <= f.Position+f.Width+edgeGrab:
			v.resize.Start(t.ID, gesture.EdgeRight, wx, f)
			v.liveFrame = f
			v.logger.Debugf("[ARRANGE] resize start track=%d edge=right", t.ID)
		case wx > f.Position && wx < f.Position+f.Width:
			pos := gesture.Point{X: f.Position, Y: float64(t.Lane * laneHeight)}
			v.drag.Start(t.ID, gesture.Point{X: wx, Y: wy}, pos, laneHeight)
			v.liveDrag = pos
			v.logger.Debugf("[ARRANGE] drag start track=%d", t.ID)
		default:
			continue
		}
		return
	}
}

/* ─── commit application (the owner side of the contract) ──── */

// applyDrag persists a finished drag. A no-op release changes nothing.
func (v *ArrangeView) applyDrag(res gesture.DragResult) {
	if !res.Moved {
		v.logger.Debugf("[ARRANGE] drag released in place track=%d", res.TrackID)
		return
	}
	t := v.TrackByID(res.TrackID)
	if t == nil {
		return
	}
	t.StartTicks = res.Ticks
	lane := res.Lane
	if max := v.Lanes() - 1; lane > max {
		lane = max
	}
	t.Lane = lane
	v.logger.Infof("[ARRANGE] track %d moved to tick=%.0f lane=%d", t.ID, t.StartTicks, t.Lane)
}

// applyResize converts the reported pixel delta into a trim adjustment. The
// scale factor comes from the trim ratio (full width <-> full duration), so
// width stays derived and can never drift from trim state.
func (v *ArrangeView) applyResize(res gesture.ResizeResult, c timing.Context) {
	t := v.TrackByID(res.TrackID)
	if t == nil {
		return
	}
	full := track.FullWidth(t, c)
	if full <= 0 || t.DurationTicks <= 0 || res.DeltaPixels == 0 {
		return
	}
	deltaTicks := res.DeltaPixels / full * t.DurationTicks

	start, end := t.TrimStart, t.TrimEnd
	if !t.Trimmed() {
		end = t.DurationTicks
	}
	if res.Edge == gesture.EdgeRight {
		end += deltaTicks
	} else {
		start += deltaTicks
		newStart := t.StartTicks + timing.PixelsToTicks(res.DeltaPixels, c)
		if newStart < 0 {
			newStart = 0
		}
		t.StartTicks = newStart
	}
	t.SetTrim(start, end, minTrimTicks(t, c, full))
	v.logger.Infof("[ARRANGE] track %d trimmed %s by %.1fpx -> [%.0f,%.0f]",
		t.ID, res.Edge, res.DeltaPixels, t.TrimStart, t.TrimEnd)
}

// minTrimTicks is one grid subdivision expressed in the track's own content
// ticks, matching the session's minimum visible width.
func minTrimTicks(t *track.Track, c timing.Context, fullWidth float64) float64 {
	return c.SubdivisionWidth() / fullWidth * t.DurationTicks
}

/* ─── drawing ──────────────────────────────────────────────── */

// Draw renders ruler, lanes, blocks and the playhead. playSec is the current
// transport position in seconds.
func (v *ArrangeView) Draw(dst *ebiten.Image, c timing.Context, scrollX float64, playSec float64) {
	drawRect(dst, v.Bounds, colBG, true)
	for lane := 0; lane < v.Lanes(); lane++ {
		col := colLaneEven
		if lane%2 == 1 {
			col = colLaneOdd
		}
		top := v.laneTop(lane)
		drawRect(dst, image.Rect(v.Bounds.Min.X, top, v.Bounds.Max.X, top+laneHeight), col, true)
	}
	v.drawGrid(dst, c, scrollX)
	for _, t := range v.Tracks {
		v.drawBlock(dst, t, c, scrollX)
	}

	px := int(timing.SecondsToPixels(playSec, c) + scrollX)
	if px >= v.Bounds.Min.X && px < v.Bounds.Max.X {
		vline(dst, px, v.Bounds.Min.Y, v.Bounds.Max.Y, colPlayhead)
	}
}

// drawGrid draws the measure ruler and the subdivision grid. Subdivision
// lines drop out below 4px spacing so deep zoom-out stays readable.
func (v *ArrangeView) drawGrid(dst *ebiten.Image, c timing.Context, scrollX float64) {
	drawRect(dst, image.Rect(v.Bounds.Min.X, v.Bounds.Min.Y, v.Bounds.Max.X, v.Bounds.Min.Y+rulerHeight), colRuler, true)

	sub := c.SubdivisionWidth()
	subsPerMeasure := c.Sig.Beats * c.Sig.Unit
	firstMeasure := int((-scrollX) / c.PixelsPerMeasure)
	if firstMeasure < 0 {
		firstMeasure = 0
	}
	for m := firstMeasure; ; m++ {
		x := int(float64(m)*c.PixelsPerMeasure + scrollX)
		if x >= v.Bounds.Max.X {
			break
		}
		if x >= v.Bounds.Min.X {
			vline(dst, x, v.Bounds.Min.Y, v.Bounds.Max.Y, colMeasure)
			ebitenutil.DebugPrintAt(dst, strconv.Itoa(m+1), x+3, v.Bounds.Min.Y+5)
		}
		if sub >= 4 {
			for s := 1; s < subsPerMeasure; s++ {
				sx := int(float64(m)*c.PixelsPerMeasure + float64(s)*sub + scrollX)
				if sx >= v.Bounds.Min.X && sx < v.Bounds.Max.X {
					vline(dst, sx, v.Bounds.Min.Y+rulerHeight, v.Bounds.Max.Y, colSubdiv)
				}
			}
		}
	}
}

func (v *ArrangeView) drawBlock(dst *ebiten.Image, t *track.Track, c timing.Context, scrollX float64) {
	f := v.blockFrame(t, c)
	if f.Width <= 0 {
		return
	}
	lane := v.blockLane(t)
	top := v.laneTop(lane) + blockInset
	bot := v.laneTop(lane) + laneHeight - blockInset
	x1 := int(f.Position + scrollX)
	x2 := int(f.Position + f.Width + scrollX)
	if x2 <= v.Bounds.Min.X || x1 >= v.Bounds.Max.X {
		return
	}
	r := image.Rect(x1, top, x2, bot)

	fill := colAudioBlock
	if t.Kind == track.KindNotes {
		fill = colNotesBlock
	}
	drawRect(dst, r, fill, true)
	v.drawContent(dst, t, f, r, c)
	border := colBlockBorder
	if (v.drag.Active() && v.drag.TrackID() == t.ID) || (v.resize.Active() && v.resize.TrackID() == t.ID) {
		border = colBlockLive
	}
	drawRect(dst, r, border, false)
	ebitenutil.DebugPrintAt(dst, t.Name, r.Min.X+4, r.Min.Y+2)
}

// drawContent renders the window into the full content, shifted by the
// content offset and clipped to the block rectangle.
func (v *ArrangeView) drawContent(dst *ebiten.Image, t *track.Track, f gesture.Frame, r image.Rectangle, c timing.Context) {
	if t.Kind == track.KindAudio {
		// inner stripe standing in for the waveform, spanning the full
		// content so a trim visibly slides the window
		full := track.FullWidth(t, c)
		x1 := f.Position + f.ContentOffset
		if a, b, ok := clipSpan(x1, x1+full, f.Position, f.Position+f.Width); ok {
			mid := (r.Min.Y + r.Max.Y) / 2
			drawRect(dst, image.Rect(r.Min.X+int(a-f.Position), mid-8, r.Min.X+int(b-f.Position), mid+8), colAudioInner, true)
		}
		return
	}
	lo, hi := noteKeyRange(t.Notes)
	h := (r.Dy() - 4) / (hi - lo + 1)
	if h < 1 {
		h = 1
	}
	for _, n := range t.Notes {
		nx1 := f.Position + f.ContentOffset + timing.TicksToPixels(n.Start, c)
		nx2 := f.Position + f.ContentOffset + timing.TicksToPixels(n.End, c)
		a, b, ok := clipSpan(nx1, nx2, f.Position, f.Position+f.Width)
		if !ok {
			continue
		}
		y := r.Max.Y - 2 - (int(n.Key)-lo+1)*h
		drawRect(dst, image.Rect(r.Min.X+int(a-f.Position), y, r.Min.X+int(b-f.Position), y+h), colNote, true)
	}
}

/* ─── small helpers ────────────────────────────────────────── */

// clipSpan intersects [x1,x2) with [lo,hi); ok is false when nothing is left.
func clipSpan(x1, x2, lo, hi float64) (a, b float64, ok bool) {
	if x1 < lo {
		x1 = lo
	}
	if x2 > hi {
		x2 = hi
	}
	return x1, x2, x2 > x1
}

func noteKeyRange(notes []track.Note) (lo, hi int) {
	lo, hi = 127, 0
	for _, n := range notes {
		if int(n.Key) < lo {
			lo = int(n.Key)
		}
		if int(n.Key) > hi {
			hi = int(n.Key)
		}
	}
	if lo > hi {
		lo, hi = 60, 60
	}
	return lo, hi
}

