package ui

import (
	"fmt"
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"arranger/core/timing"
)

const (
	transportHeight = 40
	maxBPM          = 400
)

// Transport is the top bar: play/stop, an editable BPM box and time
// signature steppers. It owns tempo and meter; the arrangement view reads
// them through the timing context built each frame.
type Transport struct {
	BPM     int
	Sig     timing.Sig
	Playing bool

	bpmBox  *TextInput
	playBtn *Button
	stopBtn *Button

	beatsDecBtn *Button
	beatsIncBtn *Button
	unitDecBtn  *Button
	unitIncBtn  *Button

	bpmErrorAnim float64
	bpmPrev      int
}

func NewTransport(bpm int, sig timing.Sig) *Transport {
	t := &Transport{BPM: bpm, Sig: sig}
	t.bpmBox = NewTextInput(image.Rect(50, 8, 110, 30), ButtonStyle{Fill: colBPMBox, Border: colButtonBorder})
	t.bpmBox.SetText(strconv.Itoa(bpm))
	t.playBtn = NewButton("Play", ButtonStyle{Fill: colPlayButton, Border: colButtonBorder}, func() { t.Playing = true })
	t.stopBtn = NewButton("Stop", ButtonStyle{Fill: colStopButton, Border: colButtonBorder}, func() { t.Playing = false })
	t.playBtn.SetRect(image.Rect(120, 8, 170, 30))
	t.stopBtn.SetRect(image.Rect(180, 8, 230, 30))

	style := ButtonStyle{Fill: colSigButton, Border: colButtonBorder}
	t.beatsDecBtn = NewButton("-", style, func() { t.setSig(t.Sig.Beats-1, t.Sig.Unit) })
	t.beatsIncBtn = NewButton("+", style, func() { t.setSig(t.Sig.Beats+1, t.Sig.Unit) })
	t.unitDecBtn = NewButton("-", style, func() { t.setSig(t.Sig.Beats, t.Sig.Unit/2) })
	t.unitIncBtn = NewButton("+", style, func() { t.setSig(t.Sig.Beats, t.Sig.Unit*2) })
	grid := NewGridLayout(image.Rect(280, 8, 420, 30), []float64{1, 1, 1, 1}, []float64{1})
	t.beatsDecBtn.SetRect(insetRect(grid.Cell(0, 0), buttonPad))
	t.beatsIncBtn.SetRect(insetRect(grid.Cell(1, 0), buttonPad))
	t.unitDecBtn.SetRect(insetRect(grid.Cell(2, 0), buttonPad))
	t.unitIncBtn.SetRect(insetRect(grid.Cell(3, 0), buttonPad))
	return t
}

// SetBPM clamps to the valid range, flashing the box on rejection.
func (t *Transport) SetBPM(b int) {
	if b < 1 {
		t.BPM = 1
		t.bpmErrorAnim = 1
		return
	}
	if b > maxBPM {
		t.BPM = maxBPM
		t.bpmErrorAnim = 1
		return
	}
	t.BPM = b
}

func (t *Transport) setSig(beats, unit int) {
	if beats < 1 || beats > 16 || unit < 1 || unit > 32 {
		return
	}
	t.Sig = timing.Sig{Beats: beats, Unit: unit}
}

// Update processes the transport controls. It reports whether the pointer
// was consumed so clicks on the bar never fall through to the arrangement.
func (t *Transport) Update() bool {
	mx, my := cursorPosition()
	left := isMouseButtonPressed(ebiten.MouseButtonLeft)

	prev := t.bpmBox.Focused()
	consumed := t.bpmBox.Update()
	if !prev && t.bpmBox.Focused() {
		t.bpmPrev = t.BPM
		t.bpmBox.SetText("")
	}
	if prev && !t.bpmBox.Focused() {
		txt := t.bpmBox.Value()
		if v, err := strconv.Atoi(txt); err == nil {
			t.SetBPM(v)
		} else {
			t.bpmErrorAnim = 1
			t.SetBPM(t.bpmPrev)
		}
		t.bpmBox.SetText(strconv.Itoa(t.BPM))
	}

	for _, b := range []*Button{t.playBtn, t.stopBtn, t.beatsDecBtn, t.beatsIncBtn, t.unitDecBtn, t.unitIncBtn} {
		if b.Handle(mx, my, left) {
			consumed = true
		}
	}

	t.bpmErrorAnim *= 0.85
	if t.bpmErrorAnim < 0.01 {
		t.bpmErrorAnim = 0
	}
	return consumed || my < transportHeight
}

// Draw renders the bar. info is the position readout composed by the caller.
func (t *Transport) Draw(dst *ebiten.Image, info string) {
	drawRect(dst, image.Rect(0, 0, dst.Bounds().Dx(), transportHeight), colTransport, true)
	ebitenutil.DebugPrintAt(dst, "BPM:", 10, 12)
	t.bpmBox.Draw(dst)
	if t.bpmErrorAnim > 0 {
		drawRect(dst, t.bpmBox.Rect, fadeColor(colError, t.bpmErrorAnim), false)
	}
	t.playBtn.Draw(dst)
	t.stopBtn.Draw(dst)

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Sig %s", t.Sig), 238, 12)
	t.beatsDecBtn.Draw(dst)
	t.beatsIncBtn.Draw(dst)
	t.unitDecBtn.Draw(dst)
	t.unitIncBtn.Draw(dst)

	ebitenutil.DebugPrintAt(dst, info, 430, 12)
}
