package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextInput is a one-line editable text box. Clicking focuses it, clicking
// elsewhere blurs it; typing appends at the end.
type TextInput struct {
	Rect    image.Rectangle
	Style   ButtonStyle
	text    string
	focused bool
	repeat  map[ebiten.Key]int
}

func NewTextInput(r image.Rectangle, style ButtonStyle) *TextInput {
	return &TextInput{Rect: r, Style: style, repeat: make(map[ebiten.Key]int)}
}

func (t *TextInput) Focused() bool    { return t.focused }
func (t *TextInput) Value() string    { return t.text }
func (t *TextInput) SetText(s string) { t.text = s }

// Update processes mouse and keyboard input. It reports whether the click
// was consumed by the box.
func (t *TextInput) Update() bool {
	mx, my := cursorPosition()
	consumed := false
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		if image.Pt(mx, my).In(t.Rect) {
			t.focused = true
			consumed = true
		} else {
			t.focused = false
		}
	}
	if !t.focused {
		return consumed
	}

	for _, r := range typedChars() {
		if r == '\n' || r == '\r' {
			continue
		}
		t.text += string(r)
	}
	if t.keyRepeat(ebiten.KeyBackspace) && len(t.text) > 0 {
		t.text = t.text[:len(t.text)-1]
	}
	if t.keyRepeat(ebiten.KeyEnter) || t.keyRepeat(ebiten.KeyEscape) {
		t.focused = false
	}
	return consumed
}

func (t *TextInput) keyRepeat(k ebiten.Key) bool {
	if isKeyPressed(k) {
		t.repeat[k]++
		d := t.repeat[k]
		return d == 1 || d > 15 && (d-15)%3 == 0
	}
	t.repeat[k] = 0
	return false
}

// Draw renders the box and its text.
func (t *TextInput) Draw(dst *ebiten.Image) {
	drawButton(dst, t.Rect, t.Style.Fill, t.Style.Border, t.focused)
	ebitenutil.DebugPrintAt(dst, t.text, t.Rect.Min.X+4, t.Rect.Min.Y+(t.Rect.Dy()-debugCharH)/2)
}
