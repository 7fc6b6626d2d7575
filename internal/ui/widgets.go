package ui

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// Ebiten's debug font uses a 6x13 glyph.
	debugCharW = 6
	debugCharH = 13

	buttonPad = 2
)

// insetRect returns r shrunk by pad pixels on all sides.
func insetRect(r image.Rectangle, pad int) image.Rectangle {
	return image.Rect(r.Min.X+pad, r.Min.Y+pad, r.Max.X-pad, r.Max.Y-pad)
}

// pt reports whether (x,y) lies within r.
func pt(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// ButtonStyle describes rectangular button visuals.
type ButtonStyle struct {
	Fill   color.Color
	Border color.Color
}

// Button is a basic clickable component with rectangular bounds and a label.
type Button struct {
	r       image.Rectangle
	Text    string
	Style   ButtonStyle
	OnClick func()
	pressed bool
	Repeat  bool
	held    int
}

func NewButton(text string, style ButtonStyle, onClick func()) *Button {
	return &Button{Text: text, Style: style, OnClick: onClick}
}

func (b *Button) Rect() image.Rectangle     { return b.r }
func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Draw renders the button and its centered label.
func (b *Button) Draw(dst *ebiten.Image) {
	drawButton(dst, b.r, b.Style.Fill, b.Style.Border, b.pressed)
	w := debugCharW * utf8.RuneCountInString(b.Text)
	x := b.r.Min.X + (b.r.Dx()-w)/2
	y := b.r.Min.Y + (b.r.Dy()-debugCharH)/2
	ebitenutil.DebugPrintAt(dst, b.Text, x, y)
}

// Handle processes the mouse state at (mx,my). OnClick fires on the initial
// press and, for Repeat buttons, on an accelerating interval while held.
func (b *Button) Handle(mx, my int, pressed bool) bool {
	inside := image.Pt(mx, my).In(b.r)
	if pressed && inside {
		b.held++
		if b.held == 1 || (b.Repeat && b.repeatTick()) {
			if b.OnClick != nil {
				b.OnClick()
			}
		}
		b.pressed = true
		return true
	}
	b.pressed = false
	b.held = 0
	return false
}

func (b *Button) repeatTick() bool {
	d := b.held
	if d <= 30 {
		return false
	}
	step := d - 30
	accel := step / 30
	if accel > 4 {
		accel = 4
	}
	interval := 6 - accel
	return step%interval == 0
}

// GridLayout splits a rectangle into rows and columns using fractional weights.
type GridLayout struct {
	bounds     image.Rectangle
	colWeights []float64
	rowWeights []float64
	colPos     []int
	rowPos     []int
}

func NewGridLayout(b image.Rectangle, cols, rows []float64) *GridLayout {
	g := &GridLayout{bounds: b, colWeights: cols, rowWeights: rows}
	g.recalc()
	return g
}

func (g *GridLayout) recalc() {
	totalW := 0.0
	for _, w := range g.colWeights {
		totalW += w
	}
	totalH := 0.0
	for _, h := range g.rowWeights {
		totalH += h
	}
	g.colPos = make([]int, len(g.colWeights)+1)
	x := g.bounds.Min.X
	for i, w := range g.colWeights {
		g.colPos[i] = x
		x += int(float64(g.bounds.Dx()) * (w / totalW))
	}
	g.colPos[len(g.colWeights)] = g.bounds.Max.X

	g.rowPos = make([]int, len(g.rowWeights)+1)
	y := g.bounds.Min.Y
	for i, h := range g.rowWeights {
		g.rowPos[i] = y
		y += int(float64(g.bounds.Dy()) * (h / totalH))
	}
	g.rowPos[len(g.rowWeights)] = g.bounds.Max.Y
}

// Cell returns the rectangle of the cell at (col,row).
func (g *GridLayout) Cell(col, row int) image.Rectangle {
	return image.Rect(g.colPos[col], g.rowPos[row], g.colPos[col+1], g.rowPos[row+1])
}
