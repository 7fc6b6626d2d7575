package ui

import (
	"image"
	"testing"
)

func TestButtonClick(t *testing.T) {
	clicks := 0
	b := NewButton("x", ButtonStyle{}, func() { clicks++ })
	b.SetRect(image.Rect(10, 10, 50, 30))

	if b.Handle(5, 5, true) {
		t.Fatalf("click outside handled")
	}
	if !b.Handle(20, 20, true) {
		t.Fatalf("click inside not handled")
	}
	// held press must not re-fire a non-repeat button
	b.Handle(20, 20, true)
	b.Handle(20, 20, false)
	if clicks != 1 {
		t.Fatalf("clicks=%d want 1", clicks)
	}
}

func TestButtonRepeat(t *testing.T) {
	clicks := 0
	b := NewButton("+", ButtonStyle{}, func() { clicks++ })
	b.Repeat = true
	b.SetRect(image.Rect(0, 0, 20, 20))
	for i := 0; i < 120; i++ {
		b.Handle(5, 5, true)
	}
	if clicks < 2 {
		t.Fatalf("held repeat button fired %d times", clicks)
	}
}

func TestGridLayoutCells(t *testing.T) {
	g := NewGridLayout(image.Rect(0, 0, 100, 10), []float64{1, 1, 2}, []float64{1})
	if c := g.Cell(0, 0); c.Min.X != 0 || c.Max.X != 25 {
		t.Fatalf("cell 0 = %v", c)
	}
	if c := g.Cell(2, 0); c.Min.X != 50 || c.Max.X != 100 {
		t.Fatalf("cell 2 = %v", c)
	}
	// cells tile the bounds exactly
	if g.Cell(1, 0).Max.X != g.Cell(2, 0).Min.X {
		t.Fatalf("cells do not tile: %v %v", g.Cell(1, 0), g.Cell(2, 0))
	}
}

func TestInsetRect(t *testing.T) {
	r := insetRect(image.Rect(0, 0, 10, 10), 2)
	if r != image.Rect(2, 2, 8, 8) {
		t.Fatalf("inset=%v", r)
	}
}
