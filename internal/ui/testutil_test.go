package ui

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2"

	app_log "arranger/internal/log"
)

var testLogger = app_log.New(io.Discard, app_log.LevelError)

// setInput points the input shims at a fixed frame state and returns a
// restore function.
func setInput(x, y int, left bool, chars string, keys ...ebiten.Key) func() {
	pressed := map[ebiten.Key]bool{}
	for _, k := range keys {
		pressed[k] = true
	}
	return SetInputForTest(
		func() (int, int) { return x, y },
		func(b ebiten.MouseButton) bool { return left && b == ebiten.MouseButtonLeft },
		func(k ebiten.Key) bool { return pressed[k] },
		func(r []rune) []rune { return append(r, []rune(chars)...) },
		func() (float64, float64) { return 0, 0 },
	)
}

// frame runs fn with the given input state for one update.
func frame(x, y int, left bool, fn func()) {
	restore := setInput(x, y, left, "")
	fn()
	restore()
}
