package timing

import "math"

// Snap rounds v to the nearest multiple of grid, then clamps the result to be
// at least min. A non-positive grid disables rounding and only clamps, so a
// degenerate subdivision can never divide by zero.
func Snap(v, grid, min float64) float64 {
	if grid > 0 {
		v = math.Round(v/grid) * grid
	}
	if v < min {
		v = min
	}
	return v
}
