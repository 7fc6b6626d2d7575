package timing

import "fmt"

// TicksPerQuarter is the internal musical resolution: every tick quantity in
// the editor is expressed at this fixed pulses-per-quarter-note rate.
const TicksPerQuarter = 480

// Sig is a time signature: Beats per measure over a beat Unit (4 = quarter,
// 8 = eighth, ...). Unit is conventionally a power of two but the math only
// requires it to be positive.
type Sig struct {
	Beats int
	Unit  int
}

func (s Sig) String() string { return fmt.Sprintf("%d/%d", s.Beats, s.Unit) }

// Context carries the tempo, meter and zoom parameters every conversion
// depends on. Callers pass it explicitly on each call; nothing in core caches
// it, since tempo or zoom may change between any two calls (even mid-gesture).
type Context struct {
	BPM              float64
	Sig              Sig
	PixelsPerMeasure float64
}

// validate panics on a non-positive tempo parameter. Such values can only
// come from a caller bug, never from user input, so failing loudly beats
// returning nonsense geometry.
func (c Context) validate() {
	if c.BPM <= 0 {
		panic(fmt.Sprintf("timing: non-positive BPM %v", c.BPM))
	}
	if c.Sig.Beats <= 0 || c.Sig.Unit <= 0 {
		panic(fmt.Sprintf("timing: invalid time signature %s", c.Sig))
	}
	if c.PixelsPerMeasure <= 0 {
		panic(fmt.Sprintf("timing: non-positive pixels per measure %v", c.PixelsPerMeasure))
	}
}

// TicksPerBeat returns the tick length of one beat of the signature's unit.
func (c Context) TicksPerBeat() float64 {
	return TicksPerQuarter * 4 / float64(c.Sig.Unit)
}

// TicksPerMeasure returns the tick length of one full measure.
func (c Context) TicksPerMeasure() float64 {
	return c.TicksPerBeat() * float64(c.Sig.Beats)
}

// SubdivisionWidth is the smallest snappable grid unit in pixels. The
// denominator couples grid density to the meter: 6/8 yields finer
// subdivisions than 4/4 at the same zoom.
func (c Context) SubdivisionWidth() float64 {
	return c.PixelsPerMeasure / float64(c.Sig.Beats*c.Sig.Unit)
}

// SubdivisionTicks is the tick length of one grid subdivision.
func (c Context) SubdivisionTicks() float64 {
	return c.TicksPerMeasure() / float64(c.Sig.Beats*c.Sig.Unit)
}

// SecondsToPixels converts elapsed seconds to a horizontal pixel offset.
func SecondsToPixels(sec float64, c Context) float64 {
	c.validate()
	beats := sec * c.BPM / 60
	measures := beats / float64(c.Sig.Beats)
	return measures * c.PixelsPerMeasure
}

// PixelsToSeconds is the exact inverse of SecondsToPixels.
func PixelsToSeconds(px float64, c Context) float64 {
	c.validate()
	measures := px / c.PixelsPerMeasure
	beats := measures * float64(c.Sig.Beats)
	return beats * 60 / c.BPM
}

// TicksToPixels converts a musical tick offset to a horizontal pixel offset.
func TicksToPixels(ticks float64, c Context) float64 {
	c.validate()
	return ticks / c.TicksPerMeasure() * c.PixelsPerMeasure
}

// PixelsToTicks is the exact inverse of TicksToPixels.
func PixelsToTicks(px float64, c Context) float64 {
	c.validate()
	return px / c.PixelsPerMeasure * c.TicksPerMeasure()
}

// SecondsToTicks converts elapsed seconds to ticks at the context's tempo.
// One beat of the signature's unit lasts 60/BPM seconds.
func SecondsToTicks(sec float64, c Context) float64 {
	c.validate()
	return sec * c.BPM / 60 * c.TicksPerBeat()
}

// TicksToSeconds is the exact inverse of SecondsToTicks.
func TicksToSeconds(ticks float64, c Context) float64 {
	c.validate()
	return ticks / c.TicksPerBeat() * 60 / c.BPM
}
