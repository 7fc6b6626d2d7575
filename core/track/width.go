package track

import "arranger/core/timing"

// FullWidth returns the pixel width of the track's complete, untrimmed
// content at the given zoom/tempo. Zero-extent content (a track created
// before its file finished loading) yields 0; callers treat that as
// "not ready" and suppress resize handles.
func FullWidth(t *Track, c timing.Context) float64 {
	switch t.Kind {
	case KindAudio:
		if t.Seconds <= 0 {
			return 0
		}
		return timing.SecondsToPixels(t.Seconds, c)
	case KindNotes:
		ext := t.ExtentTicks()
		if ext <= 0 {
			return 0
		}
		return timing.TicksToPixels(ext, c)
	default:
		return 0
	}
}

// VisibleWidth returns the pixel width of the trimmed window. overridePx > 0
// is used verbatim: during an in-flight resize the owner supplies the live
// gesture width rather than recomputing from trim state. Otherwise the width
// is always derived from the trim ratio, never stored.
func VisibleWidth(t *Track, c timing.Context, overridePx float64) float64 {
	if overridePx > 0 {
		return overridePx
	}
	full := FullWidth(t, c)
	if !t.Trimmed() || t.DurationTicks <= 0 {
		return full
	}
	return full * (t.TrimEnd - t.TrimStart) / t.DurationTicks
}

// ContentOffset returns the horizontal shift applied to the full-content
// visual so the trimmed window appears at the left edge of the visible
// container. 0 when untrimmed or degenerate.
func ContentOffset(t *Track, c timing.Context) float64 {
	if !t.Trimmed() || t.DurationTicks <= 0 {
		return 0
	}
	return -(t.TrimStart / t.DurationTicks) * FullWidth(t, c)
}
