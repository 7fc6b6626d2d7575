package track

import "arranger/core/timing"

// ID identifies a track within one arrangement.
type ID int

// Invalid is the sentinel for "no track", reported by idle gesture sessions.
const Invalid ID = -1

// Kind selects how a track's content extent is measured: elapsed seconds for
// continuous audio, maximum note end offset for discrete note content.
type Kind int

const (
	KindAudio Kind = iota
	KindNotes
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindNotes:
		return "notes"
	default:
		return "unknown"
	}
}

// Note is one discrete content event, offsets in ticks relative to the
// track's own content origin.
type Note struct {
	Start    float64
	End      float64
	Key      uint8
	Velocity uint8
}

// Track is the per-track state the geometry core reads. The surrounding
// application owns it; gesture sessions only ever borrow a snapshot and
// report desired new values back.
type Track struct {
	ID   ID
	Name string
	Kind Kind

	StartTicks float64 // musical start offset on the timeline
	Lane       int     // vertical row index

	// Non-destructive trim window into the full content, in ticks relative
	// to the content origin. TrimEnd <= 0 means "untrimmed". Whenever the
	// window is set: 0 <= TrimStart < TrimEnd <= DurationTicks.
	TrimStart float64
	TrimEnd   float64

	// DurationTicks is the full untrimmed content length, fixed when the
	// content is loaded. A resize never mutates it.
	DurationTicks float64

	Seconds float64 // continuous content extent (KindAudio)
	Notes   []Note  // discrete content (KindNotes)
}

// NewAudio builds an audio track whose musical duration is derived from its
// length in seconds at the load-time tempo.
func NewAudio(id ID, name string, seconds float64, c timing.Context) *Track {
	return &Track{
		ID:            id,
		Name:          name,
		Kind:          KindAudio,
		Seconds:       seconds,
		DurationTicks: timing.SecondsToTicks(seconds, c),
	}
}

// NewNotes builds a note track; its duration is the furthest note end.
func NewNotes(id ID, name string, notes []Note) *Track {
	t := &Track{ID: id, Name: name, Kind: KindNotes, Notes: notes}
	t.DurationTicks = t.ExtentTicks()
	return t
}

// Trimmed reports whether a trim window is set.
func (t *Track) Trimmed() bool { return t.TrimEnd > 0 }

// TrimLen returns the tick length of the visible window.
func (t *Track) TrimLen() float64 {
	if !t.Trimmed() {
		return t.DurationTicks
	}
	return t.TrimEnd - t.TrimStart
}

// ExtentTicks returns the discrete content extent: the maximum note end
// offset, 0 for empty content.
func (t *Track) ExtentTicks() float64 {
	max := 0.0
	for _, n := range t.Notes {
		if n.End > max {
			max = n.End
		}
	}
	return max
}

// SetTrim applies a trim window, clamped to the invariant
// 0 <= start < end <= DurationTicks. A window covering the full content
// clears the trim instead, so "untrimmed" stays canonical.
func (t *Track) SetTrim(start, end float64, minLen float64) {
	if t.DurationTicks <= 0 {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > t.DurationTicks {
		end = t.DurationTicks
	}
	if minLen <= 0 || minLen > t.DurationTicks {
		minLen = 1
	}
	if end-start < minLen {
		if start+minLen <= t.DurationTicks {
			end = start + minLen
		} else {
			end = t.DurationTicks
			start = end - minLen
		}
	}
	if start == 0 && end == t.DurationTicks {
		t.TrimStart, t.TrimEnd = 0, 0
		return
	}
	t.TrimStart, t.TrimEnd = start, end
}
