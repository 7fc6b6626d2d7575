package track

import (
	"testing"

	"arranger/core/timing"
)

var ctx = timing.Context{BPM: 120, Sig: timing.Sig{Beats: 4, Unit: 4}, PixelsPerMeasure: 200}

func TestAudioFullWidth(t *testing.T) {
	tr := NewAudio(1, "vox", 2, ctx) // 2s = 1 measure at 120bpm 4/4
	if got := FullWidth(tr, ctx); got != 200 {
		t.Fatalf("full width=%f want 200", got)
	}
	if tr.DurationTicks != 1920 {
		t.Fatalf("duration=%f want 1920", tr.DurationTicks)
	}
}

func TestNotesFullWidth(t *testing.T) {
	tr := NewNotes(2, "keys", []Note{
		{Start: 0, End: 480, Key: 60},
		{Start: 480, End: 1920, Key: 64}, // furthest end wins
		{Start: 960, End: 1440, Key: 67},
	})
	if got := FullWidth(tr, ctx); got != 200 {
		t.Fatalf("full width=%f want 200", got)
	}
}

func TestUntrimmedGeometry(t *testing.T) {
	// 4 beats at 480 ticks/beat, no trim window set
	tr := NewNotes(3, "keys", []Note{{Start: 0, End: 1920, Key: 60}})
	if tr.Trimmed() {
		t.Fatalf("fresh track reports trimmed")
	}
	if w, full := VisibleWidth(tr, ctx, 0), FullWidth(tr, ctx); w != full {
		t.Fatalf("visible=%f full=%f want equal", w, full)
	}
	if off := ContentOffset(tr, ctx); off != 0 {
		t.Fatalf("content offset=%f want 0", off)
	}
}

func TestTrimmedGeometry(t *testing.T) {
	tr := NewAudio(4, "vox", 2, ctx)
	tr.SetTrim(480, 1440, 120) // middle half of 1920 ticks
	if got := VisibleWidth(tr, ctx, 0); got != 100 {
		t.Fatalf("visible width=%f want 100", got)
	}
	if got := ContentOffset(tr, ctx); got != -50 {
		t.Fatalf("content offset=%f want -50", got)
	}
}

func TestWidthOverride(t *testing.T) {
	tr := NewAudio(5, "vox", 2, ctx)
	tr.SetTrim(480, 1440, 120)
	// mid-gesture the owner supplies the live width verbatim
	if got := VisibleWidth(tr, ctx, 87.5); got != 87.5 {
		t.Fatalf("override width=%f want 87.5", got)
	}
}

func TestZeroExtent(t *testing.T) {
	// track created before its file finished loading
	empty := &Track{ID: 6, Kind: KindAudio}
	if got := FullWidth(empty, ctx); got != 0 {
		t.Fatalf("audio full width=%f want 0", got)
	}
	noNotes := &Track{ID: 7, Kind: KindNotes}
	if got := VisibleWidth(noNotes, ctx, 0); got != 0 {
		t.Fatalf("notes visible width=%f want 0", got)
	}
	if got := ContentOffset(noNotes, ctx); got != 0 {
		t.Fatalf("content offset=%f want 0", got)
	}
}

func TestSetTrimClamps(t *testing.T) {
	tr := NewAudio(8, "vox", 2, ctx)
	tr.SetTrim(-100, 5000, 120)
	if tr.Trimmed() {
		t.Fatalf("full-content window should clear trim, got [%f,%f]", tr.TrimStart, tr.TrimEnd)
	}
	tr.SetTrim(1900, 1920, 120)
	if tr.TrimEnd-tr.TrimStart != 120 {
		t.Fatalf("window below min length kept: [%f,%f]", tr.TrimStart, tr.TrimEnd)
	}
	if tr.TrimEnd > tr.DurationTicks || tr.TrimStart < 0 {
		t.Fatalf("window out of bounds: [%f,%f]", tr.TrimStart, tr.TrimEnd)
	}
}
