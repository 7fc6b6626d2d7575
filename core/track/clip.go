package track

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"arranger/core/timing"
)

// LoadClip reads a standard MIDI file and flattens its note events into
// content for a KindNotes track. Offsets are rescaled from the file's own
// resolution to timing.TicksPerQuarter so the rest of the core never sees a
// foreign tick rate.
func LoadClip(path string) ([]Note, error) {
	data, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read midi file: %w", err)
	}
	tf, ok := data.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v, expected metric ticks", data.TimeFormat)
	}
	scale := float64(timing.TicksPerQuarter) / float64(tf)

	var notes []Note
	for _, tr := range data.Tracks {
		notes = append(notes, trackNotes(tr, scale)...)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Start < notes[j].Start })
	return notes, nil
}

// trackNotes pairs note-on/note-off events of one SMF track into Notes.
// A note-on with velocity 0 counts as a note-off.
func trackNotes(tr smf.Track, scale float64) []Note {
	type voice struct {
		ch, key uint8
	}
	type open struct {
		start float64
		vel   uint8
	}
	// keyed per channel so the same key sounding on two channels pairs with
	// its own note-off
	pending := map[voice]open{}
	var notes []Note
	var now uint32

	for _, ev := range tr {
		now += ev.Delta
		at := float64(now) * scale

		var ch, key, vel uint8
		msg := ev.Message
		switch {
		case msg.GetNoteOn(&ch, &key, &vel) && vel > 0:
			pending[voice{ch, key}] = open{start: at, vel: vel}
		case msg.GetNoteOff(&ch, &key, &vel) || msg.GetNoteOn(&ch, &key, &vel):
			if o, ok := pending[voice{ch, key}]; ok {
				delete(pending, voice{ch, key})
				notes = append(notes, Note{Start: o.start, End: at, Key: key, Velocity: o.vel})
			}
		}
	}
	// notes left hanging at end of track get a zero-length tail
	for v, o := range pending {
		notes = append(notes, Note{Start: o.start, End: o.start, Key: v.key, Velocity: o.vel})
	}
	return notes
}
