package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"arranger/core/timing"
	"arranger/core/track"
	"arranger/internal/config"
	app_log "arranger/internal/log"
)

const ebitenTPS = 60

// Game wires the transport, scroller and arrangement view together and
// implements ebiten.Game.
type Game struct {
	cfg       *config.Config
	logger    *app_log.Logger
	scroll    *Scroller
	transport *Transport
	arrange   *ArrangeView

	playSec    float64
	nextID     track.ID
	winW, winH int
}

func New(cfg *config.Config, logger *app_log.Logger) *Game {
	g := &Game{
		cfg:       cfg,
		logger:    logger,
		scroll:    NewScroller(cfg.PixelsPerMeasure),
		transport: NewTransport(cfg.LastBPM, timing.Sig{Beats: cfg.BeatsPerMeasure, Unit: cfg.BeatUnit}),
	}
	g.arrange = NewArrangeView(image.Rect(0, transportHeight, cfg.WindowWidth, cfg.WindowHeight), logger)
	g.seedDemo()
	return g
}

// Context assembles the current tempo/zoom parameters. Rebuilt every frame
// so a BPM edit or wheel zoom reaches the core on the next pointer event.
func (g *Game) Context() timing.Context {
	return timing.Context{
		BPM:              float64(g.transport.BPM),
		Sig:              g.transport.Sig,
		PixelsPerMeasure: g.scroll.PPM,
	}
}

// seedDemo populates a small starting arrangement.
func (g *Game) seedDemo() {
	c := g.Context()
	vox := track.NewAudio(g.takeID(), "Vox", 4, c)
	bass := track.NewAudio(g.takeID(), "Bass", 2, c)
	bass.Lane = 1
	keys := track.NewNotes(g.takeID(), "Keys", []track.Note{
		{Start: 0, End: 480, Key: 60, Velocity: 100},
		{Start: 480, End: 960, Key: 64, Velocity: 100},
		{Start: 960, End: 1440, Key: 67, Velocity: 100},
		{Start: 1440, End: 1920, Key: 72, Velocity: 100},
	})
	keys.Lane = 2
	g.arrange.Tracks = append(g.arrange.Tracks, vox, bass, keys)
}

func (g *Game) takeID() track.ID {
	g.nextID++
	return g.nextID
}

// AddMIDITrack loads a standard MIDI file into a new notes track on the
// first free lane.
func (g *Game) AddMIDITrack(path, name string) error {
	notes, err := track.LoadClip(path)
	if err != nil {
		return fmt.Errorf("load clip: %w", err)
	}
	t := track.NewNotes(g.takeID(), name, notes)
	t.Lane = len(g.arrange.Tracks) % g.arrange.Lanes()
	g.arrange.Tracks = append(g.arrange.Tracks, t)
	g.logger.Infof("[GAME] loaded %s: %d notes, %.0f ticks", path, len(notes), t.DurationTicks)
	return nil
}

func (g *Game) Update() error {
	consumed := g.transport.Update()
	c := g.Context()

	capturing := false
	if !consumed {
		capturing = g.arrange.Update(c, g.scroll.OffsetX)
	}
	g.scroll.HandleWheel(!capturing && !consumed)

	if g.transport.Playing {
		g.playSec += 1.0 / ebitenTPS
	} else {
		g.playSec = 0
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := g.Context()
	g.arrange.Draw(screen, c, g.scroll.OffsetX, g.playSec)
	g.transport.Draw(screen, g.positionInfo(c))
}

// positionInfo formats the readout shown in the transport bar.
func (g *Game) positionInfo(c timing.Context) string {
	d := time.Duration(g.playSec * float64(time.Second))
	min := int(d / time.Minute)
	sec := int((d % time.Minute) / time.Second)
	milli := int((d % time.Second) / time.Millisecond)

	ticks := timing.SecondsToTicks(g.playSec, c)
	measure := int(ticks/c.TicksPerMeasure()) + 1
	beat := int(ticks/c.TicksPerBeat())%c.Sig.Beats + 1
	return fmt.Sprintf("%02d:%02d.%03d | %d.%d | zoom %.0fpx/measure", min, sec, milli, measure, beat, g.scroll.PPM)
}

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.arrange.Bounds = image.Rect(0, transportHeight, w, h)
		g.logger.Debugf("[GAME] layout %dx%d", w, h)
	}
	return w, h
}

// SyncConfig copies the session state worth persisting back into the config.
func (g *Game) SyncConfig() {
	g.cfg.LastBPM = g.transport.BPM
	g.cfg.BeatsPerMeasure = g.transport.Sig.Beats
	g.cfg.BeatUnit = g.transport.Sig.Unit
	g.cfg.PixelsPerMeasure = g.scroll.PPM
	g.cfg.WindowWidth, g.cfg.WindowHeight = g.winW, g.winH
}
