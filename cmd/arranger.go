package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"arranger/internal/config"
	app_log "arranger/internal/log"
	"arranger/internal/ui"
)

func main() {
	midiPath := flag.String("midi", "", "standard MIDI file to open as a notes track")
	logLevel := flag.String("log", "", "log level override (DEBUG, INFO, WARN, ERROR, NONE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}
	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger := app_log.New(os.Stderr, app_log.LevelFromString(level))

	g := ui.New(cfg, logger)
	if *midiPath != "" {
		name := strings.TrimSuffix(filepath.Base(*midiPath), filepath.Ext(*midiPath))
		if err := g.AddMIDITrack(*midiPath, name); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Arranger")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	g.SyncConfig()
	if err := cfg.Save(); err != nil {
		logger.Warnf("[MAIN] saving config: %v", err)
	}
}
