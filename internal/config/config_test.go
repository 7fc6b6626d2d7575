package config

import "testing"

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LastBPM != 120 || cfg.PixelsPerMeasure != 200 {
		t.Fatalf("missing file did not default: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := Default()
	cfg.LastBPM = 93
	cfg.BeatsPerMeasure = 6
	cfg.BeatUnit = 8
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LastBPM != 93 || got.BeatsPerMeasure != 6 || got.BeatUnit != 8 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestBackfillPartialFile(t *testing.T) {
	cfg := &Config{LastBPM: 140}
	cfg.backfill()
	if cfg.WindowWidth != 1024 || cfg.BeatUnit != 4 {
		t.Fatalf("backfill incomplete: %+v", cfg)
	}
	if cfg.LastBPM != 140 {
		t.Fatalf("backfill clobbered set field: %+v", cfg)
	}
}
