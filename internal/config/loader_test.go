package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()
	if cfg.Render.CellSpacing != def.Render.CellSpacing {
		t.Errorf("cell_spacing = %v, want %v", cfg.Render.CellSpacing, def.Render.CellSpacing)
	}
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("tick_rate = %v, want %v", cfg.Timing.TickRate, def.Timing.TickRate)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("render:\n  cell_spacing: 3.5\ntiming:\n  tick_rate: 60\ninput:\n  lock: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.CellSpacing != 3.5 {
		t.Errorf("cell_spacing = %v, want 3.5", cfg.Render.CellSpacing)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("tick_rate = %v, want 60", cfg.Timing.TickRate)
	}
	if !cfg.Input.Lock {
		t.Error("input.lock should be true")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("render:\n  cell_spacing: -1\ntiming:\n  tick_rate: 0\n  win_delay_ticks: -5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()
	if cfg.Render.CellSpacing != def.Render.CellSpacing {
		t.Errorf("cell_spacing = %v, want default", cfg.Render.CellSpacing)
	}
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("tick_rate = %v, want default", cfg.Timing.TickRate)
	}
	if cfg.Timing.WinDelayTicks != def.Timing.WinDelayTicks {
		t.Errorf("win_delay_ticks = %v, want default", cfg.Timing.WinDelayTicks)
	}
}
