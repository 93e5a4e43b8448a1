package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultConfig()
	if cfg.Playfield != def.Playfield {
		t.Errorf("playfield = %+v, expected %+v", cfg.Playfield, def.Playfield)
	}
	if cfg.Gameplay != def.Gameplay {
		t.Errorf("gameplay = %+v, expected %+v", cfg.Gameplay, def.Gameplay)
	}
	if len(cfg.Bricks.Rows) != 3 {
		t.Fatalf("expected 3 brick rows, got %d", len(cfg.Bricks.Rows))
	}
	for i, hp := range []int{3, 2, 1} {
		if cfg.Bricks.Rows[i].HitPoints != hp {
			t.Errorf("row %d hit points = %d, expected %d", i, cfg.Bricks.Rows[i].HitPoints, hp)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  lives: 5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.TickMS != 50 {
		t.Errorf("unset keys should keep defaults, tick_ms = %d", cfg.Gameplay.TickMS)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero playfield", func(c *Config) { c.Playfield.Width = 0 }},
		{"no ball colors", func(c *Config) { c.Ball.Colors = nil }},
		{"unknown paddle color", func(c *Config) { c.Paddle.Color = "mauve" }},
		{"hit points too high", func(c *Config) { c.Bricks.Rows[0].HitPoints = 4 }},
		{"hit points zero", func(c *Config) { c.Bricks.Rows[2].HitPoints = 0 }},
		{"no rows", func(c *Config) { c.Bricks.Rows = nil }},
		{"zero tick", func(c *Config) { c.Gameplay.TickMS = 0 }},
		{"paddle wider than field", func(c *Config) { c.Paddle.Width = 700 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  step: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Paddle.Step != 20 {
		t.Errorf("paddle step = %v, expected 20", cfg.Paddle.Step)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("bricks:\n  rows:\n    - { y: 10, hit_points: 7 }\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid config = %v, expected ErrInvalid", err)
	}
}
