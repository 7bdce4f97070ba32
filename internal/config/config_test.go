package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var bird BirdConfig
	if err := yaml.Unmarshal(GetDefaultYAML(BirdID), &bird); err != nil {
		t.Fatalf("bird.yaml: %v", err)
	}
	if !reflect.DeepEqual(bird, DefaultBirdConfig()) {
		t.Errorf("embedded bird.yaml differs from DefaultBirdConfig()\n got: %+v\nwant: %+v", bird, DefaultBirdConfig())
	}

	var inv InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML(InvadersID), &inv); err != nil {
		t.Fatalf("invaders.yaml: %v", err)
	}
	if !reflect.DeepEqual(inv, DefaultInvadersConfig()) {
		t.Errorf("embedded invaders.yaml differs from DefaultInvadersConfig()\n got: %+v\nwant: %+v", inv, DefaultInvadersConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultBirdConfig().Validate(); err != nil {
		t.Errorf("default bird config invalid: %v", err)
	}
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("default invaders config invalid: %v", err)
	}
}

func TestBirdValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BirdConfig)
	}{
		{"zero width", func(c *BirdConfig) { c.Bird.Width = 0 }},
		{"damping above one", func(c *BirdConfig) { c.Bird.BounceDamping = 1.5 }},
		{"empty obstacle range", func(c *BirdConfig) { c.Obstacles.MaxWidth = 10 }},
		{"spawn rate above one", func(c *BirdConfig) { c.Spawn.ObstacleRate = 1.2 }},
		{"ceiling below base", func(c *BirdConfig) { c.Spawn.MaxSpeed = 1 }},
		{"negative increment", func(c *BirdConfig) { c.Spawn.Increment = -1 }},
		{"zero frame", func(c *BirdConfig) { c.Timing.FrameMS = 0 }},
		{"zero viewport", func(c *BirdConfig) { c.Viewport.CellWidth = 0 }},
		{"negative ramp", func(c *BirdConfig) { c.Difficulty.RampScale = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBirdConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestInvadersValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"no rows", func(c *InvadersConfig) { c.Grid.Rows = 0 }},
		{"shrinking sweep", func(c *InvadersConfig) { c.Sweep.Growth = 0.9 }},
		{"cap below base", func(c *InvadersConfig) { c.Sweep.MaxSpeed = 0.1 }},
		{"no lives", func(c *InvadersConfig) { c.Gameplay.Lives = 0 }},
		{"no hold", func(c *InvadersConfig) { c.Player.HoldTicks = 0 }},
		{"negative cooldown", func(c *InvadersConfig) { c.Bullet.CooldownMS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) unexpected error: %v", ok, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplyPresets(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantScale   float64
	}{
		{"", true, 1.0},
		{DifficultyEasy, true, 0.5},
		{DifficultyNormal, true, 1.0},
		{DifficultyHard, true, 1.5},
		{DifficultyFixed, false, 1.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			bird := DefaultBirdConfig()
			ApplyBirdPreset(&bird, tt.preset)
			if bird.Difficulty.Enabled != tt.wantEnabled || bird.Difficulty.RampScale != tt.wantScale {
				t.Errorf("bird difficulty = %+v, expected enabled=%v scale=%v",
					bird.Difficulty, tt.wantEnabled, tt.wantScale)
			}

			inv := DefaultInvadersConfig()
			ApplyInvadersPreset(&inv, tt.preset)
			if inv.Difficulty != bird.Difficulty {
				t.Errorf("invaders difficulty = %+v, expected %+v", inv.Difficulty, bird.Difficulty)
			}
		})
	}
}

func TestDifficultyManagerCaps(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, RampScale: 1})

	if got := d.Increase(3, 0.5, 10); got != 3.5 {
		t.Errorf("Increase() = %v, expected 3.5", got)
	}
	if got := d.Increase(9.8, 0.5, 10); got != 10 {
		t.Errorf("Increase() should stop at ceiling, got %v", got)
	}
	if got := d.Grow(2, 1.5, 10); got != 3 {
		t.Errorf("Grow() = %v, expected 3", got)
	}
	if got := d.Grow(8, 1.5, 10); got != 10 {
		t.Errorf("Grow() should stop at ceiling, got %v", got)
	}

	// Repeated growth converges on the ceiling.
	v := 0.5
	for i := 0; i < 1000; i++ {
		v = d.Grow(v, 1.05, 4)
	}
	if v != 4 {
		t.Errorf("long ramp should settle at ceiling, got %v", v)
	}
}

func TestDifficultyManagerScaleAndDisable(t *testing.T) {
	easy := NewDifficultyManager(DifficultyConfig{Enabled: true, RampScale: 0.5})
	if got := easy.Increase(1, 1, 10); got != 1.5 {
		t.Errorf("easy Increase() = %v, expected 1.5", got)
	}
	if got := easy.Grow(1, 1.5, 10); got != 1.25 {
		t.Errorf("easy Grow() = %v, expected 1.25", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, RampScale: 1})
	if fixed.IsEnabled() {
		t.Error("disabled manager reports enabled")
	}
	if got := fixed.Increase(1, 1, 10); got != 1 {
		t.Errorf("fixed Increase() = %v, expected unchanged 1", got)
	}
	if got := fixed.Grow(2, 2, 10); got != 2 {
		t.Errorf("fixed Grow() = %v, expected unchanged 2", got)
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadBird("")
	if err != nil {
		t.Fatalf("LoadBird: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultBirdConfig()) {
		t.Error("embedded load should equal defaults")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mine.yaml")
	data := []byte("sweep:\n  base_speed: 1.5\n  max_speed: 6\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Sweep.BaseSpeed != 1.5 || cfg.Sweep.MaxSpeed != 6 {
		t.Errorf("override not applied: %+v", cfg.Sweep)
	}
	if cfg.Sweep.Growth != 1.05 || cfg.Grid.Rows != 5 {
		t.Error("unspecified keys should keep defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, _, err := LoadBird(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	unknown := filepath.Join(dir, "unknown.yaml")
	os.WriteFile(unknown, []byte("bird:\n  wingspan: 3\n"), 0o644)
	if _, _, err := LoadBird(unknown); err == nil {
		t.Error("unknown keys in explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("spawn:\n  obstacle_rate: 2\n"), 0o644)
	_, _, err := LoadBird(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid explicit config error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	local := filepath.Join(dir, "configs")
	os.MkdirAll(local, 0o755)
	os.WriteFile(filepath.Join(local, "bird.yaml"), []byte("bird:\n  x: 120\n"), 0o644)

	cfg, src, err := LoadBird("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bird.X != 120 || src != filepath.Join("configs", "bird.yaml") {
		t.Errorf("local config not used: x=%v src=%q", cfg.Bird.X, src)
	}

	user := filepath.Join(dir, ".arcade", "configs")
	os.MkdirAll(user, 0o755)
	os.WriteFile(filepath.Join(user, "bird.yaml"), []byte("bird:\n  x: 140\n"), 0o644)

	cfg, _, _ = LoadBird("")
	if cfg.Bird.X != 140 {
		t.Errorf("user config should win over local, x=%v", cfg.Bird.X)
	}

	// A broken user file falls through to the next candidate.
	os.WriteFile(filepath.Join(user, "bird.yaml"), []byte("bird: [oops"), 0o644)
	cfg, _, err = LoadBird("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bird.X != 120 {
		t.Errorf("broken user file should be skipped, x=%v", cfg.Bird.X)
	}
}
