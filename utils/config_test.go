package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	rows, cols, err := cfg.GridSize()
	if err != nil {
		t.Fatal(err)
	}
	if rows != 20 || cols != 40 {
		t.Fatalf("default grid %dx%d, want 20x40", rows, cols)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{"rows": 12, "cols": 9, "seed_mode": "perlin", "tick_interval": 200000000}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 12 || cfg.Cols != 9 || cfg.SeedMode != SeedPerlin {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.TickInterval != 200*time.Millisecond {
		t.Fatalf("tick interval %v", cfg.TickInterval)
	}
	if cfg.CellSize != model.DefaultCellSize || cfg.RandomProbability != model.DefaultRandomProbability {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
	cfg, err := LoadConfig(writeConfig(t, `{"rows": `))
	if err == nil {
		t.Fatal("malformed file accepted")
	}
	if cfg.CellSize != model.DefaultCellSize {
		t.Fatal("defaults not returned alongside the error")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"rows": 12, "cols": 9, "random_probability": 0.5}`))
	if err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-rows", "30", "-interval", "150ms", "-seed-mode", "dead"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 30 || cfg.Cols != 9 {
		t.Fatalf("got %dx%d, want 30x9", cfg.Rows, cfg.Cols)
	}
	if cfg.TickInterval != 150*time.Millisecond || cfg.SeedMode != SeedDead {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.RandomProbability != 0.5 {
		t.Fatal("unset flag overwrote the file value")
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"negative rows":     func(c *Config) { c.Rows = -1 },
		"zero interval":     func(c *Config) { c.TickInterval = 0 },
		"probability":       func(c *Config) { c.RandomProbability = 1.1 },
		"stagnation":        func(c *Config) { c.StagnationThreshold = 0 },
		"max generations":   func(c *Config) { c.MaxGenerations = -5 },
		"unknown seed mode": func(c *Config) { c.SeedMode = "glider-gun" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGridSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 7, 11
	if rows, cols, _ := cfg.GridSize(); rows != 7 || cols != 11 {
		t.Fatalf("explicit size ignored: %dx%d", rows, cols)
	}

	cfg.Rows, cfg.Cols = 7, 0
	cfg.DisplayWidth, cfg.DisplayHeight = 101, 49
	if rows, cols, _ := cfg.GridSize(); rows != 2 || cols != 5 {
		t.Fatalf("display sizing: %dx%d, want 2x5", rows, cols)
	}

	cfg.CellSize = 0
	if _, _, err := cfg.GridSize(); !errors.Is(err, model.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestSeedFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 11
	for mode, check := range map[string]func(model.Seed) bool{
		SeedDead:     func(s model.Seed) bool { _, ok := s.(model.AllDead); return ok },
		SeedRandom:   func(s model.Seed) bool { _, ok := s.(model.Random); return ok },
		SeedPerlin:   func(s model.Seed) bool { _, ok := s.(model.Perlin); return ok },
		SeedPatterns: func(s model.Seed) bool { _, ok := s.(model.Patterns); return ok },
	} {
		cfg.SeedMode = mode
		if seed := cfg.SeedFor(cfg.Rand()); !check(seed) {
			t.Fatalf("mode %q produced %T", mode, seed)
		}
	}

	cfg.SeedMode = SeedRandom
	a, _ := model.CreateGrid(10, 10, cfg.SeedFor(cfg.Rand()))
	b, _ := model.CreateGrid(10, 10, cfg.SeedFor(cfg.Rand()))
	if !a.Equal(b) {
		t.Fatal("fixed seed produced different grids")
	}
}
