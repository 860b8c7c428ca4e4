package utils

import (
	"encoding/json"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/model"
	"github.com/sheikhrachel/go-gol-grid/sim"
)

// Seed modes accepted in Config.SeedMode
const (
	SeedDead     = "dead"
	SeedRandom   = "random"
	SeedPerlin   = "perlin"
	SeedPatterns = "patterns"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	DisplayWidth        float64       `json:"display_width"`
	DisplayHeight       float64       `json:"display_height"`
	CellSize            float64       `json:"cell_size"`
	TickInterval        time.Duration `json:"tick_interval"`
	SeedMode            string        `json:"seed_mode"`
	RandomProbability   float64       `json:"random_probability"`
	Seed                int64         `json:"seed"`
	AutoStart           bool          `json:"auto_start"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		DisplayWidth:        1000,
		DisplayHeight:       500,
		CellSize:            model.DefaultCellSize,
		TickInterval:        sim.DefaultInterval,
		SeedMode:            SeedRandom,
		RandomProbability:   model.DefaultRandomProbability,
		AutoStart:           true,
		AutoRestart:         false,
		StagnationThreshold: 5,
		MaxGenerations:      0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (0 derives them from the display height)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (0 derives them from the display width)")
	fs.Float64Var(&c.DisplayWidth, "width", c.DisplayWidth, "display width used to size the grid")
	fs.Float64Var(&c.DisplayHeight, "height", c.DisplayHeight, "display height used to size the grid")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell edge length in display units")
	fs.DurationVar(&c.TickInterval, "interval", c.TickInterval, "wait between generations")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial population: dead, random, perlin or patterns")
	fs.Float64Var(&c.RandomProbability, "p", c.RandomProbability, "probability a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source (0 picks one from the clock)")
	fs.BoolVar(&c.AutoStart, "start", c.AutoStart, "start running immediately")
	fs.BoolVar(&c.AutoRestart, "restart", c.AutoRestart, "reseed on extinction or stagnation")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stagnant generations before a restart")
	fs.IntVar(&c.MaxGenerations, "max-gen", c.MaxGenerations, "stop after this many generations (0 runs forever)")
}

// Validate reports the first setting that cannot be used
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] rows: %d, cols: %d", c.Rows, c.Cols)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick_interval: %v", c.TickInterval)
	case c.RandomProbability < 0 || c.RandomProbability > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_probability: %v", c.RandomProbability)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold: %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations: %d", c.MaxGenerations)
	}
	switch c.SeedMode {
	case SeedDead, SeedRandom, SeedPerlin, SeedPatterns:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] seed_mode: %q", c.SeedMode)
	}
	return nil
}

// GridSize returns the explicit rows/cols when both are set, otherwise the
// dimensions that cover the display area
func (c Config) GridSize() (rows, cols int, err error) {
	if c.Rows > 0 && c.Cols > 0 {
		return c.Rows, c.Cols, nil
	}
	rows, cols, err = model.Dimensions(c.DisplayWidth, c.DisplayHeight, c.CellSize)
	if err != nil {
		return 0, 0, errors.Wrap(err, "[GridSize] failed to size grid from display area")
	}
	return rows, cols, nil
}

// Rand returns the random source the game should use
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return model.NewRand(seed)
}

// SeedFor builds the grid seed selected by SeedMode
func (c Config) SeedFor(rng *rand.Rand) model.Seed {
	switch c.SeedMode {
	case SeedDead:
		return model.AllDead{}
	case SeedPerlin:
		return model.Perlin{Seed: rng.Int64()}
	case SeedPatterns:
		return model.Patterns{Probability: c.RandomProbability, Rand: rng}
	}
	return model.Random{Probability: c.RandomProbability, Rand: rng}
}
