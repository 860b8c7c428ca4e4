package model

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"
)

// DefaultRandomProbability is the share of live cells a Random seed produces
// unless told otherwise
const DefaultRandomProbability = 0.2

// Seed decides the initial population of a freshly allocated grid
type Seed interface {
	populate(g *Grid) error
}

// AllDead leaves every cell dead
type AllDead struct{}

func (AllDead) populate(*Grid) error { return nil }

// Random brings each cell to life independently with the given probability.
// A nil Rand draws from the global source.
type Random struct {
	Probability float64
	Rand        *rand.Rand
}

func (s Random) populate(g *Grid) error {
	if err := validProbability(s.Probability); err != nil {
		return err
	}
	for i := range g.cells {
		g.cells[i] = uniform(s.Rand) < s.Probability
	}
	return nil
}

// Perlin thresholds a 2D Perlin noise field, which produces clustered
// populations instead of uniform speckle. Zero fields take defaults.
type Perlin struct {
	Alpha     float64
	Beta      float64
	Octaves   int32
	Seed      int64
	Scale     float64
	Threshold float64
}

func (s Perlin) populate(g *Grid) error {
	if s.Threshold < -1 || s.Threshold > 1 {
		return errors.Wrapf(ErrInvalidSeed, "[Perlin] threshold %v outside [-1, 1]", s.Threshold)
	}
	var (
		alpha   = orDefault(s.Alpha, 2)
		beta    = orDefault(s.Beta, 2)
		scale   = orDefault(s.Scale, 0.1)
		octaves = s.Octaves
	)
	if octaves <= 0 {
		octaves = 3
	}
	noise := perlin.NewPerlin(alpha, beta, octaves, s.Seed)
	for i := range g.rows {
		for j := range g.cols {
			g.cells[i*g.cols+j] = noise.Noise2D(float64(j)*scale, float64(i)*scale) > s.Threshold
		}
	}
	return nil
}

// Patterns stamps a few gliders and blinkers and sprinkles random life over
// the rest of the board
type Patterns struct {
	Probability float64
	Rand        *rand.Rand
}

func (s Patterns) populate(g *Grid) error {
	if err := validProbability(s.Probability); err != nil {
		return err
	}
	if g.rows >= 10 && g.cols >= 10 {
		stampInto(g, Glider, 5, 5)
		if g.cols >= 20 && g.rows >= 15 {
			stampInto(g, Glider, 5, g.cols-8)
		}
		stampInto(g, Blinker, g.rows/4, g.cols/4)
		if g.cols >= 30 {
			stampInto(g, Blinker, 3*g.rows/4, 3*g.cols/4)
		}
	}
	for i := range g.cells {
		if uniform(s.Rand) < s.Probability {
			g.cells[i] = true
		}
	}
	return nil
}

func validProbability(p float64) error {
	if p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalidSeed, "[Random] probability %v outside [0, 1]", p)
	}
	return nil
}

func uniform(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64()
	}
	return r.Float64()
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// NewRand returns a deterministic PCG-backed source for seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
