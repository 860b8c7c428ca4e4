package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRandomSeedIsDeterministic(t *testing.T) {
	a, err := CreateGrid(20, 30, Random{Probability: DefaultRandomProbability, Rand: NewRand(42)})
	if err != nil {
		t.Fatal(err)
	}
	b, err := CreateGrid(20, 30, Random{Probability: DefaultRandomProbability, Rand: NewRand(42)})
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("same source produced different grids")
	}
}

func TestRandomSeedDensity(t *testing.T) {
	g, err := CreateGrid(100, 100, Random{Probability: 0.2, Rand: NewRand(3)})
	if err != nil {
		t.Fatal(err)
	}
	density := float64(g.CountLivingCells()) / 10000
	if density < 0.15 || density > 0.25 {
		t.Fatalf("density %.3f far from 0.2", density)
	}
}

func TestRandomSeedExtremes(t *testing.T) {
	none, err := CreateGrid(5, 5, Random{Probability: 0})
	if err != nil {
		t.Fatal(err)
	}
	if none.CountLivingCells() != 0 {
		t.Fatal("probability 0 produced living cells")
	}
	all, err := CreateGrid(5, 5, Random{Probability: 1})
	if err != nil {
		t.Fatal(err)
	}
	if all.CountLivingCells() != 25 {
		t.Fatalf("probability 1 produced %d living cells", all.CountLivingCells())
	}
}

func TestInvalidSeeds(t *testing.T) {
	for name, seed := range map[string]Seed{
		"random negative":   Random{Probability: -0.1},
		"random above one":  Random{Probability: 1.5},
		"patterns negative": Patterns{Probability: -1},
		"perlin threshold":  Perlin{Threshold: 2},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := CreateGrid(4, 4, seed); !errors.Is(err, ErrInvalidSeed) {
				t.Fatalf("err = %v, want ErrInvalidSeed", err)
			}
		})
	}
}

func TestPerlinSeed(t *testing.T) {
	a, err := CreateGrid(40, 40, Perlin{Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	b, err := CreateGrid(40, 40, Perlin{Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("same perlin seed produced different grids")
	}
	n := a.CountLivingCells()
	if n == 0 || n == 1600 {
		t.Fatalf("perlin seed produced a uniform board (%d living)", n)
	}

	sparse, err := CreateGrid(40, 40, Perlin{Seed: 9, Threshold: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for i := range 40 {
		for j := range 40 {
			if sparse.Alive(i, j) && !a.Alive(i, j) {
				t.Fatalf("cell (%d,%d) alive only under the higher threshold", i, j)
			}
		}
	}
}

func TestPatternsSeed(t *testing.T) {
	g, err := CreateGrid(20, 30, Patterns{Probability: 0})
	if err != nil {
		t.Fatal(err)
	}
	// two gliders and two blinkers
	if n := g.CountLivingCells(); n != 5+5+3+3 {
		t.Fatalf("got %d living cells", n)
	}
	small, err := CreateGrid(5, 5, Patterns{Probability: 0})
	if err != nil {
		t.Fatal(err)
	}
	if small.CountLivingCells() != 0 {
		t.Fatal("patterns stamped on a board too small for them")
	}
}
