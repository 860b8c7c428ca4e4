package model

import "testing"

func TestStampClipsAtEdges(t *testing.T) {
	g := mustGrid(t, 3, 3)
	stamped := Stamp(g, Blinker, 2, 1)
	assertLive(t, stamped, [2]int{2, 1}, [2]int{2, 2})
	if g.CountLivingCells() != 0 {
		t.Fatal("Stamp mutated its input")
	}
}

func TestGliderTravels(t *testing.T) {
	g := Stamp(mustGrid(t, 8, 8), Glider, 0, 0)
	start := g.Cells()
	for range 4 {
		g = Step(g)
	}
	if g.CountLivingCells() != 5 {
		t.Fatalf("glider has %d cells after 4 steps", g.CountLivingCells())
	}
	for i := range 7 {
		for j := range 7 {
			if start[i][j] != g.Alive(i+1, j+1) {
				t.Fatalf("glider did not move one cell down-right at (%d,%d)", i, j)
			}
		}
	}
}
