package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Errorf("dead cell with %d neighbors: got %v, want %v", n, got, wantBorn)
		}
		wantSurvive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantSurvive {
			t.Errorf("live cell with %d neighbors: got %v, want %v", n, got, wantSurvive)
		}
	}
}

func TestNeighborOffsetsAreDistinct(t *testing.T) {
	seen := map[Offset]bool{}
	for _, o := range NeighborOffsets {
		if o.DI == 0 && o.DJ == 0 {
			t.Fatalf("offset %v points at the cell itself", o)
		}
		if o.DI < -1 || o.DI > 1 || o.DJ < -1 || o.DJ > 1 {
			t.Fatalf("offset %v is not adjacent", o)
		}
		if seen[o] {
			t.Fatalf("duplicate offset %v", o)
		}
		seen[o] = true
	}
}
