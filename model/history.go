package model

// historySize is how many recent generations are kept for cycle detection
const historySize = 5

// History remembers the hashes of recent generations
type History struct {
	hashes []string
}

// Record adds g to the history, keeping only the most recent states
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last 3 recorded
// generations, i.e. the board is static or cycling with period 3 or less
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}
	current := g.Hash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
