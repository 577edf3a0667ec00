package core

// Source is the randomness capability consumed by Generate.
// *math/rand.Rand satisfies it, as does SimpleRNG.
type Source interface {
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Generate creates a height x width grid where every cell is drawn
// independently and uniformly from PaintColors. Generated grids never
// contain empty cells.
func Generate(height, width int, src Source) (*Grid, error) {
	g, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}

	palette := PaintColors()
	for i := range g.Cells {
		g.Cells[i] = palette[src.Intn(len(palette))]
	}
	return g, nil
}
