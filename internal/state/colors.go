package state

import (
	"math/rand"

	"puyo-go/internal/grid"
)

// ColorSource supplies colors for spawned cells. Injecting it keeps the
// engine deterministic under test; production sessions use a seeded
// RandSource.
type ColorSource interface {
	// Next returns a color in 1..colorCount.
	Next(colorCount int) grid.Color
}

// RandSource draws colors uniformly at random.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a color source seeded for reproducible sessions.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandSource) Next(colorCount int) grid.Color {
	return grid.Color(r.rng.Intn(colorCount) + 1)
}
