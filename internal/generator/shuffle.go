package generator

import (
	"fmt"
	"math/rand"

	"svw.info/minesweeper/internal/domain"
)

// Shuffle selects count cells with a partial Fisher-Yates pass over all
// cell indices. It never retries.
type Shuffle struct{}

func (Shuffle) Place(rng *rand.Rand, width, height, count int) ([]domain.Coordinate, error) {
	if err := checkCapacity(width, height, count); err != nil {
		return nil, err
	}
	positions := make([]int, width*height)
	for i := range positions {
		positions[i] = i
	}
	out := make([]domain.Coordinate, 0, count)
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(positions)-i)
		positions[i], positions[j] = positions[j], positions[i]
		out = append(out, domain.Coordinate{X: positions[i] % width, Y: positions[i] / width})
	}
	return out, nil
}

// Fixed replays a known layout; the rng is ignored.
type Fixed []domain.Coordinate

func (f Fixed) Place(_ *rand.Rand, width, height, count int) ([]domain.Coordinate, error) {
	if err := checkCapacity(width, height, count); err != nil {
		return nil, err
	}
	if len(f) != count {
		return nil, fmt.Errorf("%w: layout has %d mines, want %d", domain.ErrInvalidConfiguration, len(f), count)
	}
	seen := make(map[domain.Coordinate]bool, len(f))
	for _, c := range f {
		if c.X < 0 || c.Y < 0 || c.X >= width || c.Y >= height {
			return nil, fmt.Errorf("%w: mine at %s", domain.ErrOutOfBounds, c)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate mine at %s", domain.ErrInvalidConfiguration, c)
		}
		seen[c] = true
	}
	return append([]domain.Coordinate(nil), f...), nil
}
