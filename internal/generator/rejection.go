package generator

import (
	"math/rand"

	"svw.info/minesweeper/internal/domain"
)

// Rejection draws uniform coordinates and re-rolls any cell that already
// holds a mine.
type Rejection struct{}

func (Rejection) Place(rng *rand.Rand, width, height, count int) ([]domain.Coordinate, error) {
	if err := checkCapacity(width, height, count); err != nil {
		return nil, err
	}
	taken := make([]bool, width*height)
	out := make([]domain.Coordinate, 0, count)
	for len(out) < count {
		x := rng.Intn(width)
		y := rng.Intn(height)
		i := y*width + x
		if taken[i] {
			continue
		}
		taken[i] = true
		out = append(out, domain.Coordinate{X: x, Y: y})
	}
	return out, nil
}
