package generator

import (
	"math/rand"
	"time"

	"svw.info/minesweeper/internal/domain"
)

// Placer chooses where mines go. It must return exactly count distinct,
// in-bounds coordinates or an error.
type Placer interface {
	Place(rng *rand.Rand, width, height, count int) ([]domain.Coordinate, error)
}

// NewRand returns a deterministic source for seed, or a time based one when seed is 0.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Auto picks Rejection for sparse boards and Shuffle once mines fill more
// than half of the cells, where re-rolls would dominate.
type Auto struct{}

func NewAuto() *Auto { return &Auto{} }

func (a *Auto) Place(rng *rand.Rand, width, height, count int) ([]domain.Coordinate, error) {
	if count*2 <= width*height {
		return Rejection{}.Place(rng, width, height, count)
	}
	return Shuffle{}.Place(rng, width, height, count)
}

func checkCapacity(width, height, count int) error {
	return domain.Preset{Width: width, Height: height, Mines: count}.Validate()
}
