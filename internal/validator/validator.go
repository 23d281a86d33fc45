package validator

import (
	"context"
	"fmt"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate recounts every empty cell's neighbouring mines. Conflicts lists
// cells whose stored count is wrong; a total mine count that differs from
// the grid's declared count is reported as an error.
func (v *FastValidator) Validate(ctx context.Context, g ports.Grid) (bool, []domain.Coordinate, error) {
	w, h := g.Width(), g.Height()
	conf := make([]domain.Coordinate, 0, 8)
	mines := 0
	for y := 0; y < h; y++ {
		if err := ctx.Err(); err != nil {
			return false, nil, err
		}
		for x := 0; x < w; x++ {
			c := domain.Coordinate{X: x, Y: y}
			cell, _ := g.At(c)
			if cell.Content.Mine {
				mines++
				continue
			}
			if int(cell.Content.Adjacent) != countAround(g, x, y) {
				conf = append(conf, c)
			}
		}
	}
	if mines != g.MineCount() {
		return false, conf, fmt.Errorf("%w: grid holds %d mines, declared %d", domain.ErrInvalidConfiguration, mines, g.MineCount())
	}
	return len(conf) == 0, conf, nil
}

func countAround(g ports.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if cell, ok := g.At(domain.Coordinate{X: x + dx, Y: y + dy}); ok && cell.Content.Mine {
				n++
			}
		}
	}
	return n
}
