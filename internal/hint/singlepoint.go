package hint

import (
	"context"
	"fmt"

	"svw.info/minesweeper/internal/domain"
)

// SinglePoint deduces from one numbered cell at a time. Flags are trusted
// as placed by the player.
type SinglePoint struct{}

func NewSinglePoint() *SinglePoint { return &SinglePoint{} }

// Hint returns the first safe cell found in row-major order, or failing
// that the first certain mine. Finished games get no hint.
func (h *SinglePoint) Hint(ctx context.Context, v domain.BoardView) (domain.Hint, bool, error) {
	if !v.Status.IsPlaying() {
		return domain.Hint{}, false, nil
	}
	var mine *domain.Hint
	for y := 0; y < v.Height; y++ {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		for x := 0; x < v.Width; x++ {
			c := v.Cells[y][x]
			if c.Visibility != domain.Revealed || c.Mine || c.Adjacent == 0 {
				continue
			}
			hidden, flagged := around(v, x, y)
			if len(hidden) == 0 {
				continue
			}
			from := domain.Coordinate{X: x, Y: y}
			if flagged == c.Adjacent {
				return domain.Hint{
					Kind:    domain.HintSafe,
					Cell:    hidden[0],
					Because: from,
					Message: fmt.Sprintf("Safe: %s already touches its %d flagged mine(s)", from, c.Adjacent),
				}, true, nil
			}
			if mine == nil && flagged+len(hidden) == c.Adjacent {
				mine = &domain.Hint{
					Kind:    domain.HintMine,
					Cell:    hidden[0],
					Because: from,
					Message: fmt.Sprintf("Mine: %s needs every remaining neighbour to be a mine", from),
				}
			}
		}
	}
	if mine != nil {
		return *mine, true, nil
	}
	return domain.Hint{}, false, nil
}

func around(v domain.BoardView, x, y int) (hidden []domain.Coordinate, flagged int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := domain.Coordinate{X: x + dx, Y: y + dy}
			cv, ok := v.At(n)
			if !ok {
				continue
			}
			switch cv.Visibility {
			case domain.Hidden:
				hidden = append(hidden, n)
			case domain.Flagged:
				flagged++
			}
		}
	}
	return hidden, flagged
}
