package board

import (
	"fmt"

	"github.com/gammazero/deque"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
)

// Board holds the grid and the game status.
type Board struct {
	width, height int
	mines         int
	cells         []domain.Cell // row-major, index y*width+x
	status        domain.Status
	hidden        int
	flags         int
	exploded      int // index of the revealed mine, -1 while none
}

// New builds a board of width x height with mines placed at random.
// It fails with domain.ErrInvalidConfiguration when the mines cannot fit.
func New(width, height, mines int, opts ...Option) (*Board, error) {
	if err := (domain.Preset{Width: width, Height: height, Mines: mines}).Validate(); err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.placer == nil {
		o.placer = generator.NewAuto()
	}
	if o.rng == nil {
		o.rng, _ = generator.NewRand(0)
	}
	layout, err := o.placer.Place(o.rng, width, height, mines)
	if err != nil {
		return nil, fmt.Errorf("place mines: %w", err)
	}
	return build(width, height, mines, layout)
}

// FromMines builds a board with mines at exactly the given coordinates.
func FromMines(width, height int, mines []domain.Coordinate) (*Board, error) {
	return New(width, height, len(mines), WithPlacer(generator.Fixed(mines)))
}

func build(width, height, mines int, layout []domain.Coordinate) (*Board, error) {
	b := &Board{
		width:    width,
		height:   height,
		mines:    mines,
		cells:    make([]domain.Cell, width*height),
		status:   domain.Playing,
		hidden:   width * height,
		exploded: -1,
	}
	if len(layout) != mines {
		return nil, fmt.Errorf("%w: placer returned %d mines, want %d", domain.ErrInvalidConfiguration, len(layout), mines)
	}
	for _, c := range layout {
		if !b.InBounds(c) {
			return nil, fmt.Errorf("%w: mine at %s", domain.ErrOutOfBounds, c)
		}
		cell := &b.cells[b.index(c)]
		if cell.Content.Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %s", domain.ErrInvalidConfiguration, c)
		}
		cell.Content = domain.MineContent()
	}
	for i := range b.cells {
		if b.cells[i].Content.Mine {
			continue
		}
		n := 0
		for _, nb := range b.Neighbors(b.coord(i)) {
			if b.cells[b.index(nb)].Content.Mine {
				n++
			}
		}
		b.cells[i].Content = domain.EmptyContent(n)
	}
	return b, nil
}

func (b *Board) Width() int            { return b.width }
func (b *Board) Height() int           { return b.height }
func (b *Board) MineCount() int        { return b.mines }
func (b *Board) Flags() int            { return b.flags }
func (b *Board) Status() domain.Status { return b.status }

// InBounds reports whether c addresses a cell of this board.
func (b *Board) InBounds(c domain.Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.width && c.Y < b.height
}

// At returns the raw cell at c, including hidden content.
func (b *Board) At(c domain.Coordinate) (domain.Cell, bool) {
	if !b.InBounds(c) {
		return domain.Cell{}, false
	}
	return b.cells[b.index(c)], true
}

// Exploded returns the mine that lost the game.
func (b *Board) Exploded() (domain.Coordinate, bool) {
	if b.exploded < 0 {
		return domain.Coordinate{}, false
	}
	return b.coord(b.exploded), true
}

// Neighbors returns the up to eight cells around c, column by column from
// the left. Out-of-bounds input yields nil.
func (b *Board) Neighbors(c domain.Coordinate) []domain.Coordinate {
	if !b.InBounds(c) {
		return nil
	}
	out := make([]domain.Coordinate, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := domain.Coordinate{X: c.X + dx, Y: c.Y + dy}
			if b.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Reveal opens the hidden cell at c. Zero cells open their neighbours
// transitively. It reports whether anything changed; calls on a finished
// game, on out-of-bounds coordinates or on non-hidden cells are no-ops.
func (b *Board) Reveal(c domain.Coordinate) bool {
	if !b.status.IsPlaying() || !b.InBounds(c) {
		return false
	}
	start := b.index(c)
	if b.cells[start].Visibility != domain.Hidden {
		return false
	}

	var work deque.Deque[domain.Coordinate]
	work.PushBack(c)
	for work.Len() > 0 {
		cur := work.PopFront()
		cell := &b.cells[b.index(cur)]
		if cell.Visibility != domain.Hidden {
			continue
		}
		cell.Visibility = domain.Revealed
		b.hidden--
		if !cell.Content.IsEmptyZero() {
			continue
		}
		for _, n := range b.Neighbors(cur) {
			if b.cells[b.index(n)].Visibility == domain.Hidden {
				work.PushBack(n)
			}
		}
	}

	if b.cells[start].Content.Mine {
		b.status = domain.Lost
		b.exploded = start
	} else if b.isFullyRevealedAndMarked() {
		b.status = domain.Won
	}
	return true
}

// ToggleFlag cycles the cell at c between hidden and flagged. Revealed
// cells are left alone.
func (b *Board) ToggleFlag(c domain.Coordinate) bool {
	if !b.status.IsPlaying() || !b.InBounds(c) {
		return false
	}
	cell := &b.cells[b.index(c)]
	switch cell.Visibility {
	case domain.Hidden:
		cell.Visibility = domain.Flagged
		b.hidden--
		b.flags++
	case domain.Flagged:
		cell.Visibility = domain.Hidden
		b.hidden++
		b.flags--
	default:
		return false
	}
	if cell.Content.Mine && b.isFullyRevealedAndMarked() {
		b.status = domain.Won
	}
	return true
}

// isFullyRevealedAndMarked is the win condition: no cell is still hidden.
// Flags are not checked for correctness.
func (b *Board) isFullyRevealedAndMarked() bool { return b.hidden == 0 }

func (b *Board) index(c domain.Coordinate) int { return c.Y*b.width + c.X }

func (b *Board) coord(i int) domain.Coordinate {
	return domain.Coordinate{X: i % b.width, Y: i / b.width}
}
