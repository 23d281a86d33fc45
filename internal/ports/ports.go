package ports

import (
	"context"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/session"
)

// Grid is raw, unmasked read access to a board.
type Grid interface {
	Width() int
	Height() int
	MineCount() int
	At(c domain.Coordinate) (domain.Cell, bool)
}

// Validator re-derives the construction invariants of a grid.
type Validator interface {
	Validate(ctx context.Context, g Grid) (ok bool, conflicts []domain.Coordinate, err error)
}

// Hinter returns the next logical step visible to the player.
type Hinter interface {
	Hint(ctx context.Context, v domain.BoardView) (domain.Hint, bool, error)
}

// Sessions keeps live games.
type Sessions interface {
	Put(ctx context.Context, g *session.Game) error
	Get(ctx context.Context, id string) (*session.Game, error)
	Delete(ctx context.Context, id string) error
}
