package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/minesweeper/internal/board"
	"svw.info/minesweeper/internal/domain"
)

// grid is a hand-built ports.Grid for feeding broken boards.
type grid struct {
	w, h, mines int
	cells       map[domain.Coordinate]domain.Cell
}

func (g grid) Width() int     { return g.w }
func (g grid) Height() int    { return g.h }
func (g grid) MineCount() int { return g.mines }
func (g grid) At(c domain.Coordinate) (domain.Cell, bool) {
	if c.X < 0 || c.Y < 0 || c.X >= g.w || c.Y >= g.h {
		return domain.Cell{}, false
	}
	return g.cells[c], true
}

func TestValidateGeneratedBoards(t *testing.T) {
	ctx := context.Background()
	for _, p := range domain.DefaultPresets() {
		t.Run(p.Name, func(t *testing.T) {
			b, err := board.New(p.Width, p.Height, p.Mines, board.WithSeed(3))
			require.NoError(t, err)
			ok, conflicts, err := New().Validate(ctx, b)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, conflicts)
		})
	}
}

func TestValidateReportsWrongCounts(t *testing.T) {
	g := grid{w: 2, h: 1, mines: 1, cells: map[domain.Coordinate]domain.Cell{
		{X: 0, Y: 0}: {Content: domain.MineContent()},
		{X: 1, Y: 0}: {Content: domain.EmptyContent(0)},
	}}
	ok, conflicts, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.Coordinate{{X: 1, Y: 0}}, conflicts)
}

func TestValidateReportsMineTotal(t *testing.T) {
	g := grid{w: 2, h: 1, mines: 2, cells: map[domain.Coordinate]domain.Cell{
		{X: 0, Y: 0}: {Content: domain.MineContent()},
		{X: 1, Y: 0}: {Content: domain.EmptyContent(1)},
	}}
	ok, _, err := New().Validate(context.Background(), g)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestValidateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b, err := board.New(4, 4, 2)
	require.NoError(t, err)
	_, _, err = New().Validate(ctx, b)
	assert.ErrorIs(t, err, context.Canceled)
}
