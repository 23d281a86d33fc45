// Package session wraps a board with the identity and locking needed to
// serve it to concurrent requests.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"svw.info/minesweeper/internal/board"
	"svw.info/minesweeper/internal/domain"
)

// Game is one live board. All access to the board goes through the mutex.
type Game struct {
	ID        string
	Preset    domain.Preset
	Seed      int64
	CreatedAt time.Time

	mu        sync.Mutex
	board     *board.Board
	updatedAt time.Time
}

// New assigns a fresh ID to b.
func New(b *board.Board, preset domain.Preset, seed int64) *Game {
	now := time.Now()
	return &Game{
		ID:        uuid.NewString(),
		Preset:    preset,
		Seed:      seed,
		CreatedAt: now,
		board:     b,
		updatedAt: now,
	}
}

// Move is the outcome of one player action.
type Move struct {
	Changed bool
	Before  domain.Status
	View    domain.BoardView
}

// Finished reports whether this move ended the game.
func (m Move) Finished() bool { return m.Before.IsPlaying() && m.View.Status.IsTerminal() }

func (g *Game) Reveal(c domain.Coordinate) (Move, error) {
	return g.apply(c, (*board.Board).Reveal)
}

func (g *Game) ToggleFlag(c domain.Coordinate) (Move, error) {
	return g.apply(c, (*board.Board).ToggleFlag)
}

func (g *Game) apply(c domain.Coordinate, act func(*board.Board, domain.Coordinate) bool) (Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.board.InBounds(c) {
		return Move{}, domain.ErrOutOfBounds
	}
	m := Move{Before: g.board.Status()}
	m.Changed = act(g.board, c)
	m.View = g.board.View()
	g.updatedAt = time.Now()
	return m, nil
}

func (g *Game) View() domain.BoardView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.View()
}

func (g *Game) Status() domain.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Status()
}

// Render returns the board in text form for logs.
func (g *Game) Render() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.String()
}

// Idle reports how long ago the game was last played.
func (g *Game) Idle(now time.Time) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return now.Sub(g.updatedAt)
}
