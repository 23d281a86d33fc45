package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/minesweeper/internal/board"
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/session"
)

func newGame(t *testing.T) *session.Game {
	t.Helper()
	b, err := board.New(3, 3, 1, board.WithSeed(1))
	require.NoError(t, err)
	return session.New(b, domain.Preset{Name: "custom", Width: 3, Height: 3, Mines: 1}, 1)
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	g := newGame(t)

	_, err := m.Get(ctx, g.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, m.Put(ctx, g))
	got, err := m.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Delete(ctx, g.ID))
	assert.ErrorIs(t, m.Delete(ctx, g.ID), domain.ErrNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestPutRejectsMissingID(t *testing.T) {
	assert.Error(t, NewMemory().Put(context.Background(), &session.Game{}))
}

func TestSweepDropsIdleGames(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Put(ctx, newGame(t)))
	require.NoError(t, m.Put(ctx, newGame(t)))

	assert.Equal(t, 0, m.Sweep(ctx, time.Hour))
	assert.Equal(t, 2, m.Len())

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, m.Sweep(ctx, time.Millisecond))
	assert.Equal(t, 0, m.Len())
}

func TestJanitorStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMemory()
	require.NoError(t, m.Put(ctx, newGame(t)))

	removed := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		m.Janitor(ctx, time.Millisecond, 0, func(n int) {
			select {
			case removed <- n:
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-removed:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("janitor never swept")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
