// Package storage keeps live games in process memory. Nothing is written to
// disk; a restart forgets every game.
package storage

import (
	"context"
	"sync"
	"time"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/session"
)

// Memory is a ports.Sessions backed by a map guarded by a RWMutex.
type Memory struct {
	mu    sync.RWMutex
	games map[string]*session.Game
}

func NewMemory() *Memory {
	return &Memory{games: make(map[string]*session.Game)}
}

func (m *Memory) Put(ctx context.Context, g *session.Game) error {
	if g == nil || g.ID == "" {
		return domain.ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (*session.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Sweep drops games nobody has touched for longer than idle and returns how
// many were removed.
func (m *Memory) Sweep(ctx context.Context, idle time.Duration) int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, g := range m.games {
		if g.Idle(now) > idle {
			delete(m.games, id)
			n++
		}
	}
	return n
}

// Janitor calls Sweep every interval until ctx is done.
func (m *Memory) Janitor(ctx context.Context, interval, idle time.Duration, onSweep func(removed int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(ctx, idle); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
