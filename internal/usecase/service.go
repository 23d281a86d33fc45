package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/minesweeper/internal/board"
	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/ctxlog"
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/ports"
	"svw.info/minesweeper/internal/session"
)

type Service struct {
	Placer    generator.Placer
	Sessions  ports.Sessions
	Validator ports.Validator
	Hinter    ports.Hinter
	Presets   *config.Presets
	// MaxCells caps width*height of new boards; config.DefaultMaxCells when zero.
	MaxCells int
}

func NewService(p generator.Placer, s ports.Sessions, v ports.Validator, h ports.Hinter, presets *config.Presets) *Service {
	if presets == nil {
		presets = config.DefaultPresets()
	}
	return &Service{Placer: p, Sessions: s, Validator: v, Hinter: h, Presets: presets, MaxCells: config.DefaultMaxCells}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewGameRequest selects a named preset, or custom dimensions when Width
// and Height are set. A zero Seed picks a random one.
type NewGameRequest struct {
	Preset string
	Width  int
	Height int
	Mines  int
	Seed   int64
}

// Snapshot is what callers get back after every operation.
type Snapshot struct {
	ID      string           `json:"id"`
	Preset  string           `json:"preset"`
	Seed    int64            `json:"seed"`
	Changed bool             `json:"changed"`
	Board   domain.BoardView `json:"board"`
}

func snapshot(g *session.Game, v domain.BoardView, changed bool) Snapshot {
	return Snapshot{ID: g.ID, Preset: g.Preset.Name, Seed: g.Seed, Changed: changed, Board: v}
}

// ListPresets returns a copy of the configured presets and the default name.
func (u *Service) ListPresets(ctx context.Context) ([]domain.Preset, string, error) {
	if u.Presets == nil {
		return nil, "", errNotConfigured
	}
	return append([]domain.Preset(nil), u.Presets.List...), u.Presets.Default, nil
}

func (u *Service) NewGame(ctx context.Context, req NewGameRequest) (Snapshot, error) {
	if u.Sessions == nil || u.Placer == nil {
		return Snapshot{}, errNotConfigured
	}
	preset, err := u.resolvePreset(req)
	if err != nil {
		return Snapshot{}, err
	}
	rng, seed := generator.NewRand(req.Seed)
	b, err := board.New(preset.Width, preset.Height, preset.Mines, board.WithPlacer(u.Placer), board.WithRand(rng))
	if err != nil {
		return Snapshot{}, err
	}
	if u.Validator != nil {
		ok, conflicts, err := u.Validator.Validate(ctx, b)
		if err != nil {
			return Snapshot{}, err
		}
		if !ok {
			return Snapshot{}, fmt.Errorf("%w: wrong neighbour counts at %v", domain.ErrInvalidConfiguration, conflicts)
		}
	}
	g := session.New(b, preset, seed)
	if err := u.Sessions.Put(ctx, g); err != nil {
		return Snapshot{}, err
	}
	ctxlog.FromContext(ctx).Info("game created",
		"id", g.ID, "preset", preset.Name,
		"width", preset.Width, "height", preset.Height, "mines", preset.Mines, "seed", seed)
	return snapshot(g, g.View(), true), nil
}

func (u *Service) resolvePreset(req NewGameRequest) (domain.Preset, error) {
	var p domain.Preset
	if req.Width != 0 || req.Height != 0 {
		p = domain.Preset{Name: "custom", Width: req.Width, Height: req.Height, Mines: req.Mines}
	} else {
		if u.Presets == nil {
			return domain.Preset{}, errNotConfigured
		}
		var ok bool
		if p, ok = u.Presets.Lookup(req.Preset); !ok {
			return domain.Preset{}, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidConfiguration, req.Preset)
		}
	}
	if err := p.Validate(); err != nil {
		return domain.Preset{}, err
	}
	limit := u.MaxCells
	if limit <= 0 {
		limit = config.DefaultMaxCells
	}
	if p.Width > limit/p.Height {
		return domain.Preset{}, fmt.Errorf("%w: %dx%d board exceeds the limit of %d cells",
			domain.ErrInvalidConfiguration, p.Width, p.Height, limit)
	}
	return p, nil
}

func (u *Service) Reveal(ctx context.Context, id string, c domain.Coordinate) (Snapshot, error) {
	return u.move(ctx, id, c, "reveal", (*session.Game).Reveal)
}

func (u *Service) ToggleFlag(ctx context.Context, id string, c domain.Coordinate) (Snapshot, error) {
	return u.move(ctx, id, c, "flag", (*session.Game).ToggleFlag)
}

func (u *Service) move(ctx context.Context, id string, c domain.Coordinate, action string,
	act func(*session.Game, domain.Coordinate) (session.Move, error)) (Snapshot, error) {
	g, err := u.game(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	m, err := act(g, c)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s %s: %w", action, c, err)
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("move", "id", id, "action", action, "cell", c.String(), "changed", m.Changed)
	if m.Finished() {
		logger.Info("game finished", "id", id, "status", m.View.Status.String(), "preset", g.Preset.Name)
		logger.Debug("final board", "id", id, "board", g.Render())
	}
	return snapshot(g, m.View, m.Changed), nil
}

func (u *Service) Get(ctx context.Context, id string) (Snapshot, error) {
	g, err := u.game(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return snapshot(g, g.View(), false), nil
}

func (u *Service) Hint(ctx context.Context, id string) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	g, err := u.game(ctx, id)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, g.View())
}

// Abandon forgets a game.
func (u *Service) Abandon(ctx context.Context, id string) error {
	if u.Sessions == nil {
		return errNotConfigured
	}
	if err := u.Sessions.Delete(ctx, id); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("game abandoned", "id", id)
	return nil
}

func (u *Service) game(ctx context.Context, id string) (*session.Game, error) {
	if u.Sessions == nil {
		return nil, errNotConfigured
	}
	return u.Sessions.Get(ctx, id)
}
