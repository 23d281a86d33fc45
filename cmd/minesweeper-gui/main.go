// Command minesweeper-gui plays the board engine in a desktop window.
//
// Left click reveals, right click flags. Keys: 1-9 pick a preset, N starts a
// new game with the current preset, H highlights a hint.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"svw.info/minesweeper/internal/board"
	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/hint"
)

const (
	cellSize       = 24
	outerPadding   = 12
	topPanelHeight = 48
)

var (
	colBackground = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}
	colHidden     = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}
	colRevealed   = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colGrid       = color.RGBA{0x99, 0x99, 0x99, 0xff}
	colExploded   = color.RGBA{0xd2, 0x28, 0x28, 0xff}
	colMine       = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colFlag       = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	colWrongFlag  = color.RGBA{0x7b, 0x1f, 0xa2, 0xff}
	colHint       = color.RGBA{0x22, 0xaa, 0x66, 0xff}
	colText       = color.RGBA{0x21, 0x21, 0x21, 0xff}

	numberColors = [9]color.Color{
		colText,
		color.RGBA{0x19, 0x76, 0xd2, 0xff},
		color.RGBA{0x38, 0x8e, 0x3c, 0xff},
		color.RGBA{0xd3, 0x2f, 0x2f, 0xff},
		color.RGBA{0x7b, 0x1f, 0xa2, 0xff},
		color.RGBA{0xff, 0x8f, 0x00, 0xff},
		color.RGBA{0x00, 0x97, 0xa7, 0xff},
		color.RGBA{0x42, 0x42, 0x42, 0xff},
		color.RGBA{0x9e, 0x9e, 0x9e, 0xff},
	}
)

type game struct {
	presets *config.Presets
	preset  domain.Preset
	seed    int64
	b       *board.Board
	hinter  *hint.SinglePoint
	hinted  *domain.Hint
	face    font.Face
	logger  *slog.Logger
}

func newGame(presets *config.Presets, p domain.Preset, seed int64, logger *slog.Logger) (*game, error) {
	g := &game{
		presets: presets,
		seed:    seed,
		hinter:  hint.NewSinglePoint(),
		face:    basicfont.Face7x13,
		logger:  logger,
	}
	if err := g.start(p); err != nil {
		return nil, err
	}
	return g, nil
}

// start replaces the board; the engine is a plain value owned by the window.
func (g *game) start(p domain.Preset) error {
	var opts []board.Option
	if g.seed != 0 {
		opts = append(opts, board.WithSeed(g.seed))
	}
	b, err := board.New(p.Width, p.Height, p.Mines, opts...)
	if err != nil {
		return err
	}
	g.b, g.preset, g.hinted = b, p, nil
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Minesweeper - %s", p.Name))
	g.logger.Info("game started", "preset", p.Name, "width", p.Width, "height", p.Height, "mines", p.Mines)
	return nil
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.b.Width()*cellSize + outerPadding*2, topPanelHeight + g.b.Height()*cellSize + outerPadding
}

func (g *game) cellAt(mx, my int) (domain.Coordinate, bool) {
	if mx < outerPadding || my < topPanelHeight {
		return domain.Coordinate{}, false
	}
	c := domain.Coordinate{X: (mx - outerPadding) / cellSize, Y: (my - topPanelHeight) / cellSize}
	return c, g.b.InBounds(c)
}

func (g *game) Update() error {
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9} {
		if i < len(g.presets.List) && inpututil.IsKeyJustPressed(k) {
			return g.start(g.presets.List[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return g.start(g.preset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h, ok, err := g.hinter.Hint(context.Background(), g.b.View())
		if err != nil {
			return err
		}
		g.hinted = nil
		if ok {
			g.hinted = &h
		}
	}

	before := g.b.Status()
	mx, my := ebiten.CursorPosition()
	if c, ok := g.cellAt(mx, my); ok {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			if g.b.Reveal(c) {
				g.hinted = nil
			}
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			if g.b.ToggleFlag(c) {
				g.hinted = nil
			}
		}
	}
	if before.IsPlaying() && g.b.Status().IsTerminal() {
		g.logger.Info("game finished", "status", g.b.Status().String(), "preset", g.preset.Name)
		g.logger.Debug("final board", "board", g.b.String())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	v := g.b.View()
	status := "Playing"
	switch v.Status {
	case domain.Won:
		status = "You won!"
	case domain.Lost:
		status = "You lost!"
	}
	header := fmt.Sprintf("%s  %s  mines left: %d", g.preset.Name, status, v.Mines-v.Flags)
	text.Draw(screen, header, g.face, outerPadding, 20, colText)
	text.Draw(screen, "1-9 preset  N new  H hint", g.face, outerPadding, 38, colGrid)

	exploded, lost := g.b.Exploded()
	for _, row := range v.Cells {
		for _, c := range row {
			g.drawCell(screen, c, lost && exploded == domain.Coordinate{X: c.X, Y: c.Y})
		}
	}
	if g.hinted != nil {
		px := float32(outerPadding + g.hinted.Cell.X*cellSize)
		py := float32(topPanelHeight + g.hinted.Cell.Y*cellSize)
		vector.StrokeRect(screen, px+1, py+1, cellSize-2, cellSize-2, 2, colHint, false)
	}
}

func (g *game) drawCell(screen *ebiten.Image, c domain.CellView, exploded bool) {
	px := float32(outerPadding + c.X*cellSize)
	py := float32(topPanelHeight + c.Y*cellSize)
	cx, cy := px+cellSize/2, py+cellSize/2

	bg := colHidden
	if c.Visibility == domain.Revealed {
		bg = colRevealed
	}
	if exploded {
		bg = colExploded
	}
	vector.DrawFilledRect(screen, px, py, cellSize, cellSize, bg, false)
	vector.StrokeRect(screen, px, py, cellSize, cellSize, 1, colGrid, false)

	switch {
	case c.Visibility == domain.Flagged:
		clr := colFlag
		if c.Exposed && !c.Mine {
			clr = colWrongFlag
		}
		vector.DrawFilledRect(screen, px+11, py+5, 2, 14, colText, false)
		vector.DrawFilledRect(screen, px+5, py+5, 7, 6, clr, false)
		vector.DrawFilledRect(screen, px+7, py+18, 10, 2, colText, false)
	case !c.Exposed:
	case c.Mine:
		vector.DrawFilledCircle(screen, cx, cy, 6, colMine, true)
	case c.Adjacent > 0:
		text.Draw(screen, strconv.Itoa(c.Adjacent), g.face, int(cx)-3, int(cy)+5, numberColors[c.Adjacent])
	}
}

func main() {
	presetsPath := flag.String("presets", "", "presets file (.hcl, .yaml or .yml)")
	presetName := flag.String("preset", "", "preset to start with; the file's default when empty")
	seed := flag.Int64("seed", 0, "fixed placement seed; random when 0")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl, err := config.ParseLevel(*levelStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	presets, err := config.LoadPresets(*presetsPath)
	if err != nil {
		logger.Error("load presets", "err", err)
		os.Exit(1)
	}
	p, ok := presets.Lookup(*presetName)
	if !ok {
		logger.Error("unknown preset", "preset", *presetName)
		os.Exit(2)
	}
	g, err := newGame(presets, p, *seed, logger)
	if err != nil {
		logger.Error("new game", "err", err)
		os.Exit(1)
	}
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
