package board

import (
	"strconv"
	"strings"

	"svw.info/minesweeper/internal/domain"
)

// View returns what the player may see. Content is exposed for revealed
// cells. Once the game is over hidden mines are exposed too, and flagged
// cells say whether they really hold a mine.
func (b *Board) View() domain.BoardView {
	v := domain.BoardView{
		Width:  b.width,
		Height: b.height,
		Mines:  b.mines,
		Flags:  b.flags,
		Status: b.status,
		Cells:  make([][]domain.CellView, b.height),
	}
	over := b.status.IsTerminal()
	for y := 0; y < b.height; y++ {
		row := make([]domain.CellView, b.width)
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			cv := domain.CellView{X: x, Y: y, Visibility: cell.Visibility}
			switch {
			case cell.Visibility == domain.Revealed:
				cv.Exposed = true
				cv.Mine = cell.Content.Mine
				cv.Adjacent = int(cell.Content.Adjacent)
			case over && (cell.Content.Mine || cell.Visibility == domain.Flagged):
				cv.Exposed = true
				cv.Mine = cell.Content.Mine
			}
			row[x] = cv
		}
		v.Cells[y] = row
	}
	return v
}

// String renders the player's view, one row per line:
// '-' hidden, 'F' flagged, '*' mine, '.' zero, digits otherwise.
func (b *Board) String() string {
	return Render(b.View())
}

// Render draws a view in the same text form as Board.String.
func Render(v domain.BoardView) string {
	var sb strings.Builder
	for _, row := range v.Cells {
		for _, c := range row {
			sb.WriteByte(glyph(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(c domain.CellView) byte {
	switch {
	case c.Visibility == domain.Flagged:
		return 'F'
	case !c.Exposed:
		return '-'
	case c.Mine:
		return '*'
	case c.Adjacent == 0:
		return '.'
	default:
		return strconv.Itoa(c.Adjacent)[0]
	}
}
