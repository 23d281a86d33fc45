package domain

import "strconv"

// Coordinate identifies a cell; X is the column and Y the row, both zero based.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Content is fixed at construction: either a mine or an empty cell with the
// number of mines among its neighbours.
type Content struct {
	Mine     bool
	Adjacent uint8
}

func MineContent() Content              { return Content{Mine: true} }
func EmptyContent(adjacent int) Content { return Content{Adjacent: uint8(adjacent)} }

// IsEmptyZero reports whether revealing this cell cascades to its neighbours.
func (c Content) IsEmptyZero() bool { return !c.Mine && c.Adjacent == 0 }

// Cell is one grid position.
type Cell struct {
	Content    Content
	Visibility Visibility
}

// CellView is a cell as the player may see it. Mine and Adjacent are only
// meaningful when Exposed is true.
type CellView struct {
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Visibility Visibility `json:"visibility"`
	Exposed    bool       `json:"exposed,omitempty"`
	Mine       bool       `json:"mine,omitempty"`
	Adjacent   int        `json:"adjacent,omitempty"`
}

// BoardView is a read-only snapshot for rendering. Cells is indexed [y][x].
type BoardView struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Mines  int          `json:"mines"`
	Flags  int          `json:"flags"`
	Status Status       `json:"status"`
	Cells  [][]CellView `json:"cells"`
}

// At returns the view of c, or false when c lies outside the snapshot.
func (v BoardView) At(c Coordinate) (CellView, bool) {
	if c.X < 0 || c.Y < 0 || c.X >= v.Width || c.Y >= v.Height {
		return CellView{}, false
	}
	return v.Cells[c.Y][c.X], true
}

// Hint describes a deduction the player can make from visible cells.
type Hint struct {
	Kind    HintKind   `json:"kind"`
	Cell    Coordinate `json:"cell"`
	Because Coordinate `json:"because"`
	Message string     `json:"message,omitempty"`
}
