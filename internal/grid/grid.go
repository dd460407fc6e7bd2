package grid

import (
	"fmt"
	"io"
	"strings"
)

// Cell characters.
const (
	Floor    byte = '.'
	Treasure byte = 'T'
	Key      byte = 'K'
)

// Coord is a (row, column) position. It may lie outside any grid.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable maze map. The zero value is not usable; build one
// with New or FromRows.
type Grid struct {
	Width  int
	Height int
	cells  []byte
}

// New builds a grid from rows whose concatenation holds exactly
// width*height cells. Row boundaries in the input need not line up with width.
func New(rows []string, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	n := 0
	for _, r := range rows {
		n += len(r)
	}
	// compare by division so width*height cannot wrap
	if width > n || n%width != 0 || n/width != height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrSizeMismatch, n, width, height)
	}

	cells := make([]byte, 0, n)
	for _, r := range rows {
		cells = append(cells, r...)
	}
	for i, c := range cells {
		if !IsCell(c) {
			return nil, &CellError{Index: i, Cell: c}
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// FromRows builds a grid from equal-length rows, one per grid row.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, r := range rows {
		if len(r) != w {
			return nil, ErrRaggedRows
		}
	}
	return New(rows, w, len(rows))
}

// IsCell reports whether c belongs to the cell alphabet.
func IsCell(c byte) bool {
	switch c {
	case Floor, Treasure, Key:
		return true
	}
	_, ok := HeadingForCell(c)
	return ok
}

// IsValidCoordinate reports whether (row, col) lies inside the grid.
func (g *Grid) IsValidCoordinate(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Contains is IsValidCoordinate for a Coord.
func (g *Grid) Contains(c Coord) bool {
	return g.IsValidCoordinate(c.Row, c.Col)
}

// ContainsIndex reports whether a flat offset addresses a cell.
func (g *Grid) ContainsIndex(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// CellAt returns the cell at (row, col). Callers must check
// IsValidCoordinate first; an out-of-range coordinate panics.
func (g *Grid) CellAt(row, col int) byte {
	if !g.IsValidCoordinate(row, col) {
		panic(fmt.Sprintf("grid: CellAt(%d, %d) outside %dx%d grid", row, col, g.Width, g.Height))
	}
	return g.cells[row*g.Width+col]
}

// Cell is CellAt for a Coord.
func (g *Grid) Cell(c Coord) byte {
	return g.CellAt(c.Row, c.Col)
}

// ToCoordinate converts a flat offset to (row, col). Offsets outside
// [0, Width*Height) map to coordinates that fail IsValidCoordinate.
func (g *Grid) ToCoordinate(index int) Coord {
	if index < 0 {
		// floor division keeps col in [0, Width) and pushes row negative
		row := -((-index + g.Width - 1) / g.Width)
		return Coord{Row: row, Col: index - row*g.Width}
	}
	return Coord{Row: index / g.Width, Col: index % g.Width}
}

// ToFlatIndex converts (row, col) to a flat offset.
func (g *Grid) ToFlatIndex(row, col int) int {
	return row*g.Width + col
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Count returns how many cells hold c.
func (g *Grid) Count(c byte) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Rows returns the map split into Height rows of Width cells.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for r := range rows {
		rows[r] = string(g.cells[r*g.Width : (r+1)*g.Width])
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Render draws the grid one row per line, replacing the robot's cell with
// the glyph of h. A position outside the grid draws no robot.
func (g *Grid) Render(pos Coord, h Heading) string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if row == pos.Row && col == pos.Col {
				sb.WriteByte(h.Glyph())
				continue
			}
			sb.WriteByte(g.cells[row*g.Width+col])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes a "Maze:" header, the rendering and a blank line to w.
func (g *Grid) Print(w io.Writer, pos Coord, h Heading) error {
	_, err := fmt.Fprintf(w, "Maze:\n%s\n", g.Render(pos, h))
	return err
}
