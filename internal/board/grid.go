// Package board implements the immutable grid model shared by the
// Enumerator and Solver: letters, cells, and occupancy bitmasks.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Dimension bounds, per the grid invariant 1 ≤ R, C ≤ 20.
const (
	MinDim = 1
	MaxDim = 20
)

var (
	ErrInvalidGrid = errors.New("board: invalid grid")
)

// Letter is a single uppercase character A-Z.
type Letter byte

// Cell is an ordered (row, col) pair.
type Cell struct {
	Row int
	Col int
}

// Pos linearizes the cell against a grid of the given column count.
func (c Cell) Pos(cols int) int {
	return c.Row*cols + c.Col
}

// NeighborOffsets is the fixed 8-neighbor enumeration order the Enumerator's
// DFS and the determinism laws in the spec depend on. Never reorder this.
var NeighborOffsets = [8]Cell{
	{Row: -1, Col: -1},
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
}

// Grid is an immutable R×C letter grid.
type Grid struct {
	rows, cols int
	letters    []Letter // row-major, len == rows*cols
}

// NewGrid builds a Grid from rows of uppercase letters. Every row must have
// the same length, each rune must be A-Z, and dimensions must satisfy
// MinDim ≤ R, C ≤ MaxDim.
func NewGrid(rows []string) (*Grid, error) {
	r := len(rows)
	if r < MinDim || r > MaxDim {
		return nil, fmt.Errorf("%w: %d rows, want %d..%d", ErrInvalidGrid, r, MinDim, MaxDim)
	}
	c := len(rows[0])
	if c < MinDim || c > MaxDim {
		return nil, fmt.Errorf("%w: %d cols, want %d..%d", ErrInvalidGrid, c, MinDim, MaxDim)
	}

	letters := make([]Letter, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidGrid, i, len(row), c)
		}
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch < 'A' || ch > 'Z' {
				return nil, fmt.Errorf("%w: non-letter cell (%d,%d) = %q", ErrInvalidGrid, i, j, ch)
			}
			letters = append(letters, Letter(ch))
		}
	}

	return &Grid{rows: r, cols: c, letters: letters}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// CellCount returns R*C.
func (g *Grid) CellCount() int { return g.rows * g.cols }

// InBounds reports whether c is a valid cell for this grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the letter at c. Caller must ensure c is in bounds.
func (g *Grid) At(c Cell) Letter {
	return g.letters[c.Pos(g.cols)]
}

// IsCorner reports whether c is one of the grid's four corners.
func (g *Grid) IsCorner(c Cell) bool {
	return (c.Row == 0 || c.Row == g.rows-1) && (c.Col == 0 || c.Col == g.cols-1)
}

// IsEdge reports whether c lies on the border but is not a corner.
func (g *Grid) IsEdge(c Cell) bool {
	if g.IsCorner(c) {
		return false
	}
	return c.Row == 0 || c.Row == g.rows-1 || c.Col == 0 || c.Col == g.cols-1
}

// Spell concatenates the letters along a path into a word.
func (g *Grid) Spell(path []Cell) string {
	var sb strings.Builder
	sb.Grow(len(path))
	for _, c := range path {
		sb.WriteByte(byte(g.At(c)))
	}
	return sb.String()
}

// String renders the grid for debugging, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteByte(byte(g.At(Cell{Row: r, Col: c})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
