// Package candidate holds the shared (Word, Path) and Placement types that
// flow between the Enumerator and the Tiling Solver.
package candidate

import "github.com/thespudmore/NYT-Strands-Solver/internal/board"

// Candidate pairs a dictionary word with the path that spells it.
type Candidate struct {
	Word string
	Path []board.Cell
}

// Clone returns a Candidate with an independently owned Path slice. The
// solver's best-so-far snapshot must deep-copy path arrays, otherwise later
// backtracks corrupt it — this is a load-bearing contract, not an
// optimization.
func (c Candidate) Clone() Candidate {
	path := make([]board.Cell, len(c.Path))
	copy(path, c.Path)
	return Candidate{Word: c.Word, Path: path}
}

// Placement is an ordered list of cell-disjoint Candidates. The order is the
// backtracking stack order and carries no semantic meaning to consumers.
type Placement []Candidate

// Clone deep-copies every candidate's path, per the same ownership
// contract as Candidate.Clone.
func (p Placement) Clone() Placement {
	out := make(Placement, len(p))
	for i, c := range p {
		out[i] = c.Clone()
	}
	return out
}

// Occupancy unions every candidate's path cells into a fresh mask sized for
// cellCount positions.
func (p Placement) Occupancy(cellCount, cols int) board.OccupancyMask {
	m := board.NewOccupancyMask(cellCount)
	for _, c := range p {
		for _, cell := range c.Path {
			m.Set(cell.Pos(cols))
		}
	}
	return m
}
