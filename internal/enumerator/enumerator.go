// Package enumerator implements the Word Enumerator: from a single start
// cell, depth-first search over simple 8-connected paths, pruned by the
// dictionary's live prefixes, producing one (word, path) Candidate per
// reachable word.
package enumerator

import (
	"errors"
	"sort"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/candidate"
	"github.com/thespudmore/NYT-Strands-Solver/internal/dictionary"
)

// Default length bounds per the external interface configuration.
const (
	DefaultMinLen = 4
	DefaultMaxLen = 15
)

// ErrOutOfBounds flags a start cell outside the grid or already occupied.
// Per spec §7 it is never returned to callers — EnumerateFrom translates it
// into an empty result — but it names the disposition for logging callers
// such as internal/session.
var ErrOutOfBounds = errors.New("enumerator: start cell out of bounds or occupied")

// Options bounds the word lengths the enumerator will accept.
type Options struct {
	MinLen int
	MaxLen int
}

// DefaultOptions returns the default min/max length bounds.
func DefaultOptions() Options {
	return Options{MinLen: DefaultMinLen, MaxLen: DefaultMaxLen}
}

// EnumerateFrom produces every dictionary word reachable by a simple
// 8-connected path from start, paired with one path realizing it — the
// longest such path when several exist.
//
// If start is out of bounds or already occupied, the result is empty; the
// enumerator never raises for a bad start cell (spec §7, OutOfBoundsStart).
func EnumerateFrom(
	g *board.Grid,
	dict *dictionary.Dictionary,
	start board.Cell,
	occupied board.OccupancyMask,
	blacklist *dictionary.Blacklist,
	opts Options,
) []candidate.Candidate {
	if g == nil || !g.InBounds(start) {
		return nil
	}
	startPos := start.Pos(g.Cols())
	if occupied.Has(startPos) {
		return nil
	}
	if opts.MinLen <= 0 {
		opts = Options{MinLen: DefaultMinLen, MaxLen: opts.MaxLen}
	}
	if opts.MaxLen <= 0 {
		opts.MaxLen = DefaultMaxLen
	}
	if opts.MinLen > opts.MaxLen {
		return nil
	}

	e := &enumState{
		grid:      g,
		dict:      dict,
		occupied:  occupied,
		blacklist: blacklist,
		minLen:    opts.MinLen,
		maxLen:    opts.MaxLen,
		visited:   board.NewOccupancyMask(g.CellCount()),
		path:      make([]board.Cell, 0, opts.MaxLen),
		letters:   make([]byte, 0, opts.MaxLen),
		order:     make([]candidate.Candidate, 0, 16),
		indexOf:   make(map[string]int),
	}

	e.visited.Set(startPos)
	e.path = append(e.path, start)
	e.letters = append(e.letters, byte(g.At(start)))
	e.dfs()

	// Sort by length descending; ties keep insertion (first-discovery) order.
	sort.SliceStable(e.order, func(i, j int) bool {
		return len(e.order[i].Word) > len(e.order[j].Word)
	})
	return e.order
}

// CollectOverGrid concatenates EnumerateFrom over every in-bounds cell in
// row-major order — the convenience used to build the Solver's candidate
// pool.
func CollectOverGrid(
	g *board.Grid,
	dict *dictionary.Dictionary,
	occupied board.OccupancyMask,
	blacklist *dictionary.Blacklist,
	opts Options,
) []candidate.Candidate {
	if g == nil {
		return nil
	}
	var all []candidate.Candidate
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			start := board.Cell{Row: r, Col: c}
			all = append(all, EnumerateFrom(g, dict, start, occupied, blacklist, opts)...)
		}
	}
	return all
}

// enumState is the scratch state for a single EnumerateFrom call: the
// growing word, the growing path, and a visited set equal to the cells in
// the path — all scoped to this call.
type enumState struct {
	grid      *board.Grid
	dict      *dictionary.Dictionary
	occupied  board.OccupancyMask
	blacklist *dictionary.Blacklist
	minLen    int
	maxLen    int

	path    []board.Cell
	letters []byte
	visited board.OccupancyMask

	order   []candidate.Candidate
	indexOf map[string]int // word -> index into order
}

func (e *enumState) dfs() {
	word := string(e.letters)

	if len(word) >= e.minLen && e.dict.Contains(word) && !e.blacklist.Contains(word) {
		e.record(word)
	}

	if len(word) >= e.maxLen {
		return
	}
	if !e.dict.HasPrefix(word) {
		return
	}

	cur := e.path[len(e.path)-1]
	cols := e.grid.Cols()
	for _, off := range board.NeighborOffsets {
		nb := board.Cell{Row: cur.Row + off.Row, Col: cur.Col + off.Col}
		if !e.grid.InBounds(nb) {
			continue
		}
		pos := nb.Pos(cols)
		if e.occupied.Has(pos) || e.visited.Has(pos) {
			continue
		}

		e.visited.Set(pos)
		e.path = append(e.path, nb)
		e.letters = append(e.letters, byte(e.grid.At(nb)))

		e.dfs()

		e.letters = e.letters[:len(e.letters)-1]
		e.path = e.path[:len(e.path)-1]
		e.visited.Clear(pos)
	}
}

// record keeps at most one path per word: the longest seen, the first
// max-length path encountered under the fixed neighbor order on ties.
func (e *enumState) record(word string) {
	if idx, ok := e.indexOf[word]; ok {
		if len(e.path) > len(e.order[idx].Path) {
			e.order[idx] = candidate.Candidate{Word: word, Path: clonePath(e.path)}
		}
		return
	}
	e.indexOf[word] = len(e.order)
	e.order = append(e.order, candidate.Candidate{Word: word, Path: clonePath(e.path)})
}

func clonePath(path []board.Cell) []board.Cell {
	out := make([]board.Cell, len(path))
	copy(out, path)
	return out
}
