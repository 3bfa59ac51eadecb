// Package tiling implements the Tiling Solver: a priority-ordered,
// bounded backtracking search that selects a disjoint subset of candidates
// maximizing grid coverage, with a cooperative progress/cancel contract.
package tiling

import (
	"errors"
	"runtime"
	"sort"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/candidate"
)

// Error sentinels, per spec §7. These are values, never panics.
// ErrBudgetExhausted and ErrCancelled name the two dispositions that are
// never actually returned from Solve — both fall back to the best-so-far
// placement, per spec §7 — and are defined only to name those outcomes;
// nothing in this module returns or checks them. Only ErrNoSolution, the
// no-solution-and-no-committed-placement case, is ever returned.
var (
	ErrNoSolution      = errors.New("tiling: no solution and no committed placement")
	ErrBudgetExhausted = errors.New("tiling: attempt budget exhausted before a complete tiling was found")
	ErrCancelled       = errors.New("tiling: cancelled before a complete tiling was found")
)

// ProgressFunc is invoked every ProgressInterval attempts with the attempt
// count, the number of candidates currently placed, and the best coverage
// reached so far expressed as a percentage of the grid's cell count.
type ProgressFunc func(attempts, placedCount int, coveragePercent float64)

// CancelFunc is polled alongside ProgressFunc; once it reports true the
// solver unwinds and returns the best placement seen so far.
type CancelFunc func() bool

// Solver finds a disjoint subset of a candidate pool that tiles a Grid.
type Solver struct {
	grid    *board.Grid
	options *Options
}

// New creates a Solver bound to a grid. A nil options uses DefaultOptions.
func New(g *board.Grid, options *Options) *Solver {
	return &Solver{grid: g, options: options.orDefaults()}
}

// Solve selects a disjoint subset of pool (in addition to the already
// committed candidates) maximizing coverage of the grid.
//
// Return semantics, in priority order:
//  1. A complete placement (every cell covered) is returned as SUCCESS.
//  2. Otherwise the best partial placement discovered, if it covers more
//     cells than committed alone.
//  3. Otherwise committed, if nonempty.
//  4. Otherwise ErrNoSolution.
func (s *Solver) Solve(
	pool []candidate.Candidate,
	committed candidate.Placement,
	progress ProgressFunc,
	cancel CancelFunc,
) (candidate.Placement, error) {
	cellCount := s.grid.CellCount()
	cols := s.grid.Cols()

	occupied := board.NewOccupancyMask(cellCount)
	current := make(candidate.Placement, 0, len(committed)+len(pool))
	for _, c := range committed {
		for _, cell := range c.Path {
			occupied.Set(cell.Pos(cols))
		}
		current = append(current, c)
	}
	committedCoverage := occupied.Count()

	// Edge case: committed alone is already complete — SUCCESS without
	// entering recursion at all.
	if committedCoverage == cellCount {
		return current.Clone(), nil
	}

	prioritized := prioritize(s.grid, pool)

	r := &run{
		grid:              s.grid,
		cols:              cols,
		cellCount:         cellCount,
		pool:              prioritized,
		occupied:          occupied,
		current:           current,
		best:              current.Clone(),
		bestCoverage:      committedCoverage,
		maxAttempts:       s.options.MaxAttempts,
		progressInterval:  s.options.ProgressInterval,
		progress:          progress,
		cancel:            cancel,
	}

	// Suspension point 3 (spec §5): a one-shot deferral before entering the
	// backtracking recursion so the embedder gets a chance to run first.
	runtime.Gosched()

	success := r.backtrack(0)
	if success {
		return r.current.Clone(), nil
	}

	if r.bestCoverage > committedCoverage {
		return r.best, nil
	}
	if len(committed) > 0 {
		return current.Clone(), nil
	}
	return nil, ErrNoSolution
}

// run holds the mutable state of a single backtracking search. Splitting it
// out of Solver mirrors the teacher's Solver.Board/occupied-in-place
// mutation style while keeping a Solver instance reusable across calls.
type run struct {
	grid      *board.Grid
	cols      int
	cellCount int

	pool     []candidate.Candidate
	occupied board.OccupancyMask
	current  candidate.Placement

	best         candidate.Placement
	bestCoverage int

	attempts         int
	maxAttempts      int
	progressInterval int

	progress  ProgressFunc
	cancel    CancelFunc
	cancelled bool
}

// backtrack implements this search shape:
//
//	solve(i):
//	  if cancelled: return FAIL_CANCEL
//	  attempts += 1
//	  update best_if_better
//	  every ProgressInterval attempts: invoke progress; if cancel() return FAIL_CANCEL
//	  if occupied covers all R·C cells: return SUCCESS
//	  if attempts > max_attempts: return FAIL_BUDGET
//	  for j in i..|pool|:
//	    if pool[j].path is disjoint from occupied:
//	      push pool[j]; add its cells to occupied
//	      if solve(j+1) == SUCCESS: return SUCCESS
//	      pop; remove cells
//	  return FAIL_EXHAUST
//
// Once cancel has reported true, every later call returns at once, so the
// search unwinds without trying further branches.
func (r *run) backtrack(i int) bool {
	if r.cancelled {
		return false
	}
	r.attempts++
	r.updateBestIfBetter()

	if r.attempts%r.progressInterval == 0 {
		if r.progress != nil {
			r.progress(r.attempts, len(r.current), r.coveragePercent(r.bestCoverage))
		}
		if r.cancel != nil && r.cancel() {
			r.cancelled = true
			return false
		}
	}

	if r.occupied.Count() == r.cellCount {
		return true
	}
	if r.attempts > r.maxAttempts {
		return false
	}

	for j := i; j < len(r.pool); j++ {
		cand := r.pool[j]
		if !r.disjoint(cand) {
			continue
		}

		r.place(cand)
		if r.backtrack(j + 1) {
			return true
		}
		r.unplace(cand)
	}

	return false
}

func (r *run) disjoint(c candidate.Candidate) bool {
	for _, cell := range c.Path {
		if r.occupied.Has(cell.Pos(r.cols)) {
			return false
		}
	}
	return true
}

func (r *run) place(c candidate.Candidate) {
	for _, cell := range c.Path {
		r.occupied.Set(cell.Pos(r.cols))
	}
	r.current = append(r.current, c)
}

func (r *run) unplace(c candidate.Candidate) {
	for _, cell := range c.Path {
		r.occupied.Clear(cell.Pos(r.cols))
	}
	r.current = r.current[:len(r.current)-1]
}

// updateBestIfBetter snapshots current as best only when coverage strictly
// increases — the mechanism behind the monotonic-progress guarantee (S4).
func (r *run) updateBestIfBetter() {
	coverage := r.occupied.Count()
	if coverage > r.bestCoverage {
		r.bestCoverage = coverage
		r.best = r.current.Clone()
	}
}

func (r *run) coveragePercent(coverage int) float64 {
	if r.cellCount == 0 {
		return 0
	}
	return 100 * float64(coverage) / float64(r.cellCount)
}

// prioritize scores and sorts the pool once, ascending (more negative =
// preferred), and leaves it fixed for the duration of the solve.
func prioritize(g *board.Grid, pool []candidate.Candidate) []candidate.Candidate {
	scores := make([]int, len(pool))
	for i, c := range pool {
		scores[i] = priorityScore(g, c)
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] < scores[idx[b]]
	})

	sorted := make([]candidate.Candidate, len(pool))
	for i, j := range idx {
		sorted[i] = pool[j]
	}
	return sorted
}

// priorityScore combines the length score (longer words preferred) and the
// position score (corner/edge cells preferred), per spec §4.3.
func priorityScore(g *board.Grid, c candidate.Candidate) int {
	lengthScore := -len(c.Word) * 1000
	positionScore := 0
	for _, cell := range c.Path {
		switch {
		case g.IsCorner(cell):
			positionScore += 4
		case g.IsEdge(cell):
			positionScore += 2
		default:
			positionScore += 1
		}
	}
	return lengthScore - positionScore
}
