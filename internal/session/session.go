// Package session wires the Dictionary, Grid, Blacklist and Placement
// lifecycles (spec §3) into a single handle the CLI and the optional HTTP
// surface can share, adding the structured logging and solve-coalescing the
// bare algorithmic core intentionally leaves out.
package session

import (
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/candidate"
	"github.com/thespudmore/NYT-Strands-Solver/internal/dictionary"
	"github.com/thespudmore/NYT-Strands-Solver/internal/enumerator"
	"github.com/thespudmore/NYT-Strands-Solver/internal/tiling"
)

// Session owns the mutable state around one puzzle-solving session: the
// Grid (replaced wholesale on edit), the Dictionary (rebuilt only on
// explicit reload), the Blacklist (grows monotonically, clearable), and the
// committed Placement built up across solves.
type Session struct {
	log *logrus.Logger

	mu        sync.RWMutex
	grid      *board.Grid
	dict      *dictionary.Dictionary
	blacklist *dictionary.Blacklist
	committed candidate.Placement

	// solveGroup coalesces concurrent Solve calls into one in-flight
	// computation: spec §5 says callers MUST NOT start a second solve while
	// one is in flight, and singleflight makes that a hard guarantee
	// instead of a convention the embedder has to enforce by disabling UI.
	solveGroup singleflight.Group
}

// New creates a Session for the given grid and dictionary.
func New(g *board.Grid, dict *dictionary.Dictionary) *Session {
	log := logrus.New()
	if dict != nil && dict.Len() == 0 {
		log.WithError(dictionary.ErrEmptyDictionary).Warn("session: new session")
	}
	return &Session{
		log:       log,
		grid:      g,
		dict:      dict,
		blacklist: dictionary.NewBlacklist(),
	}
}

// Logger exposes the session's logger so callers (e.g. the CLI) can share
// its configuration.
func (s *Session) Logger() *logrus.Logger { return s.log }

// ReplaceGrid swaps the grid wholesale; the dictionary trie is unaffected.
func (s *Session) ReplaceGrid(g *board.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g
	s.committed = nil
}

// ReloadDictionary rebuilds the dictionary from raw lines.
func (s *Session) ReloadDictionary(rawLines []string) {
	dict := dictionary.Build(rawLines)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dict = dict
	if dict.Len() == 0 {
		s.log.WithError(dictionary.ErrEmptyDictionary).Warn("session: reloaded dictionary")
	}
}

// Blacklist adds a word to the session blacklist.
func (s *Session) Blacklist(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blacklist.Add(word)
}

// ClearBlacklist empties the blacklist.
func (s *Session) ClearBlacklist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blacklist.Clear()
}

// Committed returns a snapshot of the committed placement.
func (s *Session) Committed() candidate.Placement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed.Clone()
}

// Commit appends a placement as locked-in, consuming the committed cells
// for every future enumeration and solve call on this session.
func (s *Session) Commit(p candidate.Placement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = append(s.committed, p...)
}

// EnumerateFromCell runs the Word Enumerator from a single cell against the
// session's current grid, dictionary, committed placement and blacklist.
func (s *Session) EnumerateFromCell(start board.Cell, opts enumerator.Options) []candidate.Candidate {
	s.mu.RLock()
	g, dict, bl, committed := s.grid, s.dict, s.blacklist, s.committed
	s.mu.RUnlock()

	occupied := committed.Occupancy(g.CellCount(), g.Cols())
	if !g.InBounds(start) || occupied.Has(start.Pos(g.Cols())) {
		s.log.WithError(enumerator.ErrOutOfBounds).WithField("start", start).Debug("session: enumerate from cell")
		return nil
	}

	result := enumerator.EnumerateFrom(g, dict, start, occupied, bl, opts)

	s.log.WithFields(logrus.Fields{
		"start":     start,
		"found":     len(result),
		"committed": len(committed),
	}).Debug("session: enumerate from cell")

	return result
}

// CollectCandidates runs the Word Enumerator over every in-bounds cell.
func (s *Session) CollectCandidates(opts enumerator.Options) []candidate.Candidate {
	s.mu.RLock()
	g, dict, bl, committed := s.grid, s.dict, s.blacklist, s.committed
	s.mu.RUnlock()

	occupied := committed.Occupancy(g.CellCount(), g.Cols())
	pool := enumerator.CollectOverGrid(g, dict, occupied, bl, opts)

	s.log.WithFields(logrus.Fields{
		"pool_size": len(pool),
		"committed": len(committed),
	}).Debug("session: collected candidate pool")

	return pool
}

// Solve runs the Tiling Solver over a freshly collected candidate pool on
// top of the committed placement. Concurrent Solve calls on the same
// Session are coalesced via singleflight: only one backtracking search runs
// at a time, and every caller waiting on it receives the same result.
func (s *Session) Solve(
	enumOpts enumerator.Options,
	tilingOpts *tiling.Options,
	progress tiling.ProgressFunc,
	cancel tiling.CancelFunc,
) (candidate.Placement, error) {
	v, err, shared := s.solveGroup.Do("solve", func() (interface{}, error) {
		s.mu.RLock()
		g, committed := s.grid, s.committed
		s.mu.RUnlock()

		pool := s.CollectCandidates(enumOpts)
		solver := tiling.New(g, tilingOpts)

		s.log.WithFields(logrus.Fields{
			"pool_size": len(pool),
			"committed": len(committed),
		}).Info("session: solve starting")

		placement, err := solver.Solve(pool, committed, progress, cancel)
		if err != nil {
			s.log.WithError(err).Warn("session: solve finished without a placement")
			return candidate.Placement(nil), err
		}

		s.log.WithFields(logrus.Fields{
			"placed":   len(placement),
			"coverage": placement.Occupancy(g.CellCount(), g.Cols()).Count(),
		}).Info("session: solve finished")
		return placement, nil
	})

	if shared {
		s.log.Debug("session: solve result shared with a concurrent caller")
	}
	if err != nil {
		return nil, err
	}
	return v.(candidate.Placement), nil
}
