package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/dictionary"
	"github.com/thespudmore/NYT-Strands-Solver/internal/enumerator"
	"github.com/thespudmore/NYT-Strands-Solver/internal/session"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	g, err := board.NewGrid([]string{"CA", "TS"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"CATS", "ACTS"})
	return session.New(g, dict)
}

func TestSessionEnumerateAndSolve(t *testing.T) {
	s := newTestSession(t)

	candidates := s.EnumerateFromCell(board.Cell{Row: 0, Col: 0}, enumerator.DefaultOptions())
	assert.NotEmpty(t, candidates)

	placement, err := s.Solve(enumerator.DefaultOptions(), nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, placement, 1)
}

func TestSessionBlacklistExcludesWords(t *testing.T) {
	s := newTestSession(t)
	s.Blacklist("cats")

	candidates := s.EnumerateFromCell(board.Cell{Row: 0, Col: 0}, enumerator.DefaultOptions())
	for _, c := range candidates {
		assert.NotEqual(t, "CATS", c.Word)
	}

	s.ClearBlacklist()
	candidates = s.EnumerateFromCell(board.Cell{Row: 0, Col: 0}, enumerator.DefaultOptions())
	found := false
	for _, c := range candidates {
		if c.Word == "CATS" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSessionCommitConsumesCells(t *testing.T) {
	s := newTestSession(t)

	placement, err := s.Solve(enumerator.DefaultOptions(), nil, nil, nil)
	require.NoError(t, err)
	s.Commit(placement)

	candidates := s.EnumerateFromCell(board.Cell{Row: 0, Col: 0}, enumerator.DefaultOptions())
	assert.Empty(t, candidates, "every cell is committed, so nothing new should enumerate")
}

func TestSessionSolveCoalescesConcurrentCalls(t *testing.T) {
	s := newTestSession(t)

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			placement, err := s.Solve(enumerator.DefaultOptions(), nil, nil, nil)
			if err == nil {
				results[i] = len(placement)
			}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 1, r)
	}
}
