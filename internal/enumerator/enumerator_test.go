package enumerator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/dictionary"
	"github.com/thespudmore/NYT-Strands-Solver/internal/enumerator"
)

func cell(r, c int) board.Cell { return board.Cell{Row: r, Col: c} }

// Seed test 1: prefix pruning — CAT is too short to be a dictionary word,
// so only CATS survives.
func TestEnumerateFromPrefixPruning(t *testing.T) {
	g, err := board.NewGrid([]string{"CA", "TS"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"CAT", "CATS", "DOG", "DOGS"})

	got := enumerator.EnumerateFrom(g, dict, cell(0, 0), board.NewOccupancyMask(g.CellCount()), dictionary.NewBlacklist(), enumerator.DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, "CATS", got[0].Word)
	assert.Equal(t, []board.Cell{cell(0, 0), cell(0, 1), cell(1, 0), cell(1, 1)}, got[0].Path)
}

// Seed test 2: longest-path tie-break — only one path of length 4 exists
// because revisiting cell (0,0) is forbidden.
func TestEnumerateFromNoRevisits(t *testing.T) {
	g, err := board.NewGrid([]string{"ABABAB"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"ABAB"})

	got := enumerator.EnumerateFrom(g, dict, cell(0, 0), board.NewOccupancyMask(g.CellCount()), dictionary.NewBlacklist(), enumerator.DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, "ABAB", got[0].Word)
	assert.Equal(t, []board.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(0, 3)}, got[0].Path)
}

// Seed test 3: disjointness from occupied.
func TestEnumerateFromRespectsOccupied(t *testing.T) {
	g, err := board.NewGrid([]string{"ABCDE"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"ABCD", "BCDE"})

	occ := board.NewOccupancyMask(g.CellCount())
	occ.Set(cell(0, 0).Pos(g.Cols()))

	got := enumerator.EnumerateFrom(g, dict, cell(0, 1), occ, dictionary.NewBlacklist(), enumerator.DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, "BCDE", got[0].Word)
}

func TestEnumerateFromOutOfBoundsStart(t *testing.T) {
	g, err := board.NewGrid([]string{"AB"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"AB"})

	got := enumerator.EnumerateFrom(g, dict, cell(5, 5), board.NewOccupancyMask(g.CellCount()), dictionary.NewBlacklist(), enumerator.DefaultOptions())
	assert.Empty(t, got)
}

func TestEnumerateFromStartAlreadyOccupied(t *testing.T) {
	g, err := board.NewGrid([]string{"AB"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"AB"})

	occ := board.NewOccupancyMask(g.CellCount())
	occ.Set(cell(0, 0).Pos(g.Cols()))

	got := enumerator.EnumerateFrom(g, dict, cell(0, 0), occ, dictionary.NewBlacklist(), enumerator.DefaultOptions())
	assert.Empty(t, got)
}

func TestEnumerateFromDedupesWordsAcrossMultiplePaths(t *testing.T) {
	// ABAB is reachable from (0,0) via more than one distinct path; since
	// path length always equals word length, every candidate path is the
	// same length and only the first one the DFS encounters is kept.
	g, err := board.NewGrid([]string{
		"ABA",
		"BAB",
		"ABA",
	})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"ABAB"})

	got := enumerator.EnumerateFrom(g, dict, cell(0, 0), board.NewOccupancyMask(g.CellCount()), dictionary.NewBlacklist(), enumerator.DefaultOptions())

	require.Len(t, got, 1)
	assert.Equal(t, "ABAB", got[0].Word)
	assert.Len(t, got[0].Path, 4)
	// Exactly one candidate kept per word, regardless of how many distinct
	// paths spell it.
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1].Word, got[i].Word)
	}
}

func TestEnumerateFromSortedByLengthDescending(t *testing.T) {
	g, err := board.NewGrid([]string{
		"CATS",
		"OARE",
	})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"CATS", "CARE", "CAT", "CARS"})

	got := enumerator.EnumerateFrom(g, dict, cell(0, 0), board.NewOccupancyMask(g.CellCount()), dictionary.NewBlacklist(), enumerator.DefaultOptions())

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, len(got[i-1].Word), len(got[i].Word))
	}
}

func TestEnumerateFromBlacklist(t *testing.T) {
	g, err := board.NewGrid([]string{"CA", "TS"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"CATS"})
	bl := dictionary.NewBlacklist()
	bl.Add("cats")

	got := enumerator.EnumerateFrom(g, dict, cell(0, 0), board.NewOccupancyMask(g.CellCount()), bl, enumerator.DefaultOptions())
	assert.Empty(t, got)
}

func TestEnumerateFromMinGreaterThanMaxIsEmpty(t *testing.T) {
	g, err := board.NewGrid([]string{"CA", "TS"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"CATS"})

	got := enumerator.EnumerateFrom(g, dict, cell(0, 0), board.NewOccupancyMask(g.CellCount()), dictionary.NewBlacklist(), enumerator.Options{MinLen: 10, MaxLen: 4})
	assert.Empty(t, got)
}

func TestCollectOverGridRowMajorOrder(t *testing.T) {
	g, err := board.NewGrid([]string{"CA", "TS"})
	require.NoError(t, err)
	dict := dictionary.Build([]string{"CATS", "ACTS"})

	got := enumerator.CollectOverGrid(g, dict, board.NewOccupancyMask(g.CellCount()), dictionary.NewBlacklist(), enumerator.DefaultOptions())
	assert.NotEmpty(t, got)
	// CATS starts at (0,0) and ACTS at (0,1): row-major start order.
	require.Len(t, got, 2)
	assert.Equal(t, "CATS", got[0].Word)
	assert.Equal(t, cell(0, 0), got[0].Path[0])
	assert.Equal(t, "ACTS", got[1].Word)
	assert.Equal(t, cell(0, 1), got[1].Path[0])
}
