package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thespudmore/NYT-Strands-Solver/internal/enumerator"
	"github.com/thespudmore/NYT-Strands-Solver/internal/session"
	"github.com/thespudmore/NYT-Strands-Solver/internal/tiling"
)

var (
	solveGridPath    string
	solveWordsPath   string
	solveMaxAttempts int
	solveMinLen      int
	solveMaxLen      int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Tile a grid with a disjoint set of dictionary words",
		RunE:  runSolve,
	}

	solveCmd.Flags().StringVarP(&solveGridPath, "grid", "g", "", "path to a grid file, one row per line (required)")
	solveCmd.Flags().StringVarP(&solveWordsPath, "words", "w", "", "path to a newline-delimited word list (required)")
	solveCmd.Flags().IntVar(&solveMaxAttempts, "max-attempts", tiling.DefaultMaxAttempts, "backtracking attempt budget")
	solveCmd.Flags().IntVar(&solveMinLen, "min-len", enumerator.DefaultMinLen, "minimum word length")
	solveCmd.Flags().IntVar(&solveMaxLen, "max-len", enumerator.DefaultMaxLen, "maximum path length")
	_ = solveCmd.MarkFlagRequired("grid")
	_ = solveCmd.MarkFlagRequired("words")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(solveGridPath)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(solveWordsPath)
	if err != nil {
		return err
	}

	sess := session.New(g, dict)
	sess.Logger().SetOutput(cmd.OutOrStderr())

	enumOpts := enumerator.Options{MinLen: solveMinLen, MaxLen: solveMaxLen}
	tilingOpts := &tiling.Options{MaxAttempts: solveMaxAttempts, ProgressInterval: tiling.DefaultProgressInterval}

	start := time.Now()
	progress := func(attempts, placed int, coveragePercent float64) {
		log.WithFields(logrus.Fields{
			"attempts": attempts,
			"placed":   placed,
			"coverage": fmt.Sprintf("%.1f%%", coveragePercent),
		}).Debug("solve progress")
	}

	placement, err := sess.Solve(enumOpts, tilingOpts, progress, nil)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No solution found.")
		return nil
	}

	log.WithField("elapsed", time.Since(start)).Info("solve finished")
	for _, c := range placement {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", c.Word, c.Path)
	}
	covered := placement.Occupancy(g.CellCount(), g.Cols()).Count()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d cells covered\n", covered, g.CellCount())
	return nil
}
