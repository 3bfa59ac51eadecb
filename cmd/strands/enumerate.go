package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/enumerator"
	"github.com/thespudmore/NYT-Strands-Solver/internal/session"
)

var (
	enumGridPath  string
	enumWordsPath string
	enumRow       int
	enumCol       int
	enumMinLen    int
	enumMaxLen    int
)

func init() {
	enumerateCmd := &cobra.Command{
		Use:   "enumerate",
		Short: "List every dictionary word reachable from one grid cell",
		RunE:  runEnumerate,
	}

	enumerateCmd.Flags().StringVarP(&enumGridPath, "grid", "g", "", "path to a grid file, one row per line (required)")
	enumerateCmd.Flags().StringVarP(&enumWordsPath, "words", "w", "", "path to a newline-delimited word list (required)")
	enumerateCmd.Flags().IntVar(&enumRow, "row", 0, "start row")
	enumerateCmd.Flags().IntVar(&enumCol, "col", 0, "start col")
	enumerateCmd.Flags().IntVar(&enumMinLen, "min-len", enumerator.DefaultMinLen, "minimum word length")
	enumerateCmd.Flags().IntVar(&enumMaxLen, "max-len", enumerator.DefaultMaxLen, "maximum path length")
	_ = enumerateCmd.MarkFlagRequired("grid")
	_ = enumerateCmd.MarkFlagRequired("words")

	rootCmd.AddCommand(enumerateCmd)
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(enumGridPath)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(enumWordsPath)
	if err != nil {
		return err
	}

	sess := session.New(g, dict)
	sess.Logger().SetOutput(cmd.OutOrStderr())

	start := board.Cell{Row: enumRow, Col: enumCol}
	opts := enumerator.Options{MinLen: enumMinLen, MaxLen: enumMaxLen}

	log.WithFields(logrus.Fields{"start": start, "min_len": opts.MinLen, "max_len": opts.MaxLen}).Info("enumerating")

	candidates := sess.EnumerateFromCell(start, opts)
	for _, c := range candidates {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", c.Word, c.Path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d candidates\n", len(candidates))
	return nil
}
