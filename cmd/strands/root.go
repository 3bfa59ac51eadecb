package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "strands",
	Short: "Solve NYT-Strands-style word-tiling puzzles",
	Long: `strands enumerates dictionary words reachable from a grid cell via
simple 8-connected paths, and tiles a grid with a disjoint set of such words.

Examples:
  strands enumerate --grid board.txt --words words.txt --row 0 --col 0
  strands solve --grid board.txt --words words.txt
  strands dict --words words.txt`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
