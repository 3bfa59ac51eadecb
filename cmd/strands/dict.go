package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	dictWordsPath string
	dictContains  string
)

func init() {
	dictCmd := &cobra.Command{
		Use:   "dict",
		Short: "Report basic statistics about a word list",
		RunE:  runDict,
	}

	dictCmd.Flags().StringVarP(&dictWordsPath, "words", "w", "", "path to a newline-delimited word list (required)")
	dictCmd.Flags().StringVar(&dictContains, "contains", "", "report whether this word is in the dictionary after normalization")
	_ = dictCmd.MarkFlagRequired("words")

	rootCmd.AddCommand(dictCmd)
}

func runDict(cmd *cobra.Command, args []string) error {
	raw, err := loadWordList(dictWordsPath)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(dictWordsPath)
	if err != nil {
		return err
	}

	byLength := make(map[int]int)
	rejected := 0
	for _, line := range raw {
		w := strings.ToUpper(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		if !dict.Contains(w) {
			rejected++
			continue
		}
		byLength[len(w)]++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d words loaded, %d lines rejected (too short or non-letter)\n", dict.Len(), rejected)
	for length := minLengthKey(byLength); length <= maxLengthKey(byLength); length++ {
		if count := byLength[length]; count > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  length %2d: %d\n", length, count)
		}
	}

	if dictContains != "" {
		normalized := strings.ToUpper(strings.TrimSpace(dictContains))
		fmt.Fprintf(cmd.OutOrStdout(), "%q in dictionary: %v\n", normalized, dict.Contains(normalized))
	}
	return nil
}

func minLengthKey(byLength map[int]int) int {
	min := -1
	for l := range byLength {
		if min == -1 || l < min {
			min = l
		}
	}
	if min == -1 {
		return 0
	}
	return min
}

func maxLengthKey(byLength map[int]int) int {
	max := 0
	for l := range byLength {
		if l > max {
			max = l
		}
	}
	return max
}
