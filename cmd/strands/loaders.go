package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/dictionary"
)

// loadGrid reads one grid row per line from path. Dictionary ingestion and
// grid editing are explicitly out of scope for the core (spec §1); this is
// the thinnest possible file-based stand-in so the CLI can exercise the
// core end to end.
func loadGrid(path string) (*board.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid file: %w", err)
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid file: %w", err)
	}

	return board.NewGrid(rows)
}

// loadWordList reads a newline-delimited raw word list, per spec §6's wire
// format: lowercase words, one per line, normalized by dictionary.Build.
func loadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return lines, nil
}

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	lines, err := loadWordList(path)
	if err != nil {
		return nil, err
	}
	return dictionary.Build(lines), nil
}
