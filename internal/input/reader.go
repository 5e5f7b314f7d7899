// Package input loads raw entry lines from disk. The engine itself never
// touches the filesystem; this collaborator hands it decoded lines.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"randomcheck/domain/core"
)

// DefaultMaxEntries bounds how many lines a single run will accept.
const DefaultMaxEntries = 100000

// ReadLines reads UTF-8 lines from path. Line endings are stripped but blank
// lines are kept; the classifier decides what to skip. Fails when the file is
// missing, exceeds maxEntries lines, or contains no non-blank line at all.
func ReadLines(path string, maxEntries int) ([]string, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrMissingFile, path)
		}
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	nonBlank := false
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(lines) >= maxEntries {
			return nil, fmt.Errorf("%w: %s has more than %d entries", core.ErrInputTooLarge, path, maxEntries)
		}
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			nonBlank = true
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}
	if !nonBlank {
		return nil, fmt.Errorf("%w: %s", core.ErrEmptyDataset, path)
	}
	return lines, nil
}
