package catalog

import (
	"bufio"
	"fmt"
	"os"
)

// ReadLines reads the file at path and returns its lines without trailing
// newlines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return lines, nil
}

// WriteLines writes lines to path, one per line. An existing file is
// overwritten only when clobber is true.
func WriteLines(path string, lines []string, clobber bool) error {
	if !clobber {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("catalog: %s: %w", path, os.ErrExist)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("catalog: write %s: %w", path, err)
		}
	}
	return w.Flush()
}
