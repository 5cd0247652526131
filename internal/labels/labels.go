// Package labels loads the label set from a plain text file.
package labels

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyLabelSet indicates the labels file yielded no usable labels.
var ErrEmptyLabelSet = errors.New("labels file contains no labels")

// Load reads a UTF-8 text file with one label per line and returns the
// ordered label set. Lines are trimmed of surrounding whitespace; empty
// lines are dropped. Duplicate labels collapse to a single entry, with the
// first occurrence deciding its position in the order.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open labels file: %w", err)
	}
	defer file.Close()

	var result []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		label := strings.TrimSpace(scanner.Text())
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		result = append(result, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read labels file: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyLabelSet)
	}
	return result, nil
}
