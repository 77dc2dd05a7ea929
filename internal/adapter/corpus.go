package adapter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadCorpus reads a word list with one word per line. Blank lines are
// ignored.
func ReadCorpus(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	var words []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	return words, nil
}
