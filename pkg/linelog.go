// Package pkg provides utilities for mutree.
package pkg

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LineLog is an append-only text log holding one line per item.
type LineLog[T fmt.Stringer] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Close() error
}

type lineLogImpl[T fmt.Stringer] struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	length uint64
}

// Append implements LineLog. Line breaks inside the item are flattened so
// every item stays on one line.
func (l *lineLogImpl[T]) Append(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := strings.ReplaceAll(item.String(), "\n", " ")
	if _, err := l.file.WriteString(line + "\n"); err != nil {
		slog.Error("failed to append line", "path", l.path, "index", l.length, "error", err)
		return fmt.Errorf("failed to append line: %w", err)
	}

	l.length++
	slog.Debug("appended line", "path", l.path, "index", l.length-1)

	return nil
}

// Path implements LineLog.
func (l *lineLogImpl[T]) Path() string {
	return l.path
}

// Close implements LineLog.
func (l *lineLogImpl[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	if err := l.file.Close(); err != nil {
		slog.Error("failed to close line log", "path", l.path, "error", err)
		return err
	}

	l.file = nil
	slog.Debug("closed line log", "path", l.path, "length", l.length)

	return nil
}

// Len implements LineLog.
func (l *lineLogImpl[T]) Len() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.length
}

// NewLineLog creates (or truncates) the log file at path, creating its
// directory when needed.
func NewLineLog[T fmt.Stringer](path string) (LineLog[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create log directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create line log", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create line log: %w", err)
	}

	slog.Debug("created line log", "path", path)

	return &lineLogImpl[T]{
		path: path,
		file: file,
	}, nil
}

// ReadLines returns every line of a log written by LineLog.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", path, "error", err)
		}
	}()

	var lines []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", len(lines), err)
	}

	return lines, nil
}
