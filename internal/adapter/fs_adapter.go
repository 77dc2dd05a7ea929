package adapter

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RunDirPrefix prefixes the per-run output directories of a batch.
const RunDirPrefix = "run_"

// OutputFSAdapter abstracts the filesystem operations the workflow performs
// on its output directory so it can be tested without touching the disk.
type OutputFSAdapter interface {
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// ListRunDirs returns the batch run directories directly under root,
	// sorted by name.
	ListRunDirs(root string) ([]string, error)

	// FileInfo returns metadata for path.
	FileInfo(path string) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) string
}

// LocalOutputFSAdapter implements OutputFSAdapter on the local disk.
type LocalOutputFSAdapter struct{}

// NewLocalOutputFSAdapter constructs a LocalOutputFSAdapter.
func NewLocalOutputFSAdapter() *LocalOutputFSAdapter {
	return &LocalOutputFSAdapter{}
}

// MkdirAll implements OutputFSAdapter.
func (a *LocalOutputFSAdapter) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o750)
}

// ListRunDirs implements OutputFSAdapter.
func (a *LocalOutputFSAdapter) ListRunDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var dirs []string

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), RunDirPrefix) {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}

	sort.Strings(dirs)

	return dirs, nil
}

// FileInfo implements OutputFSAdapter.
func (a *LocalOutputFSAdapter) FileInfo(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// JoinPath implements OutputFSAdapter.
func (a *LocalOutputFSAdapter) JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}
