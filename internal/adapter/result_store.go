package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "mutree.dev/pkg/mutree/internal/model"
	"mutree.dev/pkg/mutree/pkg"
)

// File names inside a run's output directory.
const (
	HistoryFileName = "mutation_history.txt"
	GraphFileBase   = "mutation_graph"
)

// Export formats.
const (
	FormatGraphML = "graphml"
	FormatDOT     = "dot"
)

// ErrUnsupportedFormat is returned for an unknown export format.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ValidateFormats reports the first format SaveGraph cannot write.
func ValidateFormats(formats []string) error {
	for _, format := range formats {
		switch format {
		case FormatGraphML, FormatDOT:
		default:
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		}
	}

	return nil
}

// HistoryLog is the append-only mutation history of one run.
type HistoryLog = pkg.LineLog[m.HistoryEntry]

// HistoryStore creates and reads mutation history logs.
type HistoryStore interface {
	CreateHistory(dir string) (HistoryLog, error)
	LoadHistory(dir string) ([]string, error)
}

// GraphStore persists mutation graphs.
type GraphStore interface {
	// SaveGraph writes graph to dir in each format and returns the written
	// file paths.
	SaveGraph(dir string, graph *m.MutationGraph, formats ...string) ([]string, error)
	// LoadGraph reads the GraphML export from dir.
	LoadGraph(dir string) (*m.MutationGraph, error)
}

// LocalResultStore keeps histories and graphs on the local filesystem.
type LocalResultStore struct{}

// NewLocalResultStore creates a LocalResultStore.
func NewLocalResultStore() *LocalResultStore {
	return &LocalResultStore{}
}

// CreateHistory implements HistoryStore.
func (s *LocalResultStore) CreateHistory(dir string) (HistoryLog, error) {
	return pkg.NewLineLog[m.HistoryEntry](filepath.Join(dir, HistoryFileName))
}

// LoadHistory implements HistoryStore.
func (s *LocalResultStore) LoadHistory(dir string) ([]string, error) {
	return pkg.ReadLines(filepath.Join(dir, HistoryFileName))
}

// GraphFileName returns the file name used for a format.
func GraphFileName(format string) string {
	return GraphFileBase + "." + format
}

// SaveGraph implements GraphStore.
func (s *LocalResultStore) SaveGraph(dir string, graph *m.MutationGraph, formats ...string) ([]string, error) {
	if len(formats) == 0 {
		formats = []string{FormatGraphML}
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	written := make([]string, 0, len(formats))

	for _, format := range formats {
		var (
			data []byte
			err  error
		)

		switch format {
		case FormatGraphML:
			data, err = EncodeGraphML(graph)
		case FormatDOT:
			data = EncodeDOT(graph)
		default:
			return written, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		}

		if err != nil {
			return written, fmt.Errorf("encode %s: %w", format, err)
		}

		path := filepath.Join(dir, GraphFileName(format))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}

		slog.Debug("graph exported", "path", path, "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

		written = append(written, path)
	}

	return written, nil
}

// LoadGraph implements GraphStore.
func (s *LocalResultStore) LoadGraph(dir string) (*m.MutationGraph, error) {
	path := filepath.Join(dir, GraphFileName(FormatGraphML))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	graph, err := DecodeGraphML(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return graph, nil
}
