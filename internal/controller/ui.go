// Package controller provides output adapters for displaying mutation runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "mutree.dev/pkg/mutree/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeBatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to follow a single run mutation by mutation.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithBatchMode sets the UI to report finished runs of a batch.
func WithBatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// RunInfo describes a run before it starts.
type RunInfo struct {
	ID             string
	Dir            string
	Seeds          []string
	RandomSeed     uint64
	Generations    int
	SampleFraction float64
	NodeCap        int
}

// RunSummary describes a finished run.
type RunSummary struct {
	ID          string
	Dir         string
	RandomSeed  uint64
	Graph       *m.MutationGraph
	Generations int
	Mutations   int
	CapReached  bool
	Files       []string
}

// MaxDepth returns the largest shortest-path distance from a seed to any
// reachable node.
func (s RunSummary) MaxDepth() int {
	if s.Graph == nil {
		return 0
	}

	deepest := 0
	for _, d := range s.Graph.Depths() {
		deepest = max(deepest, d)
	}

	return deepest
}

// TaggedWord is a word with the tags the tagger assigned to it.
type TaggedWord struct {
	Word     string
	Category m.Category
	Gender   m.Gender
}

// UI defines the interface for displaying runs, graphs and tags.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayMutation(ctx context.Context, entry m.HistoryEntry)
	DisplayRunSummary(ctx context.Context, summary RunSummary)
	DisplayBatchSummary(ctx context.Context, summaries []RunSummary)
	DisplayGraph(ctx context.Context, graph *m.MutationGraph, history []string) error
	DisplayTags(ctx context.Context, words []TaggedWord) error
}

// NewUI returns the TUI when output goes to a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
