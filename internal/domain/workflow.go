package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mutree.dev/pkg/mutree/internal/adapter"
	"mutree.dev/pkg/mutree/internal/controller"
	m "mutree.dev/pkg/mutree/internal/model"
)

// RunArgs configures one simulation or a batch of independent simulations.
type RunArgs struct {
	Seeds          []string
	Corpus         string // word list sampled when Seeds is empty
	Generations    int
	SampleFraction float64
	NodeCap        int
	RandomSeed     uint64 // 0 picks a time-based seed
	Output         string
	Runs           int
	Parallel       int
	Formats        []string
	// Isolate writes results under <Output>/<run id> instead of Output.
	Isolate bool
}

// RunResult is the outcome of one simulation.
type RunResult struct {
	ID         string
	Dir        string
	RandomSeed uint64
	Seeds      []string
	Graph      *m.MutationGraph
	Growth     GrowResult
	Files      []string
}

// Summary converts the result for display.
func (r RunResult) Summary() controller.RunSummary {
	return controller.RunSummary{
		ID:          r.ID,
		Dir:         r.Dir,
		RandomSeed:  r.RandomSeed,
		Graph:       r.Graph,
		Generations: len(r.Growth.Generations),
		Mutations:   len(r.Growth.History),
		CapReached:  r.Growth.CapReached,
		Files:       r.Files,
	}
}

// TagArgs lists the words to tag.
type TagArgs struct {
	Words []string
}

// ViewArgs points at a run's output directory.
type ViewArgs struct {
	Dir string
}

// MergeArgs points at a batch output directory.
type MergeArgs struct {
	Root    string
	Formats []string
}

// Workflow ties the engine, the adapters and the UI together.
type Workflow interface {
	// Run simulates and reports progress through the UI.
	Run(ctx context.Context, args RunArgs) error
	// Simulate runs without any UI output and returns the results.
	Simulate(ctx context.Context, args RunArgs) ([]RunResult, error)
	Tag(ctx context.Context, args TagArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	tagger    adapter.Tagger
	fs        adapter.OutputFSAdapter
	histories adapter.HistoryStore
	graphs    adapter.GraphStore
	ui        controller.UI
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(
	tagger adapter.Tagger,
	fs adapter.OutputFSAdapter,
	histories adapter.HistoryStore,
	graphs adapter.GraphStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		tagger:    tagger,
		fs:        fs,
		histories: histories,
		graphs:    graphs,
		ui:        ui,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	mode := controller.WithRunMode()
	if args.Runs > 1 {
		mode = controller.WithBatchMode()
	}

	if err := w.ui.Start(ctx, mode); err != nil {
		return err
	}

	results, err := w.simulate(ctx, args, true)
	if err != nil {
		slog.Error("run failed", "error", err)
	} else if len(results) > 1 {
		summaries := make([]controller.RunSummary, 0, len(results))
		for _, r := range results {
			summaries = append(summaries, r.Summary())
		}

		w.ui.DisplayBatchSummary(ctx, summaries)
	}

	w.ui.Close(ctx)
	w.ui.Wait(ctx)

	return err
}

func (w *workflow) Simulate(ctx context.Context, args RunArgs) ([]RunResult, error) {
	return w.simulate(ctx, args, false)
}

type runSpec struct {
	id     string
	dir    string
	seed   uint64
	seeds  []string
	grow   GrowArgs
	format []string
}

func (w *workflow) simulate(ctx context.Context, args RunArgs, display bool) ([]RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args = withRunDefaults(args)

	grow := GrowArgs{
		Generations:    args.Generations,
		SampleFraction: args.SampleFraction,
		NodeCap:        args.NodeCap,
	}
	if err := validateGrowArgs(grow); err != nil {
		return nil, err
	}

	if err := adapter.ValidateFormats(args.Formats); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	baseSeed := args.RandomSeed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	seeds, err := w.resolveSeeds(args, baseSeed)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()

	root := args.Output
	if args.Isolate {
		root = w.fs.JoinPath(args.Output, batchID)
	}

	slog.Info("simulation starting", "id", batchID, "seeds", seeds, "runs", args.Runs, "random_seed", baseSeed, "output", root)

	if args.Runs == 1 {
		result, err := w.runOne(ctx, runSpec{
			id:     batchID,
			dir:    root,
			seed:   baseSeed,
			seeds:  seeds,
			grow:   grow,
			format: args.Formats,
		}, display)
		if err != nil {
			return nil, err
		}

		return []RunResult{result}, nil
	}

	results := make([]RunResult, args.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(args.Parallel)

	for i := range args.Runs {
		spec := runSpec{
			id:     uuid.NewString(),
			dir:    w.fs.JoinPath(root, fmt.Sprintf("%s%03d", adapter.RunDirPrefix, i)),
			seed:   baseSeed + uint64(i),
			seeds:  seeds,
			grow:   grow,
			format: args.Formats,
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := w.runOne(gctx, spec, false)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func withRunDefaults(args RunArgs) RunArgs {
	if args.Runs <= 0 {
		args.Runs = 1
	}

	if args.Parallel <= 0 {
		args.Parallel = 1
	}

	if len(args.Formats) == 0 {
		args.Formats = []string{adapter.FormatGraphML}
	}

	return args
}

// resolveSeeds prepares the given seeds, or samples them from the corpus
// when none are given.
func (w *workflow) resolveSeeds(args RunArgs, baseSeed uint64) ([]string, error) {
	words := args.Seeds

	if len(words) == 0 && args.Corpus != "" {
		corpus, err := adapter.ReadCorpus(args.Corpus)
		if err != nil {
			return nil, err
		}

		words, err = SampleCorpus(newRand(baseSeed), corpus)
		if err != nil {
			return nil, err
		}

		slog.Info("seeds sampled from corpus", "corpus", args.Corpus, "seeds", words)
	}

	return PrepareSeeds(words)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (w *workflow) runOne(ctx context.Context, spec runSpec, display bool) (RunResult, error) {
	if err := w.fs.MkdirAll(spec.dir); err != nil {
		return RunResult{}, fmt.Errorf("create output directory %s: %w", spec.dir, err)
	}

	graph := m.NewMutationGraph()
	for _, seed := range spec.seeds {
		category, _ := w.tagger.Tag(seed)
		graph.AddSeed(seed, category)
	}

	history, err := w.histories.CreateHistory(spec.dir)
	if err != nil {
		return RunResult{}, err
	}

	defer func() {
		if err := history.Close(); err != nil {
			slog.Error("failed to close history", "dir", spec.dir, "error", err)
		}
	}()

	if display {
		w.ui.DisplayRunInfo(ctx, controller.RunInfo{
			ID:             spec.id,
			Dir:            spec.dir,
			Seeds:          spec.seeds,
			RandomSeed:     spec.seed,
			Generations:    spec.grow.Generations,
			SampleFraction: spec.grow.SampleFraction,
			NodeCap:        spec.grow.NodeCap,
		})
	}

	grow := spec.grow
	grow.OnMutation = func(entry m.HistoryEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := history.Append(entry); err != nil {
			return err
		}

		if display {
			w.ui.DisplayMutation(ctx, entry)
		}

		return nil
	}

	rng := newRand(spec.seed)

	growth, err := NewGrower(NewMutator(w.tagger, rng), rng).Grow(graph, grow)
	if err != nil {
		return RunResult{}, err
	}

	files, err := w.graphs.SaveGraph(spec.dir, graph, spec.format...)
	if err != nil {
		return RunResult{}, err
	}

	result := RunResult{
		ID:         spec.id,
		Dir:        spec.dir,
		RandomSeed: spec.seed,
		Seeds:      spec.seeds,
		Graph:      graph,
		Growth:     growth,
		Files:      append([]string{history.Path()}, files...),
	}

	slog.Info("simulation finished",
		"id", spec.id,
		"dir", spec.dir,
		"generations", len(growth.Generations),
		"mutations", len(growth.History),
		"history_lines", history.Len(),
		"nodes", graph.NodeCount(),
		"edges", graph.EdgeCount(),
		"cap_reached", growth.CapReached)

	if display {
		w.ui.DisplayRunSummary(ctx, result.Summary())
	}

	return result, nil
}

func (w *workflow) Tag(ctx context.Context, args TagArgs) error {
	if len(args.Words) == 0 {
		return fmt.Errorf("%w: no words to tag", ErrInputInvalid)
	}

	tagged := make([]controller.TaggedWord, 0, len(args.Words))

	for _, word := range args.Words {
		clean := m.StripMarker(word)
		category, gender := w.tagger.Tag(clean)
		tagged = append(tagged, controller.TaggedWord{
			Word:     clean,
			Category: category,
			Gender:   gender,
		})
	}

	return w.ui.DisplayTags(ctx, tagged)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	graph, err := w.graphs.LoadGraph(args.Dir)
	if err != nil {
		return err
	}

	history, err := w.histories.LoadHistory(args.Dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		slog.Warn("no mutation history next to graph", "dir", args.Dir)
	}

	return w.ui.DisplayGraph(ctx, graph, history)
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dirs, err := w.fs.ListRunDirs(args.Root)
	if err != nil {
		return fmt.Errorf("list runs in %s: %w", args.Root, err)
	}

	if len(dirs) == 0 {
		return fmt.Errorf("%w in %s", ErrNoRuns, args.Root)
	}

	graphs := make([]*m.MutationGraph, 0, len(dirs))

	for _, dir := range dirs {
		graph, err := w.graphs.LoadGraph(dir)
		if err != nil {
			return err
		}

		graphs = append(graphs, graph)
	}

	merged := MergeGraphs(graphs...)

	formats := args.Formats
	if len(formats) == 0 {
		formats = []string{adapter.FormatGraphML}
	}

	files, err := w.graphs.SaveGraph(args.Root, merged, formats...)
	if err != nil {
		return err
	}

	slog.Info("runs merged", "root", args.Root, "runs", len(dirs), "nodes", merged.NodeCount(), "edges", merged.EdgeCount())

	w.ui.DisplayRunSummary(ctx, controller.RunSummary{
		ID:    "merged",
		Dir:   args.Root,
		Graph: merged,
		Files: files,
	})

	return nil
}
