package domain

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	m "mutree.dev/pkg/mutree/internal/model"
)

// GrowArgs holds the parameters of one growth run.
type GrowArgs struct {
	Generations    int
	SampleFraction float64
	NodeCap        int
	// OnMutation is called after every recorded mutation. An error stops
	// the run.
	OnMutation func(entry m.HistoryEntry) error
}

// Generation describes one executed growth step.
type Generation struct {
	Index   int
	Sampled []string
	Entries []m.HistoryEntry
}

// GrowResult is the outcome of a growth run.
type GrowResult struct {
	History     []m.HistoryEntry
	Generations []Generation
	CapReached  bool
}

// Grower evolves a mutation graph over generations.
type Grower interface {
	Grow(graph *m.MutationGraph, args GrowArgs) (GrowResult, error)
}

type grower struct {
	Mutator
	rng *rand.Rand
}

// NewGrower creates a Grower that samples nodes with rng and mutates them
// with mutator.
func NewGrower(mutator Mutator, rng *rand.Rand) Grower {
	return &grower{
		Mutator: mutator,
		rng:     rng,
	}
}

func validateGrowArgs(args GrowArgs) error {
	if args.Generations <= 0 {
		return fmt.Errorf("%w: generations must be positive, got %d", ErrInvalidConfig, args.Generations)
	}

	if args.SampleFraction <= 0 || args.SampleFraction > 1 || math.IsNaN(args.SampleFraction) {
		return fmt.Errorf("%w: sample fraction must be in (0, 1], got %v", ErrInvalidConfig, args.SampleFraction)
	}

	if args.NodeCap <= 0 {
		return fmt.Errorf("%w: node cap must be positive, got %d", ErrInvalidConfig, args.NodeCap)
	}

	return nil
}

// Grow runs at most args.Generations steps. Each step samples nodes that
// existed when it started, mutates each of them once and records the
// produced word and the edge leading to it. Growth stops early when the
// graph is empty or holds args.NodeCap nodes.
func (g *grower) Grow(graph *m.MutationGraph, args GrowArgs) (GrowResult, error) {
	if err := validateGrowArgs(args); err != nil {
		return GrowResult{}, err
	}

	var result GrowResult

	for index := range args.Generations {
		count := graph.NodeCount()
		if count == 0 {
			slog.Info("graph is empty, growth stopped", "generation", index)
			break
		}

		if count >= args.NodeCap {
			slog.Info("node cap reached, growth stopped", "generation", index, "nodes", count, "cap", args.NodeCap)
			result.CapReached = true

			break
		}

		generation, capped, err := g.step(graph, index, args)
		result.Generations = append(result.Generations, generation)
		result.History = append(result.History, generation.Entries...)

		if err != nil {
			return result, err
		}

		if capped {
			slog.Info("node cap reached mid-generation, growth stopped", "generation", index, "cap", args.NodeCap)
			result.CapReached = true

			break
		}
	}

	return result, nil
}

// step runs one generation. It reports whether the node cap was hit.
func (g *grower) step(graph *m.MutationGraph, index int, args GrowArgs) (Generation, bool, error) {
	nodes := graph.Nodes()
	sampled := sampleWords(g.rng, nodes, SampleSize(len(nodes), args.SampleFraction))
	generation := Generation{Index: index, Sampled: sampled}

	slog.Debug("generation started", "generation", index, "nodes", len(nodes), "sampled", len(sampled))

	for _, word := range sampled {
		if graph.NodeCount() >= args.NodeCap {
			return generation, true, nil
		}

		entry, ok := g.mutateNode(graph, index, word)
		if !ok {
			continue
		}

		generation.Entries = append(generation.Entries, entry)

		if args.OnMutation != nil {
			if err := args.OnMutation(entry); err != nil {
				return generation, false, fmt.Errorf("record mutation of %q: %w", word, err)
			}
		}
	}

	return generation, false, nil
}

// mutateNode mutates word and records the result in graph. It returns false
// when the node is skipped for this generation.
func (g *grower) mutateNode(graph *m.MutationGraph, index int, word string) (m.HistoryEntry, bool) {
	record, err := g.Mutate(word)
	if err != nil {
		slog.Warn("mutation skipped", "generation", index, "word", word, "error", err)
		return m.HistoryEntry{}, false
	}

	if !record.Changed() {
		slog.Debug("mutation left word unchanged", "generation", index, "word", word)
		return m.HistoryEntry{}, false
	}

	if graph.AddNode(record.Produced, record.Category) {
		slog.Debug("node added", "word", record.Produced, "category", record.Category.String())
	}

	graph.AddEdge(word, record.Produced, record.Description)

	return m.HistoryEntry{
		Generation:     index,
		Record:         record,
		SourceCategory: graph.Category(word),
	}, true
}

// SampleSize returns how many of count nodes a generation mutates:
// max(1, floor(count*fraction)), never more than count.
func SampleSize(count int, fraction float64) int {
	if count <= 0 {
		return 0
	}

	k := max(1, int(math.Floor(float64(count)*fraction)))

	return min(k, count)
}

// sampleWords draws k distinct words uniformly at random with a partial
// Fisher-Yates shuffle over a copy of words.
func sampleWords(rng *rand.Rand, words []string, k int) []string {
	pool := make([]string, len(words))
	copy(pool, words)

	for i := range k {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
