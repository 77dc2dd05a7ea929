package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "mutree.dev/pkg/mutree/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayRunInfo prints the parameters of a run.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Run %s: seeds [%s], %d generation(s), sample %.2f, cap %d, random seed %d\n",
		shortID(info.ID), strings.Join(info.Seeds, " "),
		info.Generations, info.SampleFraction, info.NodeCap, info.RandomSeed)
}

// DisplayMutation prints one history entry with its letter-level edit.
func (s *SimpleUI) DisplayMutation(ctx context.Context, entry m.HistoryEntry) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[gen %d] %s  {%s}\n", entry.Generation+1, entry,
		EditSummary(entry.Record.Source, entry.Record.Produced))
}

// DisplayRunSummary prints the node table of a finished run.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, summary RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderNodeTable(summary.Graph))

	status := "completed"
	if summary.CapReached {
		status = "stopped at node cap"
	}

	s.printf("Run %s %s after %d generation(s), %d mutation(s), max depth %d\n",
		shortID(summary.ID), status, summary.Generations, summary.Mutations, summary.MaxDepth())

	for _, file := range summary.Files {
		s.printf("  wrote %s\n", file)
	}
}

// DisplayBatchSummary prints one table row per run of a batch.
func (s *SimpleUI) DisplayBatchSummary(ctx context.Context, summaries []RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderBatchTable(summaries))
}

// DisplayGraph prints a stored graph as a tree followed by its history.
func (s *SimpleUI) DisplayGraph(ctx context.Context, graph *m.MutationGraph, history []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, line := range BuildTree(graph) {
		s.printf("%s\n", line)
	}

	s.printf("\n%s", renderNodeTable(graph))

	if len(history) > 0 {
		s.printf("\nHistory (%d mutations):\n", len(history))

		for _, line := range history {
			s.printf("  %s\n", line)
		}
	}

	return nil
}

// DisplayTags prints the tags of words as a table.
func (s *SimpleUI) DisplayTags(ctx context.Context, words []TaggedWord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTagTable(words))

	return nil
}

func renderNodeTable(graph *m.MutationGraph) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Word", "Category", "Depth", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	depths := graph.Depths()

	for _, word := range graph.Nodes() {
		depth := "-"
		if d, ok := depths[word]; ok {
			depth = strconv.Itoa(d)
		}

		table.Append([]string{
			word,
			graph.Category(word).String(),
			depth,
			strconv.Itoa(graph.OutDegree(word)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Nodes %d", graph.NodeCount()),
		"",
		"",
		strconv.Itoa(graph.EdgeCount()),
	})

	table.Render()

	return tableBuffer.String()
}

func renderBatchTable(summaries []RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Seed", "Nodes", "Edges", "Depth", "Capped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	nodes, edges := 0, 0

	for _, summary := range summaries {
		table.Append([]string{
			summary.Dir,
			strconv.FormatUint(summary.RandomSeed, 10),
			strconv.Itoa(summary.Graph.NodeCount()),
			strconv.Itoa(summary.Graph.EdgeCount()),
			strconv.Itoa(summary.MaxDepth()),
			strconv.FormatBool(summary.CapReached),
		})

		nodes += summary.Graph.NodeCount()
		edges += summary.Graph.EdgeCount()
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Runs %d", len(summaries)),
		"",
		strconv.Itoa(nodes),
		strconv.Itoa(edges),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderTagTable(words []TaggedWord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Word", "Category", "Gender"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, w := range words {
		table.Append([]string{w.Word, w.Category.String(), w.Gender.String()})
	}

	table.Render()

	return tableBuffer.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
