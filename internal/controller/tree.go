package controller

import (
	"fmt"
	"strings"

	m "mutree.dev/pkg/mutree/internal/model"
)

// TreeLine is one row of the rendered mutation tree.
type TreeLine struct {
	Depth       int
	Word        string
	Category    m.Category
	Description string // mutation that produced Word; empty for roots
	Repeat      bool   // Word was already expanded earlier in the tree
}

// String renders the line with two spaces of indentation per level.
func (l TreeLine) String() string {
	var b strings.Builder

	b.WriteString(strings.Repeat("  ", l.Depth))

	if l.Depth > 0 {
		fmt.Fprintf(&b, "└─ [%s] ", l.Description)
	}

	fmt.Fprintf(&b, "%s (%s)", l.Word, l.Category)

	if l.Repeat {
		b.WriteString(" ↑")
	}

	return b.String()
}

// BuildTree walks graph depth-first from its roots. A word reachable along
// several paths is expanded once; later occurrences are marked as repeats.
// Nodes not reachable from any root are appended as extra roots.
func BuildTree(graph *m.MutationGraph) []TreeLine {
	var lines []TreeLine

	expanded := make(map[string]bool, graph.NodeCount())

	var walk func(word, description string, depth int)
	walk = func(word, description string, depth int) {
		line := TreeLine{
			Depth:       depth,
			Word:        word,
			Category:    graph.Category(word),
			Description: description,
		}

		if expanded[word] {
			line.Repeat = true
			lines = append(lines, line)

			return
		}

		expanded[word] = true
		lines = append(lines, line)

		for _, next := range graph.Successors(word) {
			edge, _ := graph.Edge(word, next)
			walk(next, edge.Description, depth+1)
		}
	}

	for _, root := range graph.Roots() {
		walk(root, "", 0)
	}

	for _, word := range graph.Nodes() {
		if !expanded[word] {
			walk(word, "", 0)
		}
	}

	return lines
}
