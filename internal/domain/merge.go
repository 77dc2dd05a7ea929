package domain

import m "mutree.dev/pkg/mutree/internal/model"

// MergeGraphs unions graphs into a new graph. A word keeps the category and
// seed flag of the first graph it appears in; an edge keeps the description
// it had where it was first seen.
func MergeGraphs(graphs ...*m.MutationGraph) *m.MutationGraph {
	merged := m.NewMutationGraph()

	for _, graph := range graphs {
		for _, word := range graph.Nodes() {
			node, _ := graph.Node(word)
			if node.Seed {
				merged.AddSeed(word, node.Category)
			} else {
				merged.AddNode(word, node.Category)
			}
		}

		for _, edge := range graph.Edges() {
			if _, ok := merged.Edge(edge.From, edge.To); ok {
				continue
			}

			merged.AddEdge(edge.From, edge.To, edge.Description)
		}
	}

	return merged
}
