package server

import (
	"path/filepath"

	"mutree.dev/pkg/mutree/internal/domain"
)

// RunRequest is the body of POST /api/runs.
type RunRequest struct {
	// Words holds the whitespace separated seed words.
	Words string `json:"words"`
	// Generations overrides the configured number of generations when set.
	Generations int `json:"generations,omitempty"`
	// Seed fixes the random seed when set.
	Seed uint64 `json:"seed,omitempty"`
}

// NodeJSON is a graph node in responses.
type NodeJSON struct {
	Word     string `json:"word"`
	Category string `json:"pos"`
	Seed     bool   `json:"seed"`
	Depth    int    `json:"depth"`
}

// EdgeJSON is a graph edge in responses.
type EdgeJSON struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Mutation string `json:"mutation"`
}

// RunResponse is returned by POST /api/runs.
type RunResponse struct {
	ID         string     `json:"id"`
	Seeds      []string   `json:"seeds"`
	RandomSeed uint64     `json:"random_seed"`
	History    []string   `json:"history"`
	Nodes      []NodeJSON `json:"nodes"`
	Edges      []EdgeJSON `json:"edges"`
	Files      []string   `json:"files"`
	CapReached bool       `json:"cap_reached"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Runs   int    `json:"runs"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func newRunResponse(result domain.RunResult) RunResponse {
	graph := result.Graph
	depths := graph.Depths()

	resp := RunResponse{
		ID:         result.ID,
		Seeds:      result.Seeds,
		RandomSeed: result.RandomSeed,
		History:    make([]string, 0, len(result.Growth.History)),
		Nodes:      make([]NodeJSON, 0, graph.NodeCount()),
		Edges:      make([]EdgeJSON, 0, graph.EdgeCount()),
		Files:      make([]string, 0, len(result.Files)),
		CapReached: result.Growth.CapReached,
	}

	for _, entry := range result.Growth.History {
		resp.History = append(resp.History, entry.String())
	}

	for _, word := range graph.Nodes() {
		node, _ := graph.Node(word)
		resp.Nodes = append(resp.Nodes, NodeJSON{
			Word:     word,
			Category: node.Category.String(),
			Seed:     node.Seed,
			Depth:    depths[word],
		})
	}

	for _, edge := range graph.Edges() {
		resp.Edges = append(resp.Edges, EdgeJSON{From: edge.From, To: edge.To, Mutation: edge.Description})
	}

	for _, file := range result.Files {
		resp.Files = append(resp.Files, filepath.Base(file))
	}

	return resp
}
