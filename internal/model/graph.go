package model

// Node is a word in the mutation graph.
type Node struct {
	Word     string
	Category Category
	Seed     bool
}

// Edge is a mutation event between two words.
type Edge struct {
	From        string
	To          string
	Description string
}

// MutationGraph is a directed graph of words connected by mutations.
//
// Nodes keep their insertion order. A word is stored once and its category
// is fixed at first insertion. Between two words there is at most one edge;
// adding it again replaces the description.
type MutationGraph struct {
	order []string
	nodes map[string]*Node
	edges []*Edge
	index map[[2]string]*Edge
	succ  map[string][]string
	in    map[string]int
}

// NewMutationGraph creates an empty graph.
func NewMutationGraph() *MutationGraph {
	return &MutationGraph{
		nodes: make(map[string]*Node),
		index: make(map[[2]string]*Edge),
		succ:  make(map[string][]string),
		in:    make(map[string]int),
	}
}

// AddSeed inserts a seed word. It returns false if the word was already present.
func (g *MutationGraph) AddSeed(word string, category Category) bool {
	if !g.AddNode(word, category) {
		return false
	}

	g.nodes[word].Seed = true

	return true
}

// AddNode inserts word with category. If the word is already a node nothing
// changes and false is returned.
func (g *MutationGraph) AddNode(word string, category Category) bool {
	if _, ok := g.nodes[word]; ok {
		return false
	}

	g.nodes[word] = &Node{Word: word, Category: category}
	g.order = append(g.order, word)

	return true
}

// AddEdge connects from -> to. Missing endpoints are created with the
// Unknown category. It returns true if the edge is new.
func (g *MutationGraph) AddEdge(from, to, description string) bool {
	g.AddNode(from, Unknown)
	g.AddNode(to, Unknown)

	key := [2]string{from, to}
	if edge, ok := g.index[key]; ok {
		edge.Description = description
		return false
	}

	edge := &Edge{From: from, To: to, Description: description}
	g.index[key] = edge
	g.edges = append(g.edges, edge)
	g.succ[from] = append(g.succ[from], to)
	g.in[to]++

	return true
}

// HasNode reports whether word is a node.
func (g *MutationGraph) HasNode(word string) bool {
	_, ok := g.nodes[word]
	return ok
}

// Node returns the node for word.
func (g *MutationGraph) Node(word string) (Node, bool) {
	n, ok := g.nodes[word]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// Category returns the category recorded for word, or Unknown.
func (g *MutationGraph) Category(word string) Category {
	if n, ok := g.nodes[word]; ok {
		return n.Category
	}

	return Unknown
}

// Nodes returns the node words in insertion order. The slice is a copy.
func (g *MutationGraph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns the edges in insertion order.
func (g *MutationGraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}

	return out
}

// Edge returns the edge from -> to.
func (g *MutationGraph) Edge(from, to string) (Edge, bool) {
	e, ok := g.index[[2]string{from, to}]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// NodeCount returns the number of nodes.
func (g *MutationGraph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *MutationGraph) EdgeCount() int {
	return len(g.edges)
}

// InDegree returns the number of edges ending at word.
func (g *MutationGraph) InDegree(word string) int {
	return g.in[word]
}

// OutDegree returns the number of edges starting at word.
func (g *MutationGraph) OutDegree(word string) int {
	return len(g.succ[word])
}

// Successors returns the words produced from word, in edge order.
func (g *MutationGraph) Successors(word string) []string {
	out := make([]string, len(g.succ[word]))
	copy(out, g.succ[word])

	return out
}

// Roots returns the seed words. A graph built without seeds falls back to
// the nodes that have no incoming edge.
func (g *MutationGraph) Roots() []string {
	var roots []string

	for _, w := range g.order {
		if g.nodes[w].Seed {
			roots = append(roots, w)
		}
	}

	if len(roots) > 0 {
		return roots
	}

	for _, w := range g.order {
		if g.in[w] == 0 {
			roots = append(roots, w)
		}
	}

	return roots
}

// Depths returns the shortest distance of every reachable node from the
// roots.
func (g *MutationGraph) Depths() map[string]int {
	depths := make(map[string]int, len(g.order))
	queue := g.Roots()

	for _, r := range queue {
		depths[r] = 0
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range g.succ[cur] {
			if _, seen := depths[next]; seen {
				continue
			}

			depths[next] = depths[cur] + 1
			queue = append(queue, next)
		}
	}

	return depths
}
