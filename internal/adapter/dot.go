package adapter

import (
	"bytes"
	"fmt"
	"strings"

	m "mutree.dev/pkg/mutree/internal/model"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// EncodeDOT renders graph in Graphviz DOT syntax. Seeds are drawn as boxes.
func EncodeDOT(graph *m.MutationGraph) []byte {
	var b bytes.Buffer

	b.WriteString("digraph mutations {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  node [shape=ellipse];\n")

	for _, word := range graph.Nodes() {
		node, _ := graph.Node(word)

		shape := ""
		if node.Seed {
			shape = ", shape=box"
		}

		label := `"` + dotEscaper.Replace(word) + `\n(` + node.Category.String() + `)"`
		fmt.Fprintf(&b, "  %s [label=%s%s];\n", dotQuote(word), label, shape)
	}

	for _, edge := range graph.Edges() {
		fmt.Fprintf(&b, "  %s -> %s [label=%s];\n",
			dotQuote(edge.From), dotQuote(edge.To), dotQuote(edge.Description))
	}

	b.WriteString("}\n")

	return b.Bytes()
}
