package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationGraph_AddNodeKeepsFirstCategory(t *testing.T) {
	g := NewMutationGraph()

	require.True(t, g.AddSeed("дом", Noun))
	assert.False(t, g.AddNode("дом", Verb))
	assert.False(t, g.AddSeed("дом", Verb))

	node, ok := g.Node("дом")
	require.True(t, ok)
	assert.Equal(t, Noun, node.Category)
	assert.True(t, node.Seed)
	assert.Equal(t, 1, g.NodeCount())
}

func TestMutationGraph_AddEdge(t *testing.T) {
	g := NewMutationGraph()
	g.AddSeed("дом", Noun)

	assert.True(t, g.AddEdge("дом", "домик", "+ик"))
	assert.True(t, g.HasNode("домик"), "missing endpoints are created")
	assert.Equal(t, Unknown, g.Category("домик"))

	assert.False(t, g.AddEdge("дом", "домик", "уменьш. +ик"))
	assert.Equal(t, 1, g.EdgeCount())

	edge, ok := g.Edge("дом", "домик")
	require.True(t, ok)
	assert.Equal(t, "уменьш. +ик", edge.Description)

	_, ok = g.Edge("домик", "дом")
	assert.False(t, ok)

	assert.Equal(t, 1, g.OutDegree("дом"))
	assert.Equal(t, 1, g.InDegree("домик"))
	assert.Equal(t, []string{"домик"}, g.Successors("дом"))
}

func TestMutationGraph_NodesIsACopy(t *testing.T) {
	g := NewMutationGraph()
	g.AddNode("а", Other)

	nodes := g.Nodes()
	nodes[0] = "б"

	assert.Equal(t, []string{"а"}, g.Nodes())
}

func TestMutationGraph_RootsAndDepths(t *testing.T) {
	t.Run("seeds are roots", func(t *testing.T) {
		g := NewMutationGraph()
		g.AddSeed("дом", Noun)
		g.AddSeed("мама", Noun)
		g.AddEdge("дом", "домик", "+ик")
		g.AddEdge("домик", "подомик", "по+")
		g.AddEdge("мама", "домик", "?")

		assert.Equal(t, []string{"дом", "мама"}, g.Roots())
		assert.Equal(t, map[string]int{
			"дом":     0,
			"мама":    0,
			"домик":   1,
			"подомик": 2,
		}, g.Depths())
	})

	t.Run("without seeds", func(t *testing.T) {
		g := NewMutationGraph()
		g.AddEdge("а", "б", "")
		g.AddEdge("б", "в", "")
		g.AddNode("г", Other)

		assert.Equal(t, []string{"а", "г"}, g.Roots())
		assert.Equal(t, 2, g.Depths()["в"])
	})
}

func TestHistoryEntry_String(t *testing.T) {
	entry := HistoryEntry{
		Generation: 3,
		Record: MutationRecord{
			Source:      "бежать",
			Produced:    "побежать",
			Category:    Verb,
			Description: "по+",
		},
		SourceCategory: Verb,
	}

	assert.Equal(t, "бежать (VERB) -> побежать (VERB): по+", entry.String())
	assert.True(t, entry.Record.Changed())
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"NOUN":    Noun,
		"propn":   Noun,
		"VERB":    Verb,
		" AUX ":   Verb,
		"ADJ":     Adjective,
		"ADV":     Other,
		"ADP":     Other,
		"OTHER":   Other,
		"X":       Unknown,
		"":        Unknown,
		"UNKNOWN": Unknown,
	}

	for tag, want := range tests {
		t.Run(tag, func(t *testing.T) {
			assert.Equal(t, want, ParseCategory(tag))
		})
	}

	for _, c := range Categories() {
		assert.Equal(t, c, ParseCategory(c.String()), c.String())
	}
}

func TestParseGender(t *testing.T) {
	for _, g := range Genders() {
		assert.Equal(t, g, ParseGender(g.String()))
	}

	assert.Equal(t, Feminine, ParseGender("Feminine"))
	assert.Equal(t, GenderUnknown, ParseGender("common"))
}

func TestStripMarker(t *testing.T) {
	assert.Equal(t, "бежать", StripMarker("?бежать?"))
	assert.Equal(t, "", StripMarker("??"))
	assert.Equal(t, "дом", StripMarker("дом"))
}
