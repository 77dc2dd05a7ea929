package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutree.dev/pkg/mutree/internal/model"
)

func sampleGraph() *m.MutationGraph {
	graph := m.NewMutationGraph()
	graph.AddSeed("дом", m.Noun)
	graph.AddNode("домик", m.Noun)
	graph.AddEdge("дом", "домик", "+ик")
	graph.AddNode("подомик", m.Noun)
	graph.AddEdge("домик", "подомик", "по+")
	graph.AddEdge("дом", "подомик", "по+ +ик")

	return graph
}

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestEditSummary(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want string
	}{
		{"дом", "домик", "+ик"},
		{"бежать", "побежать", "+по"},
		{"читать", "читить", "-а +и"},
		{"красный", "красная", "-ый +ая"},
		{"дом", "дом", "="},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, EditSummary(tt.from, tt.to))
		})
	}
}

func TestBuildTree(t *testing.T) {
	lines := BuildTree(sampleGraph())
	require.Len(t, lines, 4)

	assert.Equal(t, TreeLine{Depth: 0, Word: "дом", Category: m.Noun}, lines[0])
	assert.Equal(t, "домик", lines[1].Word)
	assert.Equal(t, 1, lines[1].Depth)
	assert.Equal(t, "подомик", lines[2].Word)
	assert.Equal(t, 2, lines[2].Depth)
	assert.False(t, lines[2].Repeat)

	assert.Equal(t, "подомик", lines[3].Word)
	assert.True(t, lines[3].Repeat, "second path to a word is not expanded again")
	assert.Equal(t, "  └─ [по+ +ик] подомик (NOUN) ↑", lines[3].String())
}

func TestBuildTree_UnreachableNodes(t *testing.T) {
	graph := m.NewMutationGraph()
	graph.AddSeed("а", m.Other)
	graph.AddNode("б", m.Other)
	graph.AddEdge("б", "а", "")

	lines := BuildTree(graph)
	require.Len(t, lines, 3)
	assert.Equal(t, "б", lines[1].Word)
	assert.Equal(t, 0, lines[1].Depth)
	assert.True(t, lines[2].Repeat)
}

func TestRunSummary_MaxDepth(t *testing.T) {
	// подомик is also a direct mutation of дом, so the shortest path wins.
	assert.Equal(t, 1, RunSummary{Graph: sampleGraph()}.MaxDepth())
	assert.Equal(t, 0, RunSummary{}.MaxDepth())

	chain := m.NewMutationGraph()
	chain.AddSeed("дом", m.Noun)
	chain.AddNode("домик", m.Noun)
	chain.AddEdge("дом", "домик", "+ик")
	chain.AddNode("подомик", m.Noun)
	chain.AddEdge("домик", "подомик", "по+")
	assert.Equal(t, 2, RunSummary{Graph: chain}.MaxDepth())
}

func TestSimpleUI_DisplayRun(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithRunMode()))

	ui.DisplayRunInfo(ctx, RunInfo{
		ID:             "0123456789abcdef",
		Seeds:          []string{"дом"},
		Generations:    10,
		SampleFraction: 0.3,
		NodeCap:        50,
		RandomSeed:     7,
	})
	ui.DisplayMutation(ctx, m.HistoryEntry{
		Record: m.MutationRecord{
			Source: "дом", Produced: "домик", Category: m.Noun, Description: "+ик",
		},
		SourceCategory: m.Noun,
	})
	ui.DisplayRunSummary(ctx, RunSummary{
		ID:          "0123456789abcdef",
		Graph:       sampleGraph(),
		Generations: 2,
		Mutations:   2,
		Files:       []string{"results/mutation_graph.graphml"},
	})
	ui.Close(ctx)
	ui.Wait(ctx)

	out := buf.String()
	assert.Contains(t, out, "Run 01234567: seeds [дом], 10 generation(s), sample 0.30, cap 50, random seed 7")
	assert.Contains(t, out, "[gen 1] дом (NOUN) -> домик (NOUN): +ик  {+ик}")
	assert.Contains(t, out, "подомик")
	assert.Contains(t, out, "completed after 2 generation(s), 2 mutation(s), max depth 1")
	assert.Contains(t, out, "wrote results/mutation_graph.graphml")
}

func TestSimpleUI_DisplayBatchSummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayBatchSummary(context.Background(), []RunSummary{
		{Dir: "run_000", RandomSeed: 1, Graph: sampleGraph()},
		{Dir: "run_001", RandomSeed: 2, Graph: sampleGraph(), CapReached: true},
	})

	out := buf.String()
	assert.Contains(t, out, "run_000")
	assert.Contains(t, out, "run_001")
	assert.Contains(t, out, "true")
}

func TestSimpleUI_DisplayGraph(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplayGraph(context.Background(), sampleGraph(), []string{"дом (NOUN) -> домик (NOUN): +ик"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "дом (NOUN)\n")
	assert.Contains(t, out, "  └─ [+ик] домик (NOUN)")
	assert.Contains(t, out, "History (1 mutations):")
}

func TestSimpleUI_DisplayTags(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplayTags(context.Background(), []TaggedWord{
		{Word: "дом", Category: m.Noun, Gender: m.Masculine},
		{Word: "бежать", Category: m.Verb},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "дом")
	assert.Contains(t, out, "masc")
	assert.Contains(t, out, "VERB")
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	require.ErrorIs(t, ui.DisplayTags(ctx, nil), context.Canceled)
	ui.DisplayRunInfo(ctx, RunInfo{})
	assert.Empty(t, buf.String())
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestTUI_DisplayGraph_SmallPrintsAndExits(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayGraph(context.Background(), sampleGraph(), nil))

	out := buf.String()
	assert.Contains(t, out, "Mutation graph: 3 nodes, 3 edges")
	assert.Contains(t, out, "домик (NOUN)")
}

func TestTUI_DisplayTags(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayTags(context.Background(), []TaggedWord{{Word: "окно", Category: m.Noun, Gender: m.Neuter}}))
	assert.Contains(t, buf.String(), "окно")
	assert.Contains(t, buf.String(), "neut")
}

func TestTUI_DisplayWithoutProgramIsNoop(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	ctx := context.Background()

	tui.DisplayRunInfo(ctx, RunInfo{})
	tui.DisplayMutation(ctx, m.HistoryEntry{})
	tui.Close(ctx)
	tui.Wait(ctx)

	assert.Empty(t, buf.String())
}

func TestGrowthModel_Update(t *testing.T) {
	var model tea.Model = newGrowthModel(ModeRun)

	model, _ = model.Update(runInfoMsg{ID: "abc", Seeds: []string{"дом"}})
	model, _ = model.Update(mutationMsg{
		Record: m.MutationRecord{Source: "дом", Produced: "домик", Category: m.Noun, Description: "+ик"},
	})

	view := model.View()
	assert.Contains(t, view, "Run abc")
	assert.Contains(t, view, "дом (UNKNOWN) -> домик (NOUN): +ик")
	assert.Contains(t, view, "running...")

	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	model, _ = model.Update(summaryMsg{ID: "abc", Graph: sampleGraph()})
	model, _ = model.Update(finishedMsg{})

	view = model.View()
	assert.Contains(t, view, "Run abc: 3 nodes, 3 edges, depth 1")
	assert.Contains(t, view, "done")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPagerModel_Navigation(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}

	pm := newPagerModel("title", lines)
	pm.height = 16 // 10 lines per page

	require.True(t, pm.needsPagination())
	assert.Equal(t, 20, pm.maxOffset())

	press := func(key string) {
		model, _ := pm.handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		pm = model.(pagerModel)
	}

	press("j")
	assert.Equal(t, 1, pm.offset)

	press("G")
	assert.Equal(t, 20, pm.offset)

	press("j")
	assert.Equal(t, 20, pm.offset)

	press("u")
	assert.Equal(t, 10, pm.offset)

	press("g")
	assert.Equal(t, 0, pm.offset)

	press("k")
	assert.Equal(t, 0, pm.offset)

	assert.Contains(t, pm.View(), "Lines 1-10 of 30")
}

func TestPagerModel_Empty(t *testing.T) {
	pm := newPagerModel("nothing", nil)

	assert.False(t, pm.needsPagination())
	assert.Contains(t, pm.View(), "(empty)")
}
