package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "mutree.dev/pkg/mutree/internal/model"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorSuccess = lipgloss.Color("#00E676")
	colorAccent  = lipgloss.Color("#FFD700")
	colorMuted   = lipgloss.Color("#636363")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDone = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// Tree lines cycle through these colors by depth.
	depthStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
		lipgloss.NewStyle().Foreground(colorSuccess),
		lipgloss.NewStyle().Foreground(colorAccent),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5252")),
	}
)

const navigationHelp = "  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

type (
	runInfoMsg  RunInfo
	mutationMsg m.HistoryEntry
	summaryMsg  RunSummary
	batchMsg    []RunSummary
	finishedMsg struct{}
)

// Start launches the live growth view in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	program := tea.NewProgram(newGrowthModel(cfg.mode), tea.WithOutput(t.output), tea.WithAltScreen())
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("tui stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close tells the live view that no more updates will come.
func (t *TUI) Close(_ context.Context) {
	t.send(finishedMsg{})
}

// Wait blocks until the user quits the live view or ctx is done.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
		program.Quit()
		<-done
	}

	t.mu.Lock()
	t.program, t.done = nil, nil
	t.mu.Unlock()
}

// DisplayRunInfo implements UI.
func (t *TUI) DisplayRunInfo(_ context.Context, info RunInfo) {
	t.send(runInfoMsg(info))
}

// DisplayMutation implements UI.
func (t *TUI) DisplayMutation(_ context.Context, entry m.HistoryEntry) {
	t.send(mutationMsg(entry))
}

// DisplayRunSummary implements UI.
func (t *TUI) DisplayRunSummary(_ context.Context, summary RunSummary) {
	t.send(summaryMsg(summary))
}

// DisplayBatchSummary implements UI.
func (t *TUI) DisplayBatchSummary(_ context.Context, summaries []RunSummary) {
	t.send(batchMsg(summaries))
}

// DisplayGraph shows a stored graph as a colored tree followed by its history.
func (t *TUI) DisplayGraph(ctx context.Context, graph *m.MutationGraph, history []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, graph.NodeCount()+len(history)+2)
	for _, line := range BuildTree(graph) {
		lines = append(lines, "  "+depthStyle(line.Depth).Render(line.String()))
	}

	if len(history) > 0 {
		lines = append(lines, "", styleTitle.Render(fmt.Sprintf("  History (%d mutations):", len(history))))
		for _, h := range history {
			lines = append(lines, "  "+h)
		}
	}

	title := fmt.Sprintf("Mutation graph: %d nodes, %d edges", graph.NodeCount(), graph.EdgeCount())

	return t.page(newPagerModel(title, lines))
}

// DisplayTags shows the tags of words.
func (t *TUI) DisplayTags(ctx context.Context, words []TaggedWord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(words))
	for _, w := range words {
		lines = append(lines, fmt.Sprintf("  %-20s %s %s",
			w.Word, styleTitle.Render(fmt.Sprintf("%-8s", w.Category)), styleMuted.Render(w.Gender.String())))
	}

	return t.page(newPagerModel("Tags", lines))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		t.program.Send(msg)
	}
}

func (t *TUI) page(model pagerModel) error {
	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func depthStyle(depth int) lipgloss.Style {
	return depthStyles[depth%len(depthStyles)]
}

// growthModel follows a run (or a batch) as it progresses.
type growthModel struct {
	mode     StartMode
	lines    []string
	viewport viewport.Model
	ready    bool
	follow   bool
	finished bool
	width    int
	height   int
}

// Lines taken by the title and the footer around the viewport.
const growthChromeLines = 4

func newGrowthModel(mode StartMode) growthModel {
	return growthModel{
		mode:   mode,
		follow: true,
	}
}

func (gm growthModel) Init() tea.Cmd {
	return nil
}

func (gm growthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		gm.width = msg.Width
		gm.height = msg.Height

		if !gm.ready {
			gm.viewport = viewport.New(msg.Width, max(1, msg.Height-growthChromeLines))
			gm.ready = true
		} else {
			gm.viewport.Width = msg.Width
			gm.viewport.Height = max(1, msg.Height-growthChromeLines)
		}

		return gm.refresh(), nil

	case runInfoMsg:
		gm.lines = append(gm.lines, styleTitle.Render(fmt.Sprintf("Run %s", shortID(msg.ID)))+
			styleMuted.Render(fmt.Sprintf("  seeds [%s], %d generation(s), sample %.2f, cap %d, random seed %d",
				strings.Join(msg.Seeds, " "), msg.Generations, msg.SampleFraction, msg.NodeCap, msg.RandomSeed)))

		return gm.refresh(), nil

	case mutationMsg:
		entry := m.HistoryEntry(msg)
		gm.lines = append(gm.lines, fmt.Sprintf("  %s %s %s",
			depthStyle(entry.Generation).Render(fmt.Sprintf("gen %2d", entry.Generation+1)),
			entry,
			styleMuted.Render("{"+EditSummary(entry.Record.Source, entry.Record.Produced)+"}")))

		return gm.refresh(), nil

	case summaryMsg:
		summary := RunSummary(msg)
		gm.lines = append(gm.lines, styleDone.Render(fmt.Sprintf("  %s Run %s: %d nodes, %d edges, depth %d",
			"✓", shortID(summary.ID), summary.Graph.NodeCount(), summary.Graph.EdgeCount(), summary.MaxDepth())))

		for _, file := range summary.Files {
			gm.lines = append(gm.lines, styleMuted.Render("    "+file))
		}

		return gm.refresh(), nil

	case batchMsg:
		table := strings.TrimRight(renderBatchTable(msg), "\n")
		gm.lines = append(gm.lines, "", table)

		return gm.refresh(), nil

	case finishedMsg:
		gm.finished = true

		return gm, nil

	case tea.KeyMsg:
		return gm.handleKeyPress(msg)
	}

	return gm, nil
}

//nolint:exhaustive // We only handle specific navigation keys
func (gm growthModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return gm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		return gm, tea.Quit

	case "g", "home":
		gm.viewport.GotoTop()
		gm.follow = false

		return gm, nil

	case "G", "end":
		gm.viewport.GotoBottom()
		gm.follow = true

		return gm, nil
	}

	var cmd tea.Cmd

	gm.viewport, cmd = gm.viewport.Update(msg)
	gm.follow = gm.viewport.AtBottom()

	return gm, cmd
}

func (gm growthModel) refresh() growthModel {
	if !gm.ready {
		return gm
	}

	gm.viewport.SetContent(strings.Join(gm.lines, "\n"))

	if gm.follow {
		gm.viewport.GotoBottom()
	}

	return gm
}

func (gm growthModel) View() string {
	var b strings.Builder

	title := "mutree: growing"
	if gm.mode == ModeBatch {
		title = "mutree: batch"
	}

	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n\n")

	if gm.ready {
		b.WriteString(gm.viewport.View())
	} else {
		b.WriteString(strings.Join(gm.lines, "\n"))
	}

	b.WriteString("\n\n")

	if gm.finished {
		b.WriteString(styleDone.Render("  done") + styleMuted.Render(" | q: quit"))
	} else {
		b.WriteString(styleMuted.Render("  running... | q: quit"))
	}

	return b.String()
}

// pagerModel shows a fixed list of lines, scrolling when it does not fit.
type pagerModel struct {
	title    string
	lines    []string
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title string, lines []string) pagerModel {
	return pagerModel{
		title: title,
		lines: lines,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "down", "j":
		pm.offset = min(pm.offset+1, pm.maxOffset())

	case "up", "k":
		pm.offset = max(pm.offset-1, 0)

	case "g", "home":
		pm.offset = 0

	case "G", "end":
		pm.offset = pm.maxOffset()

	case "d", "pgdown":
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())

	case "u", "pgup":
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit on screen.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10 // Default
	}
	// Title (2 lines) and footer (3 lines) plus a top margin.
	reserved := 6

	return max(pm.height-reserved, 1)
}

// maxOffset returns the maximum scroll offset.
func (pm pagerModel) maxOffset() int {
	return max(len(pm.lines)-pm.itemsPerPage(), 0)
}

// needsPagination returns true if the list is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	return len(pm.lines) > 0 && pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("  " + pm.title))
	b.WriteString("\n\n")

	if len(pm.lines) == 0 {
		b.WriteString("  (empty)\n")
		return b.String()
	}

	visible := pm.lines
	paginated := pm.needsPagination()

	if paginated {
		start := min(pm.offset, pm.maxOffset())
		end := min(start+pm.itemsPerPage(), len(pm.lines))
		visible = pm.lines[start:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if paginated {
		b.WriteString("\n")

		start := min(pm.offset, pm.maxOffset())
		end := min(start+pm.itemsPerPage(), len(pm.lines))
		fmt.Fprintf(&b, "  Lines %d-%d of %d\n", start+1, end, len(pm.lines))
		b.WriteString(navigationHelp + "\n")
	}

	return b.String()
}
