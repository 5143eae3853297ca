package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "advent.dev/pkg/advent/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFD7"))
	answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87D787"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#008700")).
			Padding(0, 2)
)

const tuiBanner = "Advent - Puzzle Solver"

// TUI implements UI with lipgloss styling and a Bubble Tea pager for long lists.
type TUI struct {
	output io.Writer
	mode   StartMode
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start prints the banner.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mode = newStartConfig(options...).Mode()

	_, err := fmt.Fprintln(p.output, titleStyle.Render(tuiBanner))

	return err
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// DisplaySolution renders both answers inside a box.
func (p *TUI) DisplaySolution(ctx context.Context, report m.Report, cached bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(puzzleHeading(report.Day, report.Title)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Part 1:"), answerStyle.Render(report.Solution.Part1))
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Part 2:"), answerStyle.Render(report.Solution.Part2))
	b.WriteString(faintStyle.Render(fmt.Sprintf("%s in %s", solutionOrigin(cached), formatDuration(report.Duration))))

	_, err := fmt.Fprintln(p.output, boxStyle.Render(b.String()))

	return err
}

// DisplayPuzzles lists registered puzzles.
func (p *TUI) DisplayPuzzles(ctx context.Context, puzzles []m.Puzzle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(puzzles))
	for _, puzzle := range puzzles {
		lines = append(lines, fmt.Sprintf("  %s  %s", labelStyle.Render(fmt.Sprintf("%2d", puzzle.Day)), puzzle.Title))
	}

	return p.page("🎄 Puzzles", lines, fmt.Sprintf("%d puzzle(s) registered", len(puzzles)))
}

// DisplayReports lists stored reports.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(reports))
	for _, report := range reports {
		lines = append(lines, fmt.Sprintf("  %s %-18s %s / %s  %s",
			labelStyle.Render(fmt.Sprintf("%2d", report.Day)),
			report.Title,
			answerStyle.Render(report.Solution.Part1),
			answerStyle.Render(report.Solution.Part2),
			faintStyle.Render(string(report.Input)),
		))
	}

	return p.page("📜 Reports", lines, fmt.Sprintf("%d report(s) stored", len(reports)))
}

// page prints short lists directly and opens a pager when they overflow the terminal.
func (p *TUI) page(title string, lines []string, summary string) error {
	model := newListModel(title, lines, summary)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

type listKeyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

var listKeys = listKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
	PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
}

func (k listKeyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		parts = append(parts, binding.Help().Key+": "+binding.Help().Desc)
	}

	return strings.Join(parts, " | ")
}

// listModel is the Bubble Tea model of a scrollable list.
type listModel struct {
	title    string
	lines    []string
	summary  string
	height   int
	width    int
	offset   int
	quitting bool
}

func newListModel(title string, lines []string, summary string) listModel {
	return listModel{
		title:   title,
		lines:   lines,
		summary: summary,
	}
}

func (lm listModel) Init() tea.Cmd {
	return nil
}

func (lm listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lm.height = msg.Height
		lm.width = msg.Width

		return lm, nil

	case tea.KeyMsg:
		return lm.handleKeyPress(msg)
	}

	return lm, nil
}

func (lm listModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Quit):
		lm.quitting = true
		return lm, tea.Quit
	case key.Matches(msg, listKeys.Down):
		lm.offset = min(lm.offset+1, lm.maxOffset())
	case key.Matches(msg, listKeys.Up):
		lm.offset = max(lm.offset-1, 0)
	case key.Matches(msg, listKeys.Top):
		lm.offset = 0
	case key.Matches(msg, listKeys.Bottom):
		lm.offset = lm.maxOffset()
	case key.Matches(msg, listKeys.PageDown):
		lm.offset = min(lm.offset+lm.itemsPerPage(), lm.maxOffset())
	case key.Matches(msg, listKeys.PageUp):
		lm.offset = max(lm.offset-lm.itemsPerPage(), 0)
	}

	return lm, nil
}

// itemsPerPage calculates how many lines fit between header and footer.
func (lm listModel) itemsPerPage() int {
	if lm.height == 0 {
		return 10
	}
	// Banner and title: 3 lines, summary: 2 lines, footer: 3 lines.
	reserved := 8

	return max(lm.height-reserved, 1)
}

func (lm listModel) maxOffset() int {
	return max(len(lm.lines)-lm.itemsPerPage(), 0)
}

func (lm listModel) needsPagination() bool {
	return lm.height > 0 && len(lm.lines) > lm.itemsPerPage()
}

func (lm listModel) View() string {
	var b strings.Builder

	needsPagination := lm.needsPagination()

	// Start already printed the banner above inline output; the pager owns the whole screen.
	if needsPagination {
		b.WriteString(titleStyle.Render(tuiBanner))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  %s\n\n", lm.title)

	if len(lm.lines) == 0 {
		b.WriteString("  📭 Nothing to show\n")
		return b.String()
	}

	visible := lm.lines

	if needsPagination {
		end := min(lm.offset+lm.itemsPerPage(), len(lm.lines))
		visible = lm.lines[lm.offset:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n  📊 %s\n", lm.summary)

	if needsPagination {
		end := min(lm.offset+lm.itemsPerPage(), len(lm.lines))
		fmt.Fprintf(&b, "\n  Showing %d-%d of %d\n", lm.offset+1, end, len(lm.lines))
		fmt.Fprintf(&b, "  %s\n", listKeys.help())
	}

	return b.String()
}
