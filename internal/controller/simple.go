package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "advent.dev/pkg/advent/internal/model"
)

const solvedAtLayout = "2006-01-02 15:04:05"

// SimpleUI implements UI using plain tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplaySolution prints both answers of a puzzle.
func (s *SimpleUI) DisplaySolution(ctx context.Context, report m.Report, cached bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Part", "Answer"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Append([]string{"1", report.Solution.Part1})
	table.Append([]string{"2", report.Solution.Part2})
	table.SetFooter([]string{solutionOrigin(cached), formatDuration(report.Duration)})
	table.Render()

	return s.printf("%s\n%s", puzzleHeading(report.Day, report.Title), tableBuffer.String())
}

// DisplayPuzzles prints the registered puzzles.
func (s *SimpleUI) DisplayPuzzles(ctx context.Context, puzzles []m.Puzzle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Day", "Title"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, puzzle := range puzzles {
		table.Append([]string{fmt.Sprintf("%d", puzzle.Day), puzzle.Title})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d puzzle(s)", len(puzzles))})
	table.Render()

	return s.printf("\n%s", tableBuffer.String())
}

// DisplayReports prints stored reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		return s.printf("No reports found\n")
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Day", "Title", "Part 1", "Part 2", "Input", "Solved At"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		table.Append([]string{
			fmt.Sprintf("%d", report.Day),
			report.Title,
			report.Solution.Part1,
			report.Solution.Part2,
			string(report.Input),
			report.SolvedAt.Local().Format(solvedAtLayout),
		})
	}

	table.Render()

	return s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func puzzleHeading(day m.Day, title string) string {
	if title == "" {
		return fmt.Sprintf("Day %d", day)
	}

	return fmt.Sprintf("Day %d: %s", day, title)
}

func solutionOrigin(cached bool) string {
	if cached {
		return "cached"
	}

	return "solved"
}

func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(10 * time.Microsecond).String()
	}
}
