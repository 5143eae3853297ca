package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"advent.dev/pkg/advent/internal/adapter"
	"advent.dev/pkg/advent/internal/controller"
	"advent.dev/pkg/advent/internal/domain"
	domainmocks "advent.dev/pkg/advent/internal/domain/mocks"
	m "advent.dev/pkg/advent/internal/model"
)

func TestSolveCmd_PassesArguments(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Solve", mock.Anything, mock.MatchedBy(func(args domain.SolveArgs) bool {
		return args.Day == 3 &&
			args.Input == m.Path("inputs/day03.txt") &&
			args.Reports == m.Path(".advent-reports") &&
			args.UseCache &&
			args.Parallel == 4
	})).Return(nil)

	cmd.SetArgs([]string{"solve", "3", "-i", "inputs/day03.txt", "--parallel", "4"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestSolveCmd_ParallelFlagDefault(t *testing.T) {
	flag := newSolveCmd().Flags().Lookup(solveParallelFlagName)
	require.NotNil(t, flag)

	assert.Equal(t, "1", flag.DefValue)
	assert.Equal(t, "p", flag.Shorthand)
}

func TestSolveCmd_NoCacheAndOutput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newSolveCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Solve", mock.Anything, mock.MatchedBy(func(args domain.SolveArgs) bool {
		return args.Day == 1 &&
			args.Reports == m.Path("custom") &&
			!args.UseCache
	})).Return(nil)

	cmd.SetArgs([]string{"solve", "01", "--input", "day01.txt", "--no-cache", "-o", "custom"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestSolveCmd_RejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing day", []string{"solve", "-i", "in.txt"}},
		{"missing input flag", []string{"solve", "3"}},
		{"day out of range", []string{"solve", "26", "-i", "in.txt"}},
		{"day not a number", []string{"solve", "three", "-i", "in.txt"}},
		{"too many args", []string{"solve", "1", "2", "-i", "in.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd := newRootCmd()
			cmd.AddCommand(newSolveCmd())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			require.Error(t, err)
		})
	}
}

func TestSolveCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "day03.txt")
	reportsDir := filepath.Join(dir, "reports")

	require.NoError(t, os.WriteFile(inputPath, []byte("987654321111111\n811111111111119\n234234234234278\n818181911112111\n"), 0o644))

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newSolveCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	store := adapter.NewReportStore()

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(
		adapter.NewLocalInputAdapter(),
		store,
		adapter.NewSolutionCache(store, 0),
		controller.NewSimpleUI(cmd),
		domain.NewRegistry(),
	)
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"solve", "3", "-i", inputPath, "-o", reportsDir})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "Day 3: Lobby")
	assert.Contains(t, output, "357")
	assert.Contains(t, output, "3121910778619")
	assert.Contains(t, output, "solved")

	reports, err := store.ListReports(t.Context(), m.Path(reportsDir))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, m.Solution{Part1: "357", Part2: "3121910778619"}, reports[0].Solution)
}
