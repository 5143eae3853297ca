// Package controller provides output adapters for displaying puzzle solutions.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "advent.dev/pkg/advent/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSolve StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured start mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithSolveMode sets the UI to solve mode.
func WithSolveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSolve
	}
}

// WithListMode sets the UI to puzzle listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to stored report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSolve}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how solutions, puzzles and reports reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplaySolution(ctx context.Context, report m.Report, cached bool) error
	DisplayPuzzles(ctx context.Context, puzzles []m.Puzzle) error
	DisplayReports(ctx context.Context, reports []m.Report) error
}

// NewUI picks the TUI for terminals and the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
