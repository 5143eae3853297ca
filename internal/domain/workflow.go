package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"advent.dev/pkg/advent/internal/adapter"
	"advent.dev/pkg/advent/internal/controller"
	"advent.dev/pkg/advent/internal/domain/puzzles"
	m "advent.dev/pkg/advent/internal/model"
)

// SolveArgs contains the arguments for solving one day.
type SolveArgs struct {
	Day      m.Day
	Input    m.Path
	Reports  m.Path
	UseCache bool
	Parallel int
}

// ViewArgs contains the arguments for viewing stored reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	List(ctx context.Context) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	input    adapter.InputAdapter
	store    adapter.ReportStore
	cache    adapter.SolutionCache
	ui       controller.UI
	registry Registry
	now      func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	input adapter.InputAdapter,
	store adapter.ReportStore,
	cache adapter.SolutionCache,
	ui controller.UI,
	registry Registry,
) Workflow {
	return &workflow{
		input:    input,
		store:    store,
		cache:    cache,
		ui:       ui,
		registry: registry,
		now:      time.Now,
	}
}

func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	puzzle, factory, err := w.registry.Get(args.Day)
	if err != nil {
		return err
	}

	content, err := w.input.ReadInput(ctx, args.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	inputHash := w.input.HashInput(content)

	if args.UseCache && args.Reports != "" {
		if report, found := w.cache.Get(ctx, args.Reports, args.Day, inputHash); found {
			slog.Debug("Using cached solution", "day", args.Day, "hash", inputHash)
			return w.display(ctx, report, true)
		}
	}

	started := w.now()

	solution, err := w.run(ctx, factory(puzzles.Options{Parallel: args.Parallel}), content)
	if err != nil {
		slog.Error("Failed to solve puzzle", "day", args.Day, "input", args.Input, "error", err)
		return fmt.Errorf("solve %s: %w", args.Day, err)
	}

	report := m.Report{
		Day:       args.Day,
		Title:     puzzle.Title,
		Input:     args.Input,
		InputHash: inputHash,
		Solution:  solution,
		SolvedAt:  started,
		Duration:  w.now().Sub(started),
	}

	if args.Reports != "" {
		if err := w.cache.Set(ctx, args.Reports, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	return w.display(ctx, report, false)
}

// run solves both parts concurrently. Each part only reads content.
func (w *workflow) run(ctx context.Context, solver Solver, content string) (m.Solution, error) {
	var solution m.Solution

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		answer, err := solver.Part1(groupCtx, content)
		if err != nil {
			return fmt.Errorf("part 1: %w", err)
		}

		solution.Part1 = answer

		return nil
	})

	group.Go(func() error {
		answer, err := solver.Part2(groupCtx, content)
		if err != nil {
			return fmt.Errorf("part 2: %w", err)
		}

		solution.Part2 = answer

		return nil
	})

	if err := group.Wait(); err != nil {
		return m.Solution{}, err
	}

	return solution, nil
}

func (w *workflow) display(ctx context.Context, report m.Report, cached bool) error {
	if err := w.ui.Start(ctx, controller.WithSolveMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	return w.ui.DisplaySolution(ctx, report, cached)
}

func (w *workflow) List(ctx context.Context) error {
	if err := w.ui.Start(ctx, controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	return w.ui.DisplayPuzzles(ctx, w.registry.Puzzles())
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.store.ListReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close(ctx)

	return w.ui.DisplayReports(ctx, reports)
}
