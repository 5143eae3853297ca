package domain

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent.dev/pkg/advent/internal/domain/puzzles"
	m "advent.dev/pkg/advent/internal/model"
)

// Solver computes the answers to both parts of one puzzle.
type Solver interface {
	Part1(ctx context.Context, input string) (string, error)
	Part2(ctx context.Context, input string) (string, error)
}

// Factory builds a Solver for a single run.
type Factory func(opts puzzles.Options) Solver

// Registry maps calendar days to solver factories.
type Registry interface {
	Get(day m.Day) (m.Puzzle, Factory, error)
	Puzzles() []m.Puzzle
}

type registration struct {
	title   string
	factory Factory
}

// defaultRegistrations lists every implemented day.
var defaultRegistrations = map[m.Day]registration{
	1: {
		title:   "Secret Entrance",
		factory: func(opts puzzles.Options) Solver { return puzzles.NewDialSolver(opts) },
	},
	2: {
		title:   "Gift Shop",
		factory: func(opts puzzles.Options) Solver { return puzzles.NewGiftShopSolver(opts) },
	},
	3: {
		title:   "Lobby",
		factory: func(opts puzzles.Options) Solver { return puzzles.NewLobbySolver(opts) },
	},
}

type registry struct {
	entries map[m.Day]registration
}

// NewRegistry returns a Registry holding every implemented day.
func NewRegistry() Registry {
	return &registry{entries: defaultRegistrations}
}

func (r *registry) Get(day m.Day) (m.Puzzle, Factory, error) {
	if !day.Valid() {
		return m.Puzzle{}, nil, fmt.Errorf("%w: %d is outside %d-%d", m.ErrInvalidDay, day, m.FirstDay, m.LastDay)
	}

	entry, ok := r.entries[day]
	if !ok {
		return m.Puzzle{}, nil, fmt.Errorf("%w: %s", m.ErrDayNotImplemented, day)
	}

	return m.Puzzle{Day: day, Title: entry.title}, entry.factory, nil
}

func (r *registry) Puzzles() []m.Puzzle {
	list := make([]m.Puzzle, 0, len(r.entries))
	for day, entry := range r.entries {
		list = append(list, m.Puzzle{Day: day, Title: entry.title})
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Day < list[j].Day
	})

	return list
}

// ParseDay converts a command-line argument into a calendar day.
func ParseDay(arg string) (m.Day, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < int(m.FirstDay) || n > int(m.LastDay) {
		return 0, fmt.Errorf("%w: %q is not a day between %d and %d", m.ErrInvalidDay, arg, m.FirstDay, m.LastDay)
	}

	return m.Day(n), nil
}
