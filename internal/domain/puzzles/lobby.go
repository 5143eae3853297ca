package puzzles

import (
	"context"

	"advent.dev/pkg/advent/internal/domain/digits"
)

const (
	lobbyPart1Batteries = 2
	lobbyPart2Batteries = 12
)

// LobbySolver picks the batteries giving each bank its largest joltage.
type LobbySolver struct {
	opts Options
}

// NewLobbySolver returns the day 3 solver.
func NewLobbySolver(opts Options) *LobbySolver {
	return &LobbySolver{opts: opts}
}

// Part1 sums the best two-battery joltage of every bank.
func (s *LobbySolver) Part1(ctx context.Context, input string) (string, error) {
	return digits.AggregateString(ctx, Lines(input), lobbyPart1Batteries, digits.WithParallel(s.opts.Parallel))
}

// Part2 sums the best twelve-battery joltage of every bank.
func (s *LobbySolver) Part2(ctx context.Context, input string) (string, error) {
	return digits.AggregateString(ctx, Lines(input), lobbyPart2Batteries, digits.WithParallel(s.opts.Parallel))
}
