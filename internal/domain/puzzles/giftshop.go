package puzzles

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	m "advent.dev/pkg/advent/internal/model"
)

// IDRange is an inclusive range of product IDs.
type IDRange struct {
	Start uint64
	End   uint64
}

// ParseIDRange parses "start-end".
func ParseIDRange(s string) (IDRange, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return IDRange{}, fmt.Errorf("%w: range %q", m.ErrInvalidInput, s)
	}

	first, err := strconv.ParseUint(start, 10, 64)
	if err != nil {
		return IDRange{}, fmt.Errorf("%w: range %q has bad start", m.ErrInvalidInput, s)
	}

	last, err := strconv.ParseUint(end, 10, 64)
	if err != nil {
		return IDRange{}, fmt.Errorf("%w: range %q has bad end", m.ErrInvalidInput, s)
	}

	return IDRange{Start: first, End: last}, nil
}

// ParseIDRanges parses comma-separated ranges spread over any number of lines.
// Blank segments are skipped.
func ParseIDRanges(input string) ([]IDRange, error) {
	var ranges []IDRange

	for _, line := range Lines(input) {
		for _, segment := range strings.Split(line, ",") {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}

			r, err := ParseIDRange(segment)
			if err != nil {
				return nil, err
			}

			ranges = append(ranges, r)
		}
	}

	return ranges, nil
}

// RepeatedTwice reports whether id is some digit sequence written exactly twice.
func RepeatedTwice(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	if len(s)%2 != 0 {
		return false
	}

	half := len(s) / 2

	return s[:half] == s[half:]
}

// RepeatedAtLeastTwice reports whether id is some digit sequence written two or more times.
func RepeatedAtLeastTwice(id uint64) bool {
	s := strconv.FormatUint(id, 10)

	for size := 1; size <= len(s)/2; size++ {
		if len(s)%size != 0 {
			continue
		}

		if strings.Repeat(s[:size], len(s)/size) == s {
			return true
		}
	}

	return false
}

// GiftShopSolver solves the gift shop puzzle.
type GiftShopSolver struct{}

// NewGiftShopSolver returns the day 2 solver.
func NewGiftShopSolver(Options) *GiftShopSolver {
	return &GiftShopSolver{}
}

// Part1 sums IDs made of a sequence repeated exactly twice.
func (s *GiftShopSolver) Part1(ctx context.Context, input string) (string, error) {
	return s.sumInvalid(ctx, input, RepeatedTwice)
}

// Part2 sums IDs made of a sequence repeated at least twice.
func (s *GiftShopSolver) Part2(ctx context.Context, input string) (string, error) {
	return s.sumInvalid(ctx, input, RepeatedAtLeastTwice)
}

func (s *GiftShopSolver) sumInvalid(ctx context.Context, input string, invalid func(uint64) bool) (string, error) {
	ranges, err := ParseIDRanges(input)
	if err != nil {
		return "", err
	}

	var sum uint64

	for _, r := range ranges {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		for id := r.Start; id <= r.End; id++ {
			if invalid(id) {
				if sum, err = checkedAdd(sum, id); err != nil {
					return "", err
				}
			}

			// id++ would wrap past the top of the range.
			if id == r.End {
				break
			}
		}
	}

	return strconv.FormatUint(sum, 10), nil
}
