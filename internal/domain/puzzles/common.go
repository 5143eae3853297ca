// Package puzzles implements the individual day solvers.
package puzzles

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"advent.dev/pkg/advent/internal/domain/digits"
)

// Options carries run-time knobs shared by all solvers.
type Options struct {
	// Parallel bounds the number of goroutines a solver may use per part.
	Parallel int
}

// Lines splits input into lines, dropping carriage returns and the empty
// line that follows a final newline.
func Lines(input string) []string {
	if input == "" {
		return nil
	}

	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", digits.ErrArithmeticOverflow, a, b)
	}

	return sum, nil
}

func formatCount[T ~int | ~uint64](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}
