// Package digits selects the largest ordered k-digit subsequence of a digit line
// and sums those selections across many lines.
package digits

import (
	"fmt"

	m "advent.dev/pkg/advent/internal/model"
)

// Digit is a single decimal digit and its index in the source line.
type Digit struct {
	Value    int
	Position int
}

// Bank is the parsed, immutable sequence of digits of one input line.
// Bank[i].Position == i holds for every i.
type Bank []Digit

// ParseBank parses a line made only of ASCII decimal digits.
func ParseBank(line string) (Bank, error) {
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", m.ErrInvalidInput)
	}

	bank := make(Bank, len(line))

	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", m.ErrInvalidInput, c, i)
		}

		bank[i] = Digit{Value: int(c - '0'), Position: i}
	}

	return bank, nil
}

// Len returns the number of digits in the bank.
func (b Bank) Len() int {
	return len(b)
}
