package digits

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

var (
	// ErrInvalidK is returned when the requested selection length is not positive.
	ErrInvalidK = errors.New("selection length must be positive")
	// ErrInsufficientDigits is returned when a bank is shorter than the requested selection.
	ErrInsufficientDigits = errors.New("insufficient digits")
	// ErrArithmeticOverflow is returned when a value or a sum does not fit in uint64.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// Selection is an ordered pick of digits from one bank with strictly
// increasing positions.
type Selection []Digit

// SelectMax picks k digits of bank, keeping their order, so that the number
// they spell is the largest possible.
//
// Each step scans the feasibility window [lo, hi]: lo is just past the
// previous pick and hi leaves exactly enough digits to finish the selection.
// Among equal maxima the leftmost digit wins, which keeps the widest window
// for the remaining steps.
func SelectMax(bank Bank, k int) (Selection, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got k=%d", ErrInvalidK, k)
	}

	if k > len(bank) {
		return nil, fmt.Errorf("%w: need %d, bank has %d", ErrInsufficientDigits, k, len(bank))
	}

	selection := make(Selection, 0, k)
	lo := 0

	for i := 0; i < k; i++ {
		hi := len(bank) - (k - i)

		best := bank[lo]
		for _, candidate := range bank[lo+1 : hi+1] {
			if outranks(candidate, best) {
				best = candidate
			}
		}

		selection = append(selection, best)
		lo = best.Position + 1
	}

	return selection, nil
}

// outranks orders digits by (-value, position): the higher value wins and,
// on equal values, the lower position wins.
func outranks(a, b Digit) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}

	return a.Position < b.Position
}

// Value reads the selection as a decimal number.
func (s Selection) Value() (uint64, error) {
	var value uint64

	for _, d := range s {
		hi, lo := bits.Mul64(value, 10)
		if hi != 0 || lo > math.MaxUint64-uint64(d.Value) {
			return 0, fmt.Errorf("%w: %s does not fit in 64 bits", ErrArithmeticOverflow, s)
		}

		value = lo + uint64(d.Value)
	}

	return value, nil
}

// Positions returns the bank positions of the selected digits.
func (s Selection) Positions() []int {
	positions := make([]int, len(s))
	for i, d := range s {
		positions[i] = d.Position
	}

	return positions
}

func (s Selection) String() string {
	var b strings.Builder

	b.Grow(len(s))

	for _, d := range s {
		b.WriteByte(byte('0' + d.Value))
	}

	return b.String()
}
