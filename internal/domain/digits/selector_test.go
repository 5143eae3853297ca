package digits

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBank(t *testing.T, line string) Bank {
	t.Helper()

	bank, err := ParseBank(line)
	require.NoError(t, err)

	return bank
}

func TestSelectMax(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		k             int
		wantValue     uint64
		wantPositions []int
	}{
		{"descending prefix", "987654321111111", 2, 98, []int{0, 1}},
		{"best digit last", "811111111111119", 2, 89, []int{0, 14}},
		{"tail pair", "234234234234278", 2, 78, []int{13, 14}},
		{"nine in the middle", "818181911112111", 2, 92, []int{6, 11}},
		{"equal maxima pick leftmost", "99", 1, 9, []int{0}},
		{"single max in the middle", "191", 1, 9, []int{1}},
		{"leftmost tie keeps later nine reachable", "9119", 2, 99, []int{0, 3}},
		{"twelve of fifteen", "987654321111111", 12, 987654321111, nil},
		{"twelve with late nine", "811111111111119", 12, 811111111119, nil},
		{"twelve skipping small digits", "234234234234278", 12, 434234234278, nil},
		{"twelve with tie runs", "818181911112111", 12, 888911112111, nil},
		{"leading zero", "0123", 2, 23, []int{2, 3}},
		{"all zeros", "000", 2, 0, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection, err := SelectMax(mustBank(t, tt.line), tt.k)
			require.NoError(t, err)
			require.Len(t, selection, tt.k)

			value, err := selection.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)

			if tt.wantPositions != nil {
				if diff := cmp.Diff(tt.wantPositions, selection.Positions()); diff != "" {
					t.Errorf("positions mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestSelectMax_WholeBank(t *testing.T) {
	bank := mustBank(t, "3141592653")

	selection, err := SelectMax(bank, bank.Len())
	require.NoError(t, err)

	if diff := cmp.Diff(Selection(bank), selection); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectMax_InvalidK(t *testing.T) {
	bank := mustBank(t, "12345")

	_, err := SelectMax(bank, 0)
	require.ErrorIs(t, err, ErrInvalidK)

	_, err = SelectMax(bank, -1)
	require.ErrorIs(t, err, ErrInvalidK)

	_, err = SelectMax(bank, 6)
	require.ErrorIs(t, err, ErrInsufficientDigits)
}

func TestSelectMax_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(2025, 3))

	for round := 0; round < 400; round++ {
		n := 1 + rng.IntN(10)
		// A narrow alphabet produces plenty of ties.
		alphabet := 2 + rng.IntN(9)

		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(byte('0' + rng.IntN(alphabet)))
		}

		line := b.String()
		bank := mustBank(t, line)

		for k := 1; k <= n; k++ {
			selection, err := SelectMax(bank, k)
			require.NoError(t, err, "line %q k=%d", line, k)
			require.Len(t, selection, k)

			positions := selection.Positions()
			for i := 1; i < len(positions); i++ {
				require.Less(t, positions[i-1], positions[i], "line %q k=%d", line, k)
			}

			assert.Equal(t, bruteForceMax(line, k), selection.String(), "line %q k=%d", line, k)
		}
	}
}

// bruteForceMax tries every C(n,k) subsequence. Equal-length digit strings
// compare like the numbers they spell.
func bruteForceMax(line string, k int) string {
	best := ""

	for mask := 0; mask < 1<<len(line); mask++ {
		if popcount(mask) != k {
			continue
		}

		var b strings.Builder

		for i := 0; i < len(line); i++ {
			if mask&(1<<i) != 0 {
				b.WriteByte(line[i])
			}
		}

		if candidate := b.String(); candidate > best {
			best = candidate
		}
	}

	return best
}

func popcount(x int) int {
	count := 0
	for ; x != 0; x &= x - 1 {
		count++
	}

	return count
}

func TestSelection_Value(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    uint64
		wantErr error
	}{
		{"small", "42", 42, nil},
		{"max uint64", "18446744073709551615", 18446744073709551615, nil},
		{"one past max", "18446744073709551616", 0, ErrArithmeticOverflow},
		{"too many digits", "100000000000000000000", 0, ErrArithmeticOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := mustBank(t, tt.line)

			selection, err := SelectMax(bank, bank.Len())
			require.NoError(t, err)

			got, err := selection.Value()
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, selection.String())
		})
	}
}
