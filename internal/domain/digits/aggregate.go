package digits

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// LineError ties a failure to the input line that caused it.
type LineError struct {
	Line    int // 1-based
	Content string
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Content, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Option configures Aggregate.
type Option func(*aggregateConfig)

type aggregateConfig struct {
	parallel int
}

// WithParallel spreads lines over up to n goroutines. Values below 2 keep the
// computation on the calling goroutine.
func WithParallel(n int) Option {
	return func(c *aggregateConfig) {
		c.parallel = n
	}
}

// Aggregate sums the largest k-digit selection of every line.
//
// Lines are combined in input order regardless of parallelism, so the result
// and the reported error (the first failing line) never depend on scheduling.
func Aggregate(ctx context.Context, lines []string, k int, opts ...Option) (uint64, error) {
	cfg := aggregateConfig{parallel: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	slog.Debug("Aggregating digit banks", "lines", len(lines), "k", k, "parallel", cfg.parallel)

	values, errs, err := evaluateLines(ctx, lines, k, cfg.parallel)
	if err != nil {
		return 0, err
	}

	var sum uint64

	for i := range lines {
		if errs[i] != nil {
			return 0, errs[i]
		}

		var carry uint64

		sum, carry = bits.Add64(sum, values[i], 0)
		if carry != 0 {
			return 0, &LineError{
				Line:    i + 1,
				Content: lines[i],
				Err:     fmt.Errorf("%w: running sum exceeds 64 bits", ErrArithmeticOverflow),
			}
		}
	}

	return sum, nil
}

// AggregateString is Aggregate rendered as a decimal string.
func AggregateString(ctx context.Context, lines []string, k int, opts ...Option) (string, error) {
	sum, err := Aggregate(ctx, lines, k, opts...)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(sum, 10), nil
}

// LineValue computes the largest k-digit value of a single line.
func LineValue(line string, k int) (uint64, error) {
	bank, err := ParseBank(line)
	if err != nil {
		return 0, err
	}

	selection, err := SelectMax(bank, k)
	if err != nil {
		return 0, err
	}

	return selection.Value()
}

func evaluateLines(ctx context.Context, lines []string, k int, parallel int) ([]uint64, []error, error) {
	values := make([]uint64, len(lines))
	errs := make([]error, len(lines))

	evaluate := func(i int) {
		value, err := LineValue(lines[i], k)
		if err != nil {
			errs[i] = &LineError{Line: i + 1, Content: lines[i], Err: err}
			return
		}

		values[i] = value
	}

	if parallel <= 1 {
		for i := range lines {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}

			evaluate(i)

			// The reduction stops at the first failing line, so later lines are never needed.
			if errs[i] != nil {
				return values, errs, nil
			}
		}

		return values, errs, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i := range lines {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			evaluate(i)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	// The loop may have stopped early on cancellation without any goroutine noticing.
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	return values, errs, nil
}
