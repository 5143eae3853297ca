package puzzles

import (
	"context"
	"fmt"
	"strconv"

	m "advent.dev/pkg/advent/internal/model"
)

const (
	dialSize  = 100
	dialStart = 50
)

// Rotation turns the dial by Distance clicks; Left turns toward lower numbers.
type Rotation struct {
	Left     bool
	Distance int
}

// ParseRotation parses lines such as "L68" or "R14".
func ParseRotation(line string) (Rotation, error) {
	if len(line) < 2 {
		return Rotation{}, fmt.Errorf("%w: rotation %q", m.ErrInvalidInput, line)
	}

	var rotation Rotation

	switch line[0] {
	case 'L':
		rotation.Left = true
	case 'R':
	default:
		return Rotation{}, fmt.Errorf("%w: rotation %q has unknown direction", m.ErrInvalidInput, line)
	}

	distance, err := strconv.Atoi(line[1:])
	if err != nil || distance < 0 || line[1] == '+' {
		return Rotation{}, fmt.Errorf("%w: rotation %q has bad distance", m.ErrInvalidInput, line)
	}

	rotation.Distance = distance

	return rotation, nil
}

// Dial is the safe's combination dial.
type Dial struct {
	Position int
	// Stops counts rotations that ended on 0.
	Stops int
	// Passes counts every click that pointed the dial at 0.
	Passes int
}

// NewDial returns a dial pointing at its starting position.
func NewDial() *Dial {
	return &Dial{Position: dialStart}
}

// Rotate applies one rotation.
func (d *Dial) Rotate(r Rotation) {
	if r.Left {
		switch {
		case d.Position == 0:
			d.Passes += r.Distance / dialSize
		case r.Distance >= d.Position:
			d.Passes += 1 + (r.Distance-d.Position)/dialSize
		}

		d.Position = ((d.Position-r.Distance)%dialSize + dialSize) % dialSize
	} else {
		d.Passes += (d.Position + r.Distance) / dialSize
		d.Position = (d.Position + r.Distance) % dialSize
	}

	if d.Position == 0 {
		d.Stops++
	}
}

// DialSolver solves the secret entrance puzzle.
type DialSolver struct{}

// NewDialSolver returns the day 1 solver.
func NewDialSolver(Options) *DialSolver {
	return &DialSolver{}
}

// Part1 counts rotations that leave the dial at 0.
func (s *DialSolver) Part1(ctx context.Context, input string) (string, error) {
	dial, err := s.run(ctx, input)
	if err != nil {
		return "", err
	}

	return formatCount(dial.Stops), nil
}

// Part2 counts every click that points the dial at 0.
func (s *DialSolver) Part2(ctx context.Context, input string) (string, error) {
	dial, err := s.run(ctx, input)
	if err != nil {
		return "", err
	}

	return formatCount(dial.Passes), nil
}

func (s *DialSolver) run(ctx context.Context, input string) (*Dial, error) {
	dial := NewDial()

	for i, line := range Lines(input) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rotation, err := ParseRotation(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		dial.Rotate(rotation)
	}

	return dial, nil
}
