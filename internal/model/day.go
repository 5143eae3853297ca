// Package model defines the data structures shared by the puzzle solvers.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Day identifies an advent calendar puzzle.
type Day uint8

const (
	// FirstDay is the first puzzle of the calendar.
	FirstDay Day = 1
	// LastDay is the last puzzle of the calendar.
	LastDay Day = 25
)

// Valid reports whether d falls inside the calendar.
func (d Day) Valid() bool {
	return d >= FirstDay && d <= LastDay
}

func (d Day) String() string {
	return fmt.Sprintf("day %02d", uint8(d))
}

// Puzzle describes a registered puzzle.
type Puzzle struct {
	Day   Day
	Title string
}
