package model

import "errors"

var (
	// ErrInvalidInput marks puzzle input that a solver cannot parse.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDay marks a day number outside the calendar.
	ErrInvalidDay = errors.New("invalid day")
	// ErrDayNotImplemented marks a calendar day without a registered solver.
	ErrDayNotImplemented = errors.New("day not implemented")
	// ErrInputNotFound marks a missing input file.
	ErrInputNotFound = errors.New("input file not found")
)
