package grid

import (
	"errors"
	"fmt"
)

// Kind classifies a grid failure.
type Kind int

const (
	// KindOutOfBounds means an accessor received a coordinate outside the grid.
	KindOutOfBounds Kind = iota + 1
	// KindMalformedInput means the grid could not be built from its input.
	KindMalformedInput
)

func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "out of bounds"
	case KindMalformedInput:
		return "malformed input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Axis names the dimension an out-of-bounds index was found on.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrOutOfBounds    = errors.New("grid: index out of bounds")
	ErrMalformedInput = errors.New("grid: malformed input")
)

// Error is the single error type returned by this package.
//
// Out-of-bounds errors fill Axis, Got and Max. Malformed-input errors fill
// Line, Column, Token and Reason; Line and Column are 1-based and Column is
// 0 when the problem is not about a single character.
type Error struct {
	Kind Kind

	Axis Axis
	Got  int
	Max  int

	Line   int
	Column int
	Token  string
	Reason string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindOutOfBounds:
		return fmt.Sprintf("grid: index %d on axis %s out of bounds [0, %d)", e.Got, e.Axis, e.Max)
	case KindMalformedInput:
		switch {
		case e.Column > 0:
			return fmt.Sprintf("grid: line %d column %d: could not parse %q: %s", e.Line, e.Column, e.Token, e.Reason)
		case e.Line > 0:
			return fmt.Sprintf("grid: line %d: could not parse %q: %s", e.Line, e.Token, e.Reason)
		default:
			return fmt.Sprintf("grid: %s", e.Reason)
		}
	default:
		return fmt.Sprintf("grid: %s", e.Kind)
	}
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrOutOfBounds:
		return e.Kind == KindOutOfBounds
	case ErrMalformedInput:
		return e.Kind == KindMalformedInput
	}
	return false
}

func outOfBounds(axis Axis, got, max int) *Error {
	return &Error{Kind: KindOutOfBounds, Axis: axis, Got: got, Max: max}
}

func malformed(line, column int, token, reason string) *Error {
	return &Error{Kind: KindMalformedInput, Line: line, Column: column, Token: token, Reason: reason}
}

// checkBounds validates (x, y) against a width x height rectangle. x is
// checked first.
func checkBounds(x, y, width, height int) error {
	if x < 0 || x >= width {
		return outOfBounds(AxisX, x, width)
	}
	if y < 0 || y >= height {
		return outOfBounds(AxisY, y, height)
	}
	return nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return malformed(0, 0, "", fmt.Sprintf("dimensions must be positive, got %dx%d", width, height))
	}
	return nil
}
