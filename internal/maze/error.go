package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidReading = errors.New("invalid sensor reading")
	ErrInvalidSize    = errors.New("invalid grid size")
)

type InvalidReadingError struct {
	Value int
}

// [InvalidReadingError] implements [error]
func (e *InvalidReadingError) Error() string {
	return fmt.Sprintf("%s: %d is outside 0..7", ErrInvalidReading, e.Value)
}

func (e *InvalidReadingError) Unwrap() error {
	return ErrInvalidReading
}

// OutOfBoundsError is returned when a move would leave the grid, which
// means the wall knowledge disagrees with the sensor.
type OutOfBoundsError struct {
	From    Pos
	Heading Heading
	Turn    Turn
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("move %s from %s facing %s leaves the grid", e.Turn, e.From, e.Heading)
}
