package draw

import (
	"errors"
	"fmt"
)

// Sentinel errors for the draw package.
var (
	// ErrUnknownCommand is returned when a command name is not in the
	// command table.
	ErrUnknownCommand = errors.New("draw: unknown command")

	// ErrInvalidArgument is returned when a command or constructor
	// argument has the wrong type or a non-finite value.
	ErrInvalidArgument = errors.New("draw: invalid argument")

	// ErrMissingArgument is returned when a constructor is called without
	// a required argument. It wraps ErrInvalidArgument.
	ErrMissingArgument = fmt.Errorf("%w: missing argument", ErrInvalidArgument)

	// ErrReleased is returned when a command targets a released path.
	ErrReleased = errors.New("draw: primitive released")

	// ErrUnknownConstructor is returned by Registry.Call for names that
	// do not denote a primitive kind.
	ErrUnknownConstructor = errors.New("draw: unknown constructor")
)

// ArgumentError describes a rejected argument. Position is 1-based and
// counts the arguments after the receiver.
type ArgumentError struct {
	Op       string // command or constructor name
	Position int
	Want     string // "number", "finite number", "boolean", "string"
	Got      any
	Err      error // ErrInvalidArgument or ErrMissingArgument
}

func (e *ArgumentError) Error() string {
	if errors.Is(e.Err, ErrMissingArgument) {
		return fmt.Sprintf("draw: %s: argument %d: missing %s", e.Op, e.Position, e.Want)
	}
	return fmt.Sprintf("draw: %s: argument %d: want %s, got %v (%T)", e.Op, e.Position, e.Want, e.Got, e.Got)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
