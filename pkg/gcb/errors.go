package gcb

import "errors"

var (
	ErrCantChangeDrawingState = errors.New("cannot change drawing state")
	ErrOutOfBounds            = errors.New("position is out of the working area")
	ErrEmptyPath              = errors.New("path has no points")
	ErrInvalidArg             = errors.New("invalid command argument")
)
