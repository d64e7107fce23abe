package apperror

import "errors"

var (
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellOutOfBounds  = errors.New("cell index is out of bounds")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAmbiguousCommand = errors.New("ambiguous command")
)
