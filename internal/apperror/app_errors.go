package apperror

import "errors"

var (
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrInvalidSize    = errors.New("invalid board size")
	ErrInvalidPlayers = errors.New("invalid number of players")
	ErrPositionTaken  = errors.New("position taken")
	ErrMalformedInput = errors.New("malformed input")
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotFound   = errors.New("game not found")
)
