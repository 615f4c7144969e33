package types

import "errors"

var (
	// ErrInvalidWindow is returned when the window dimensions cannot hold the paddles and ball.
	ErrInvalidWindow = errors.New("invalid window")
	// ErrPaddleNotFound is returned when a paddle is missing from the game state.
	ErrPaddleNotFound = errors.New("paddle not found")
)
