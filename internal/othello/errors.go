package othello

import "errors"

var (
	// ErrIllegalMove is returned by Board.ApplyMove when the target cell is
	// occupied or the move would flip nothing.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidCoordinate marks a coordinate outside the board. It is meant
	// for input adapters; coordinates rejected with it never reach the Board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrAwaitingInput is returned by a request-driven human source to hand
	// control back to the adapter instead of blocking the engine.
	ErrAwaitingInput = errors.New("awaiting external input")

	// ErrGameOver is returned when a move is submitted to a terminal engine.
	ErrGameOver = errors.New("game is over")

	// ErrAbandoned signals that the external adapter cannot supply further
	// moves and the match should end.
	ErrAbandoned = errors.New("match abandoned")
)
