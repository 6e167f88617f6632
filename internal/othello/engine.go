package othello

import (
	"context"
	"errors"
	"fmt"
)

// Outcome classifies a finished match.
type Outcome int

const (
	OutcomeBlackWins Outcome = iota
	OutcomeWhiteWins
	OutcomeDraw
)

// String returns the outcome name used in API payloads and the database.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlackWins:
		return "black"
	case OutcomeWhiteWins:
		return "white"
	default:
		return "draw"
	}
}

// Result is the final score of a terminal match.
type Result struct {
	BlackScore int
	WhiteScore int
	Outcome    Outcome
}

// Engine owns a board and drives turn alternation: it computes legal moves
// for the active color, obtains one choice from the bound MoveSource,
// applies it, and resolves forced passes and termination. It is the only
// caller of Board.ApplyMove.
type Engine struct {
	board    *Board
	active   Color
	sources  [2]MoveSource
	moves    int
	terminal bool
}

// NewEngine creates an engine with the standard start position. Black moves
// first. Both colors must have a move source bound.
func NewEngine(black, white MoveSource) (*Engine, error) {
	return NewEngineWithBoard(NewBoard(), black, white)
}

// NewEngineWithBoard creates an engine from a custom start board. This
// allows endgame positions to be set up directly.
func NewEngineWithBoard(board *Board, black, white MoveSource) (*Engine, error) {
	if black == nil || white == nil {
		return nil, errors.New("engine requires a move source for both colors")
	}

	e := &Engine{
		board:   board,
		active:  Black,
		sources: [2]MoveSource{Black: black, White: white},
	}
	e.settle()
	return e, nil
}

// Board returns the engine's board. Callers must treat it as read-only;
// all mutation goes through SubmitMove.
func (e *Engine) Board() *Board {
	return e.board
}

// Active returns the color to move. Meaningless once the engine is terminal.
func (e *Engine) Active() Color {
	return e.active
}

// Terminal reports whether the match is over.
func (e *Engine) Terminal() bool {
	return e.terminal
}

// MovesPlayed returns the number of stones placed so far (passes excluded).
func (e *Engine) MovesPlayed() int {
	return e.moves
}

// LegalMoves returns the legal moves for the active color, or an empty
// slice once the engine is terminal.
func (e *Engine) LegalMoves() []Move {
	if e.terminal {
		return []Move{}
	}
	return e.board.LegalMoves(e.active)
}

// SubmitMove applies a cell for the active color and advances the turn,
// handling forced passes and double-pass termination. It returns the
// flipped cells. The board is unchanged on error.
func (e *Engine) SubmitMove(c Cell) ([]Cell, error) {
	if e.terminal {
		return nil, ErrGameOver
	}
	if !c.InBounds() {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, c.Row, c.Col)
	}

	flipped, err := e.board.ApplyMove(c, e.active)
	if err != nil {
		return nil, err
	}

	e.moves++
	e.active = e.active.Opponent()
	e.settle()

	return flipped, nil
}

// settle resolves the turn after a move (or at construction): if the active
// color has no legal move the turn passes back, and if neither color can
// move the engine becomes terminal. Must short-circuit before any source is
// asked for input.
func (e *Engine) settle() {
	if e.board.HasAnyLegalMove(e.active) {
		return
	}
	if !e.board.HasAnyLegalMove(e.active.Opponent()) {
		e.terminal = true
		return
	}
	// Forced pass.
	e.active = e.active.Opponent()
}

// PlayTurn asks the active color's move source for one choice and applies
// it. ErrAwaitingInput and ErrAbandoned pass through untouched so the
// caller can hand control to its adapter or tear the match down. A source
// returning an illegal cell is a defect and is surfaced, not retried.
func (e *Engine) PlayTurn(ctx context.Context) error {
	if e.terminal {
		return ErrGameOver
	}

	legal := e.board.LegalMoves(e.active)

	cell, err := e.sources[e.active].Choose(ctx, e.board, e.active, legal)
	if err != nil {
		return err
	}

	if _, err := e.SubmitMove(cell); err != nil {
		return fmt.Errorf("move source for %s chose %s: %w", e.active, cell, err)
	}

	return nil
}

// Run plays the match to completion and returns the result. It is meant for
// fully automated matches or blocking human providers; request-driven
// matches use SubmitMove and PlayTurn directly.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	for !e.terminal {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := e.PlayTurn(ctx); err != nil {
			return Result{}, err
		}
	}
	return e.Result(), nil
}

// Result computes the final score and winner. Valid at any point, but only
// meaningful as a match result once the engine is terminal.
func (e *Engine) Result() Result {
	black, white := e.board.Score()

	outcome := OutcomeDraw
	switch {
	case black > white:
		outcome = OutcomeBlackWins
	case white > black:
		outcome = OutcomeWhiteWins
	}

	return Result{
		BlackScore: black,
		WhiteScore: white,
		Outcome:    outcome,
	}
}
