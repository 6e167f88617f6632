package othello

import (
	"context"
	"fmt"
	"math/rand"
)

// MoveSource produces one chosen cell for a color, given the board and the
// legal moves computed by the engine. Sources never mutate the board; the
// engine applies the chosen cell itself.
type MoveSource interface {
	Choose(ctx context.Context, board *Board, color Color, legal []Move) (Cell, error)
}

// ChooseFunc adapts an external move provider (what the input adapter
// supplies) to the MoveSource interface.
type ChooseFunc func(ctx context.Context, board *Board, color Color, legal []Move) (Cell, error)

// HumanSource wraps a provider callback for human players driven by a
// synchronous adapter, e.g. a local console loop. The provider must return
// a cell or an error signaling abandonment; it must not apply the move.
type HumanSource struct {
	Provide ChooseFunc
}

func (s *HumanSource) Choose(ctx context.Context, board *Board, color Color, legal []Move) (Cell, error) {
	if s.Provide == nil {
		return Cell{}, fmt.Errorf("human source for %s has no provider: %w", color, ErrAbandoned)
	}
	return s.Provide(ctx, board, color, legal)
}

// awaitSource is the human variant for request-driven adapters such as the
// HTTP API: the engine hands control back and the adapter later submits the
// chosen cell directly.
type awaitSource struct{}

func (awaitSource) Choose(context.Context, *Board, Color, []Move) (Cell, error) {
	return Cell{}, ErrAwaitingInput
}

// AwaitInput returns a MoveSource that always defers to external input.
func AwaitInput() MoveSource {
	return awaitSource{}
}

// AISource selects moves by positional priority: among the legal moves it
// keeps those with the maximum matrix value and picks one of them uniformly
// at random. No lookahead.
type AISource struct {
	matrix PriorityMatrix

	// pick returns an index in [0, n). Replaceable in tests.
	pick func(n int) int
}

// NewAISource creates an AI move source using the given priority matrix.
func NewAISource(matrix PriorityMatrix) *AISource {
	return &AISource{
		matrix: matrix,
		pick:   rand.Intn,
	}
}

func (s *AISource) Choose(_ context.Context, _ *Board, color Color, legal []Move) (Cell, error) {
	if len(legal) == 0 {
		return Cell{}, fmt.Errorf("ai source for %s called without legal moves", color)
	}

	best := make([]Cell, 0, len(legal))
	highest := -1

	for _, move := range legal {
		priority := s.matrix.At(move.Cell)
		if priority > highest {
			highest = priority
			best = best[:0]
		}
		if priority == highest {
			best = append(best, move.Cell)
		}
	}

	return best[s.pick(len(best))], nil
}
