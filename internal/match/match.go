package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/miyakp098/reversi/internal/othello"
)

// MoveSource presets selectable per color at match creation.
const (
	PresetHuman = "human"
	PresetEasy  = "easy"
	PresetHard  = "hard"
)

var (
	// ErrUnknownPreset is returned when a match is created with a move
	// source preset that does not exist.
	ErrUnknownPreset = errors.New("unknown move source preset")

	// ErrNotHumanTurn is returned when a move is submitted while the engine
	// is not waiting for external input.
	ErrNotHumanTurn = errors.New("not waiting for a human move")
)

// newSource resolves a preset name to a move source. The second return
// value reports whether the source is human-driven.
func newSource(preset string) (othello.MoveSource, bool, error) {
	switch preset {
	case PresetHuman:
		return othello.AwaitInput(), true, nil
	case PresetEasy:
		return othello.NewAISource(othello.EasyPriority()), false, nil
	case PresetHard:
		return othello.NewAISource(othello.HardPriority()), false, nil
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}

// IsAIPreset reports whether the preset names an automated move source.
func IsAIPreset(preset string) bool {
	return preset == PresetEasy || preset == PresetHard
}

// Match is a live game owned by the server. The engine is guarded by the
// match mutex; everything adapters see goes through Snapshot.
type Match struct {
	ID        string
	Black     string
	White     string
	CreatedAt time.Time

	mu     sync.Mutex
	engine *othello.Engine
	humans [2]bool
}

// New creates a match with the given source presets and plays any leading
// AI turns, so the returned match is already waiting for input or finished.
func New(ctx context.Context, id, blackPreset, whitePreset string) (*Match, error) {
	blackSource, blackHuman, err := newSource(blackPreset)
	if err != nil {
		return nil, err
	}

	whiteSource, whiteHuman, err := newSource(whitePreset)
	if err != nil {
		return nil, err
	}

	engine, err := othello.NewEngine(blackSource, whiteSource)
	if err != nil {
		return nil, err
	}

	m := &Match{
		ID:        id,
		Black:     blackPreset,
		White:     whitePreset,
		CreatedAt: time.Now(),
		engine:    engine,
		humans:    [2]bool{othello.Black: blackHuman, othello.White: whiteHuman},
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.advanceLocked(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// advanceLocked plays AI turns until a human is to move or the match is
// over. An AI source choosing an illegal cell is a defect and surfaces as
// an error. Callers must hold the mutex.
func (m *Match) advanceLocked(ctx context.Context) error {
	for !m.engine.Terminal() {
		if m.humans[m.engine.Active()] {
			return nil
		}
		if err := m.engine.PlayTurn(ctx); err != nil {
			return fmt.Errorf("ai turn failed: %w", err)
		}
	}
	return nil
}

// SubmitMove applies a human move for the active color, then plays any AI
// replies. It returns the resulting snapshot.
func (m *Match) SubmitMove(ctx context.Context, cell othello.Cell) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.engine.Terminal() {
		return Snapshot{}, othello.ErrGameOver
	}
	if !m.humans[m.engine.Active()] {
		return Snapshot{}, ErrNotHumanTurn
	}

	if _, err := m.engine.SubmitMove(cell); err != nil {
		return Snapshot{}, err
	}

	if err := m.advanceLocked(ctx); err != nil {
		return Snapshot{}, err
	}

	return m.snapshotLocked(), nil
}

// Snapshot is an immutable copy of match state for adapters.
type Snapshot struct {
	ID            string
	Black         string
	White         string
	Active        othello.Color
	AwaitingHuman bool
	Terminal      bool
	MovesPlayed   int
	Board         *othello.Board
	Legal         []othello.Move
	Result        *othello.Result
	CreatedAt     time.Time
}

// Snapshot returns a consistent copy of the current match state.
func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Match) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:            m.ID,
		Black:         m.Black,
		White:         m.White,
		Active:        m.engine.Active(),
		AwaitingHuman: !m.engine.Terminal() && m.humans[m.engine.Active()],
		Terminal:      m.engine.Terminal(),
		MovesPlayed:   m.engine.MovesPlayed(),
		Board:         m.engine.Board().Clone(),
		Legal:         m.engine.LegalMoves(),
		CreatedAt:     m.CreatedAt,
	}

	if snap.Terminal {
		result := m.engine.Result()
		snap.Result = &result
	}

	return snap
}
