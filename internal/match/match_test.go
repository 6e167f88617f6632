package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miyakp098/reversi/internal/othello"
)

func TestNew_UnknownPreset(t *testing.T) {
	_, err := New(context.Background(), "id", "grandmaster", PresetEasy)
	require.ErrorIs(t, err, ErrUnknownPreset)

	_, err = New(context.Background(), "id", PresetHuman, "")
	require.ErrorIs(t, err, ErrUnknownPreset)
}

func TestNew_HumanVsAI(t *testing.T) {
	m, err := New(context.Background(), "id", PresetHuman, PresetHard)
	require.NoError(t, err)

	snap := m.Snapshot()
	require.True(t, snap.AwaitingHuman)
	require.False(t, snap.Terminal)
	require.Equal(t, othello.Black, snap.Active)
	require.Equal(t, 0, snap.MovesPlayed)
	require.Len(t, snap.Legal, 4)
	require.Nil(t, snap.Result)
}

func TestNew_AIvsAIPlaysOut(t *testing.T) {
	m, err := New(context.Background(), "id", PresetHard, PresetEasy)
	require.NoError(t, err)

	snap := m.Snapshot()
	require.True(t, snap.Terminal)
	require.False(t, snap.AwaitingHuman)
	require.Empty(t, snap.Legal)
	require.NotNil(t, snap.Result)
	require.LessOrEqual(t, snap.MovesPlayed, 60)

	black, white := snap.Board.Score()
	require.Equal(t, snap.Result.BlackScore, black)
	require.Equal(t, snap.Result.WhiteScore, white)

	// Moves are rejected once the match is over.
	_, err = m.SubmitMove(context.Background(), othello.Cell{Row: 2, Col: 3})
	require.ErrorIs(t, err, othello.ErrGameOver)
}

func TestMatch_SubmitMove(t *testing.T) {
	m, err := New(context.Background(), "id", PresetHuman, PresetEasy)
	require.NoError(t, err)

	snap, err := m.SubmitMove(context.Background(), othello.Cell{Row: 2, Col: 3})
	require.NoError(t, err)

	// The AI reply already happened: it is black's turn again (or the
	// match ended, which cannot happen this early).
	require.True(t, snap.AwaitingHuman)
	require.Equal(t, othello.Black, snap.Active)
	require.Equal(t, 2, snap.MovesPlayed)
}

func TestMatch_SubmitMove_Illegal(t *testing.T) {
	m, err := New(context.Background(), "id", PresetHuman, PresetEasy)
	require.NoError(t, err)

	_, err = m.SubmitMove(context.Background(), othello.Cell{Row: 0, Col: 0})
	require.ErrorIs(t, err, othello.ErrIllegalMove)

	_, err = m.SubmitMove(context.Background(), othello.Cell{Row: 9, Col: 0})
	require.ErrorIs(t, err, othello.ErrInvalidCoordinate)

	// The match is untouched.
	snap := m.Snapshot()
	require.Equal(t, 0, snap.MovesPlayed)
	require.True(t, snap.AwaitingHuman)
}

func TestMatch_HumanVsHuman(t *testing.T) {
	m, err := New(context.Background(), "id", PresetHuman, PresetHuman)
	require.NoError(t, err)

	snap, err := m.SubmitMove(context.Background(), othello.Cell{Row: 2, Col: 3})
	require.NoError(t, err)
	require.Equal(t, othello.White, snap.Active)
	require.True(t, snap.AwaitingHuman)
	require.Equal(t, 1, snap.MovesPlayed)

	// White replies with one of its legal moves.
	require.NotEmpty(t, snap.Legal)
	snap, err = m.SubmitMove(context.Background(), snap.Legal[0].Cell)
	require.NoError(t, err)
	require.Equal(t, othello.Black, snap.Active)
	require.Equal(t, 2, snap.MovesPlayed)
}

func TestMatch_SnapshotIsACopy(t *testing.T) {
	m, err := New(context.Background(), "id", PresetHuman, PresetHuman)
	require.NoError(t, err)

	snap := m.Snapshot()
	_, err = snap.Board.ApplyMove(othello.Cell{Row: 2, Col: 3}, othello.Black)
	require.NoError(t, err)

	// Mutating the snapshot board must not leak into the live match.
	fresh := m.Snapshot()
	black, white := fresh.Board.Score()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
}

func TestManager(t *testing.T) {
	mgr := NewManager()
	require.Equal(t, 0, mgr.Count())

	m, err := mgr.Create(context.Background(), PresetHuman, PresetEasy)
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	require.Equal(t, 1, mgr.Count())

	got, err := mgr.Get(m.ID)
	require.NoError(t, err)
	require.Equal(t, m, got)

	_, err = mgr.Get("does-not-exist")
	require.ErrorIs(t, err, ErrMatchNotFound)

	mgr.Remove(m.ID)
	require.Equal(t, 0, mgr.Count())

	_, err = mgr.Get(m.ID)
	require.ErrorIs(t, err, ErrMatchNotFound)
}

func TestManager_CreateUnknownPreset(t *testing.T) {
	mgr := NewManager()

	_, err := mgr.Create(context.Background(), "nope", PresetEasy)
	require.ErrorIs(t, err, ErrUnknownPreset)
	require.Equal(t, 0, mgr.Count())
}

func TestIsAIPreset(t *testing.T) {
	require.True(t, IsAIPreset(PresetEasy))
	require.True(t, IsAIPreset(PresetHard))
	require.False(t, IsAIPreset(PresetHuman))
	require.False(t, IsAIPreset(""))
}
