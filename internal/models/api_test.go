package models

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miyakp098/reversi/internal/match"
)

func TestMatchStateFrom_FreshMatch(t *testing.T) {
	m, err := match.New(context.Background(), "match-1", match.PresetHuman, match.PresetHuman)
	require.NoError(t, err)

	state := MatchStateFrom(m.Snapshot())

	require.Equal(t, "match-1", state.ID)
	require.Equal(t, match.PresetHuman, state.Black)
	require.Equal(t, match.PresetHuman, state.White)
	require.False(t, state.Finished)
	require.Nil(t, state.Winner)
	require.NotNil(t, state.Turn)
	require.Equal(t, "black", *state.Turn)
	require.True(t, state.AwaitingHuman)
	require.Equal(t, 0, state.MovesPlayed)
	require.Equal(t, Score{Black: 2, White: 2}, state.Score)

	// Grid has the four starting stones, everything else empty.
	require.Len(t, state.Grid, 8)
	occupied := 0
	for _, row := range state.Grid {
		require.Len(t, row, 8)
		for _, square := range row {
			if square != "" {
				occupied++
			}
		}
	}
	require.Equal(t, 4, occupied)
	require.Equal(t, "white", state.Grid[3][3])
	require.Equal(t, "black", state.Grid[3][4])
	require.Equal(t, "black", state.Grid[4][3])
	require.Equal(t, "white", state.Grid[4][4])

	// Opening hints: four moves, one flip each.
	require.Len(t, state.LegalMoves, 4)
	for _, hint := range state.LegalMoves {
		require.Equal(t, 1, hint.Flips)
	}
}

func TestMatchStateFrom_FinishedMatch(t *testing.T) {
	m, err := match.New(context.Background(), "match-2", match.PresetEasy, match.PresetHard)
	require.NoError(t, err)

	state := MatchStateFrom(m.Snapshot())

	require.True(t, state.Finished)
	require.Nil(t, state.Turn)
	require.False(t, state.AwaitingHuman)
	require.Empty(t, state.LegalMoves)
	require.NotNil(t, state.Winner)

	switch state.Score.Black - state.Score.White {
	case 0:
		require.Equal(t, "draw", *state.Winner)
	default:
		if state.Score.Black > state.Score.White {
			require.Equal(t, "black", *state.Winner)
		} else {
			require.Equal(t, "white", *state.Winner)
		}
	}
}

func TestMatchState_RoundTripsThroughJSON(t *testing.T) {
	m, err := match.New(context.Background(), "match-3", match.PresetHuman, match.PresetEasy)
	require.NoError(t, err)

	state := MatchStateFrom(m.Snapshot())

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded MatchState
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, state.ID, decoded.ID)
	require.Equal(t, state.Grid, decoded.Grid)
	require.Equal(t, state.LegalMoves, decoded.LegalMoves)
	require.Equal(t, state.Score, decoded.Score)
}

func TestMatchRecordFrom(t *testing.T) {
	m, err := match.New(context.Background(), "match-4", match.PresetHard, match.PresetEasy)
	require.NoError(t, err)

	snap := m.Snapshot()
	record := MatchRecordFrom(snap)

	require.Equal(t, "match-4", record.ID)
	require.Equal(t, match.PresetHard, record.BlackSource)
	require.Equal(t, match.PresetEasy, record.WhiteSource)
	require.Equal(t, snap.Result.BlackScore, record.BlackScore)
	require.Equal(t, snap.Result.WhiteScore, record.WhiteScore)
	require.Equal(t, snap.Result.Outcome.String(), record.Outcome)
	require.Equal(t, snap.MovesPlayed, record.MovesPlayed)
	require.False(t, record.FinishedAt.IsZero())
}
