package models

import (
	"time"

	"github.com/miyakp098/reversi/internal/match"
	"github.com/miyakp098/reversi/internal/othello"
)

// CreateMatchRequest selects a move source preset per color.
type CreateMatchRequest struct {
	Black string `json:"black"`
	White string `json:"white"`
}

// MoveRequest is a human move submission.
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveHint is a legal move with the number of stones it would flip.
type MoveHint struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Flips int `json:"flips"`
}

// Score is the stone count per color.
type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// MatchState is the full match view served to adapters: grid content for
// rendering, legal moves for hinting, active color, and at terminal the
// final score and winner.
type MatchState struct {
	ID            string     `json:"id"`
	Black         string     `json:"black"`
	White         string     `json:"white"`
	Grid          [][]string `json:"grid"`
	Turn          *string    `json:"turn"`
	AwaitingHuman bool       `json:"awaiting_human"`
	LegalMoves    []MoveHint `json:"legal_moves"`
	MovesPlayed   int        `json:"moves_played"`
	Finished      bool       `json:"finished"`
	Score         Score      `json:"score"`
	Winner        *string    `json:"winner"`
	CreatedAt     time.Time  `json:"created_at"`
}

// MatchStateFrom converts a match snapshot to its API representation.
func MatchStateFrom(snap match.Snapshot) MatchState {
	grid := make([][]string, othello.Size)
	for row := 0; row < othello.Size; row++ {
		grid[row] = make([]string, othello.Size)
		for col := 0; col < othello.Size; col++ {
			if color, ok := snap.Board.Get(othello.Cell{Row: row, Col: col}); ok {
				grid[row][col] = color.String()
			}
		}
	}

	hints := make([]MoveHint, len(snap.Legal))
	for i, move := range snap.Legal {
		hints[i] = MoveHint{
			Row:   move.Cell.Row,
			Col:   move.Cell.Col,
			Flips: len(move.Flips),
		}
	}

	black, white := snap.Board.Score()

	state := MatchState{
		ID:            snap.ID,
		Black:         snap.Black,
		White:         snap.White,
		Grid:          grid,
		AwaitingHuman: snap.AwaitingHuman,
		LegalMoves:    hints,
		MovesPlayed:   snap.MovesPlayed,
		Finished:      snap.Terminal,
		Score:         Score{Black: black, White: white},
		CreatedAt:     snap.CreatedAt,
	}

	if snap.Terminal {
		winner := snap.Result.Outcome.String()
		state.Winner = &winner
	} else {
		turn := snap.Active.String()
		state.Turn = &turn
	}

	return state
}

// MatchRecord is a finished match as stored in postgres.
type MatchRecord struct {
	ID          string    `json:"id"           db:"id"`
	BlackSource string    `json:"black_source" db:"black_source"`
	WhiteSource string    `json:"white_source" db:"white_source"`
	BlackScore  int       `json:"black_score"  db:"black_score"`
	WhiteScore  int       `json:"white_score"  db:"white_score"`
	Outcome     string    `json:"outcome"      db:"outcome"`
	MovesPlayed int       `json:"moves_played" db:"moves_played"`
	FinishedAt  time.Time `json:"finished_at"  db:"finished_at"`
}

// MatchRecordFrom builds the persistent record for a terminal snapshot.
func MatchRecordFrom(snap match.Snapshot) MatchRecord {
	return MatchRecord{
		ID:          snap.ID,
		BlackSource: snap.Black,
		WhiteSource: snap.White,
		BlackScore:  snap.Result.BlackScore,
		WhiteScore:  snap.Result.WhiteScore,
		Outcome:     snap.Result.Outcome.String(),
		MovesPlayed: snap.MovesPlayed,
		FinishedAt:  time.Now(),
	}
}

// MatchStats is one row of the aggregate results breakdown.
type MatchStats struct {
	BlackSource string `json:"black_source" db:"black_source"`
	WhiteSource string `json:"white_source" db:"white_source"`
	Outcome     string `json:"outcome"      db:"outcome"`
	Count       int    `json:"count"        db:"count"`
}
