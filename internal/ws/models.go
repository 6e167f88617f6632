package ws

import (
	"encoding/json"

	"github.com/miyakp098/reversi/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

type MatchStateRequest struct {
	MatchID string `json:"match_id"`
}

type MatchStateResponse struct {
	Match models.MatchState `json:"match"`
}
