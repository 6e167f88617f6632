package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/miyakp098/reversi/internal/match"
	"github.com/miyakp098/reversi/internal/models"
	"github.com/miyakp098/reversi/internal/repository"
	"github.com/miyakp098/reversi/internal/services"
)

const lookupTimeout = 2 * time.Second

// Handler serves request/response events over a websocket connection. It is
// a read-only view of matches: moves are never accepted on this path.
type Handler struct {
	services *services.Services
	matches  *match.Manager
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services, matches *match.Manager) *Handler {
	return &Handler{services: services, matches: matches, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "match_state":
		return h.handleMatchState(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

// handleMatchState returns the current state for a match ID. Live matches
// come from the registry; evicted ones fall back to the redis snapshot.
func (h *Handler) handleMatchState(req *Incoming) (*Outgoing, error) {
	var reqData MatchStateRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws match state request unmarshal error: %w", err)
	}

	var state models.MatchState

	if m, err := h.matches.Get(reqData.MatchID); err == nil {
		state = models.MatchStateFrom(m.Snapshot())
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		repo := repository.NewMatchRepositoryFromServices(h.services)
		state, err = repo.LoadSnapshot(ctx, reqData.MatchID)
		if err != nil {
			return nil, fmt.Errorf("failed to load match state: %w", err)
		}
	}

	outgoing := &Outgoing{
		ID: req.ID,
		Data: MatchStateResponse{
			Match: state,
		},
	}

	return outgoing, nil
}
