package web

import (
	"encoding/json"
	"net/http"

	"github.com/fadedpez/blackjackr/internal/types"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

type errorResponse struct {
	Code    types.ErrorCode `json:"code"`
	Message string          `json:"message"`
}

// handleRound returns the caller's round, dealing one on first visit
func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	snap, err := s.tables.Snapshot(s.sessionID(w, r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleAction runs a round action for the caller and returns the new round.
// Actions on a resolved round leave it unchanged.
func (s *Server) handleAction(action func(tableID string) (bj.RoundSnapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := action(s.sessionID(w, r))
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var gameErr *types.GameError
	if !types.As(err, &gameErr) {
		s.logger.Error("Unexpected error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    types.ErrInternalError,
			Message: "internal error",
		})
		return
	}

	s.logger.LogError(gameErr)
	writeJSON(w, statusFor(gameErr.Code), errorResponse{
		Code:    gameErr.Code,
		Message: gameErr.Message,
	})
}

func errorCode(err error) types.ErrorCode {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		return gameErr.Code
	}
	return types.ErrInternalError
}

func statusFor(code types.ErrorCode) int {
	switch code {
	case types.ErrInvalidArgument, types.ErrInvalidAction, types.ErrInvalidCommand:
		return http.StatusBadRequest
	case types.ErrGameNotFound:
		return http.StatusNotFound
	case types.ErrEmptyDeck, types.ErrInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
