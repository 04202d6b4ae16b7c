package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	bj "github.com/fadedpez/blackjackr/pkg/services/blackjack"
)

const writeTimeout = 5 * time.Second

// OutcomeEvent is pushed to the browser when one of its rounds resolves
type OutcomeEvent struct {
	Type  string           `json:"type"`
	Round bj.RoundSnapshot `json:"round"`
}

// handleEvents streams the caller's resolved rounds over a websocket until
// the client goes away or the table is removed
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	tableID := s.sessionID(w, r)
	logger := s.logger.WithFields(map[string]interface{}{
		"table":  tableID,
		"remote": r.RemoteAddr,
	})

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.OriginPatterns,
	})
	if err != nil {
		logger.Warn("WebSocket accept error: %v", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "internal server error")
	logger.Info("WebSocket connected")

	events, cancel := s.tables.Subscribe(tableID)
	defer cancel()

	// the client never sends anything, CloseRead handles pings and close frames
	ctx := c.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			logger.Info("WebSocket disconnected")
			c.Close(websocket.StatusNormalClosure, "")
			return
		case snap, ok := <-events:
			if !ok {
				logger.Info("Table closed, ending event stream")
				c.Close(websocket.StatusGoingAway, "table closed")
				return
			}
			if err := writeEvent(ctx, c, OutcomeEvent{Type: "outcome", Round: snap}); err != nil {
				logger.Warn("Error writing WebSocket message: %v", err)
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, c *websocket.Conn, event OutcomeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.Write(writeCtx, websocket.MessageText, data)
}
