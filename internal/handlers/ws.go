package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"herohud/internal/game"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsError is sent back to the client whose command was rejected.
type wsError struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// websocket streams session updates as JSON and accepts JSON commands. A
// client sees every update of the session, including its own.
func (h *SessionHandler) websocket(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	hub, ok := h.store.Broadcaster(sess.ID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("session", sess.ID).Msg("websocket upgrade failed")
		return
	}
	logger := h.logger.With().Str("session", sess.ID).Str("transport", "ws").Logger()
	streamsActive.WithLabelValues("ws").Inc()
	defer streamsActive.WithLabelValues("ws").Dec()

	sub := hub.Subscribe()
	replies := make(chan any, 4)
	done := make(chan struct{})
	quit := make(chan struct{})
	reply := func(v any) {
		select {
		case replies <- v:
		case <-quit:
		}
	}

	go func() {
		defer close(done)
		conn.SetReadLimit(maxMessageSize)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			var cmd game.Command
			if err := conn.ReadJSON(&cmd); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Warn().Err(err).Msg("websocket read failed")
				}
				return
			}
			kind, err := game.ParseCommandKind(string(cmd.Kind))
			if err == nil {
				cmd.Kind = kind
				var update game.Update
				update, err = h.apply(sess, cmd)
				if err == nil && !cmd.Mutates() {
					reply(update)
				}
			}
			if err != nil {
				reply(wsError{Error: err.Error(), Reason: errorKind(err)})
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		close(quit)
		ticker.Stop()
		hub.Unsubscribe(sub)
		_ = conn.Close()
	}()

	if err := writeWS(conn, game.Update{Snapshot: sess.Snapshot()}); err != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case update, open := <-sub:
			if !open {
				return
			}
			if err := writeWS(conn, update); err != nil {
				logger.Debug().Err(err).Msg("websocket write failed")
				return
			}
		case msg := <-replies:
			if err := writeWS(conn, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeWS(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}
