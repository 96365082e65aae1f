package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/az-ai-labs/en-itn/internal/logging"
	"github.com/az-ai-labs/en-itn/normalize"
	"github.com/gorilla/websocket"
)

const (
	streamReadLimit = maxBodyBytes
	streamWriteWait = 10 * time.Second
	streamIdleWait  = 120 * time.Second
)

// StreamMessage is the reply to one text message on /v1/stream.
type StreamMessage struct {
	Seq     int               `json:"seq"`
	Text    string            `json:"text"`
	Written string            `json:"written"`
	Matches []normalize.Match `json:"matches,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// stream normalizes caption fragments as they arrive. Every text message is
// converted in sentence mode and answered with a StreamMessage. Binary
// messages are answered with an error message and otherwise ignored.
func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context(), s.logger)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(streamReadLimit)
	log.Info("websocket_event", "event", "client_connected")

	for seq := 1; ; seq++ {
		_ = conn.SetReadDeadline(time.Now().Add(streamIdleWait))
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("websocket read", "err", err)
			}
			log.Info("websocket_event", "event", "client_disconnected", "messages", seq-1)
			return
		}

		msg := StreamMessage{Seq: seq}
		if kind == websocket.TextMessage {
			msg.Text = string(data)
			msg.Written = s.engine.Sentence(msg.Text)
			msg.Matches = s.engine.Extract(msg.Text, 0)
		} else {
			msg.Error = "only text messages are supported"
		}

		out, err := json.Marshal(msg)
		if err != nil {
			log.Error("websocket encode", "err", err)
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			if !errors.Is(err, websocket.ErrCloseSent) {
				log.Debug("websocket write", "err", err)
			}
			return
		}
	}
}
