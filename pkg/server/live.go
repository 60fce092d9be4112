package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Live session limits.
const (
	liveReadTimeout  = 60 * time.Second
	liveWriteTimeout = 10 * time.Second
	liveMaxMessage   = 4096
)

// liveRequest is one client message on the live endpoint.
type liveRequest struct {
	// Type selects the operation: "navigate" or "ping".
	Type string `json:"type"`

	// Path is the raw browser path for navigate requests.
	Path string `json:"path"`
}

// liveResponse is one server message on the live endpoint.
type liveResponse struct {
	// Type is "path", "pong", or "error".
	Type string `json:"type"`

	// Path carries the parsed navigation path for "path" responses.
	Path []segmentJSON `json:"path,omitempty"`

	// Canonical is the serialized form of Path.
	Canonical string `json:"canonical,omitempty"`

	// Error describes the problem for "error" responses.
	Error string `json:"error,omitempty"`
}

// handleLive upgrades to WebSocket and answers navigate events with
// parsed navigation paths until the client goes away.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(liveMaxMessage)
	s.logger.Info("live session opened", "remote", conn.RemoteAddr())

	for {
		conn.SetReadDeadline(time.Now().Add(liveReadTimeout))

		var req liveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("live read error", "error", err)
			}
			return
		}

		resp := s.handleLiveRequest(req)

		conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("live write error", "error", err)
			return
		}
	}
}

// handleLiveRequest processes one live message. Unknown types and
// navigate requests both get a response; the session never drops
// because of a bad message.
func (s *Server) handleLiveRequest(req liveRequest) liveResponse {
	switch req.Type {
	case "navigate":
		parsed := s.toPathJSON(s.matcher.Parse(req.Path))
		return liveResponse{
			Type:      "path",
			Path:      parsed.Path,
			Canonical: parsed.Canonical,
		}

	case "ping":
		return liveResponse{Type: "pong"}

	default:
		return liveResponse{Type: "error", Error: "unknown message type"}
	}
}
