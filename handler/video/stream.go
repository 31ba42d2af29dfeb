package video

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mager/sleeve/fal"
	"go.uber.org/zap"
)

// Stream message types.
const (
	MessageStatus = "status"
	MessageResult = "result"
	MessageError  = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamHandler runs a video job over a websocket and pushes queue updates
// while it waits. The client sends one Request message after connecting.
type StreamHandler struct {
	log       *zap.SugaredLogger
	falClient *fal.FalClient
}

func (*StreamHandler) Pattern() string {
	return "/video/stream"
}

func (*StreamHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewStreamHandler builds a new StreamHandler.
func NewStreamHandler(log *zap.SugaredLogger, falClient *fal.FalClient) *StreamHandler {
	return &StreamHandler{
		log:       log,
		falClient: falClient,
	}
}

type StreamMessage struct {
	Type   string           `json:"type"`
	Update *fal.QueueUpdate `json:"update,omitempty"`
	Result *Response        `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorw("Error upgrading connection to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	if !h.falClient.Configured() {
		h.send(conn, StreamMessage{Type: MessageError, Error: "FAL API key not configured"})
		return
	}

	var req Request
	if err := conn.ReadJSON(&req); err != nil {
		h.send(conn, StreamMessage{Type: MessageError, Error: "invalid request: " + err.Error()})
		return
	}
	in, err := req.toFal()
	if err != nil {
		h.send(conn, StreamMessage{Type: MessageError, Error: err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client sends nothing after the request, so any read error means
	// the connection is gone.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	video, err := h.falClient.Subscribe(ctx, in, func(u fal.QueueUpdate) {
		if err := h.send(conn, StreamMessage{Type: MessageStatus, Update: &u}); err != nil {
			cancel()
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			h.log.Infow("Client disconnected, abandoning video job", "error", err)
			return
		}
		h.log.Errorw("video generation failed", "error", err)
		h.send(conn, StreamMessage{Type: MessageError, Error: err.Error()})
		return
	}

	h.send(conn, StreamMessage{Type: MessageResult, Result: &Response{
		Success:   true,
		VideoURL:  video.VideoURL,
		RequestID: video.RequestID,
	}})
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *StreamHandler) send(conn *websocket.Conn, msg StreamMessage) error {
	if err := conn.WriteJSON(msg); err != nil {
		h.log.Errorw("Error sending WebSocket message", "error", err)
		return err
	}
	return nil
}
