package live

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/lexicon/internal/logging"
)

// SessionFactory creates the session for a newly connected tab.
type SessionFactory func(sink Sink, clientID string) Session

// ClientIDFunc extracts the durable client id from the upgrade request.
type ClientIDFunc func(r *http.Request) string

// Handler upgrades requests to WebSockets and feeds each connection's events
// to its own session, one at a time.
type Handler struct {
	upgrader   websocket.Upgrader
	newSession SessionFactory
	clientID   ClientIDFunc
	log        *zap.Logger
}

// NewHandler returns a WebSocket handler. checkOrigin may be nil to accept
// same-host origins only.
func NewHandler(newSession SessionFactory, clientID ClientIDFunc, checkOrigin func(*http.Request) bool) *Handler {
	return &Handler{
		upgrader:   websocket.Upgrader{CheckOrigin: checkOrigin},
		newSession: newSession,
		clientID:   clientID,
		log:        logging.Named("live"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	conn := NewConn(ws)
	defer conn.Close()

	clientID := ""
	if h.clientID != nil {
		clientID = h.clientID(r)
	}
	session := h.newSession(conn, clientID)
	defer session.Close()

	h.log.Debug("session opened", zap.String("remote_addr", r.RemoteAddr), zap.String("client_id", clientID))

	for {
		ev, err := conn.ReadEvent()
		if err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			// An empty frame decodes as io.ErrUnexpectedEOF.
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
				h.log.Warn("malformed event", zap.Error(err))
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read", zap.Error(err))
			}
			h.log.Debug("session closed", zap.String("client_id", clientID))
			return
		}
		session.Handle(ev)
	}
}
