package live

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type echoSession struct {
	sink     Sink
	clientID string
	mu       sync.Mutex
	events   []Event
	closed   chan struct{}
}

func (s *echoSession) Handle(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	s.sink.Send(Render("app", ev.Type+":"+ev.Path+s.clientID))
}

func (s *echoSession) Close() { close(s.closed) }

func startHandler(t *testing.T) (*httptest.Server, chan *echoSession) {
	t.Helper()
	sessions := make(chan *echoSession, 1)
	h := NewHandler(func(sink Sink, clientID string) Session {
		s := &echoSession{sink: sink, clientID: clientID, closed: make(chan struct{})}
		sessions <- s
		return s
	}, func(r *http.Request) string {
		return r.URL.Query().Get("client")
	}, nil)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, sessions
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestHandlerRoundTrip(t *testing.T) {
	srv, sessions := startHandler(t)
	ws := dial(t, srv, "?client=abc")

	if err := ws.WriteJSON(Event{Type: EventNavigate, Path: "/words"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != MsgRender || msg.Target != "app" || msg.HTML != "navigate:/wordsabc" {
		t.Errorf("unexpected message: %+v", msg)
	}

	s := <-sessions
	if s.clientID != "abc" {
		t.Errorf("client id: got %q", s.clientID)
	}
}

func TestHandlerSkipsMalformedEvents(t *testing.T) {
	srv, _ := startHandler(t)
	ws := dial(t, srv, "")

	ws.WriteMessage(websocket.TextMessage, []byte("{not json"))
	ws.WriteMessage(websocket.TextMessage, []byte(`{"type":5}`))
	ws.WriteMessage(websocket.TextMessage, []byte{})
	ws.WriteMessage(websocket.TextMessage, []byte("   "))
	ws.WriteJSON(Event{Type: EventAction, Name: "save"})

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.HTML != "action:" {
		t.Errorf("expected the valid event to be handled, got %+v", msg)
	}
}

func TestHandlerClosesSession(t *testing.T) {
	srv, sessions := startHandler(t)
	ws := dial(t, srv, "")
	ws.WriteJSON(Event{Type: EventNavigate, Path: "/"})
	s := <-sessions

	ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	ws.Close()

	select {
	case <-s.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("session was not closed")
	}
}

func TestMessageConstructors(t *testing.T) {
	if m := Disabled("save", true); m.Type != MsgAttr || m.Name != "disabled" || m.Remove {
		t.Errorf("Disabled(true) = %+v", m)
	}
	if m := Disabled("save", false); !m.Remove {
		t.Errorf("Disabled(false) = %+v", m)
	}
	if m := Clear("message", "n1"); m.Type != MsgClear || m.Notice != "n1" {
		t.Errorf("Clear = %+v", m)
	}
	if m := SetValue("field-word", ""); m.Type != MsgValue || m.Target != "field-word" {
		t.Errorf("SetValue = %+v", m)
	}
}

func TestAssets(t *testing.T) {
	srv := httptest.NewServer(http.StripPrefix("/assets/", Assets()))
	defer srv.Close()

	for _, name := range []string{"app.js", "style.css"} {
		resp, err := http.Get(srv.URL + "/assets/" + name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || len(body) == 0 {
			t.Errorf("%s: status %d, %d bytes", name, resp.StatusCode, len(body))
		}
	}
}
