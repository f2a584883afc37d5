package view

import (
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/lexicon/internal/api"
	"github.com/ziadkadry99/lexicon/internal/live"
)

// Notice kinds, used as CSS classes.
const (
	Success = "success"
	Failure = "error"
)

const (
	textConnect = "Could not connect to server"
	textUnknown = "Unknown error"
)

// notify shows text in target and clears it after the notice delay. The
// clear only removes this notice; it is not cancelled by navigation.
func (s *Session) notify(target, text, kind string) {
	id := uuid.NewString()
	s.renderInto(target, "notice", noticeData{ID: id, Kind: kind, Text: text})

	time.AfterFunc(s.deps.NoticeDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.send(live.Clear(target, id))
	})
}

// errorText turns a failed call into the text shown to the user.
func errorText(err error) string {
	if api.IsTransport(err) {
		return textConnect
	}
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	return textUnknown
}

// loadErrorText is errorText for page loads, with a page-specific fallback.
func loadErrorText(err error, fallback string) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}
