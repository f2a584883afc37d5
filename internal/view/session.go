// Package view renders the client's pages and reacts to the events of one
// browser tab.
package view

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/lexicon/internal/api"
	"github.com/ziadkadry99/lexicon/internal/form"
	"github.com/ziadkadry99/lexicon/internal/live"
	"github.com/ziadkadry99/lexicon/internal/logging"
	"github.com/ziadkadry99/lexicon/internal/prefs"
	"github.com/ziadkadry99/lexicon/internal/router"
)

// Actions the browser can trigger.
const (
	ActionEdit   = "edit"
	ActionSave   = "save"
	ActionCancel = "cancel"
	ActionCreate = "create"
	ActionTest   = "test"
)

// DefaultNoticeDelay is how long a notice stays visible.
const DefaultNoticeDelay = 3 * time.Second

// Deps are the collaborators shared by every session.
type Deps struct {
	API         *api.Client
	Prefs       *prefs.Store // optional
	Router      *router.Router
	Renderer    *Renderer
	NoticeDelay time.Duration
}

type status int

const (
	idle status = iota
	loading
)

// viewState is everything a page knows while it is on screen. A new one is
// made on every navigation; results that arrive for an old one are dropped.
type viewState struct {
	ctx    context.Context
	cancel context.CancelFunc
	page   router.Page
	params router.Params
	status status
	busy   bool

	word      *api.Word
	language  *api.Language
	languages []api.Language
	codes     map[string]bool
	codeByID  map[int64]string

	edit   *form.Edit
	create *form.Create
}

// Session is the server side of one browser tab.
type Session struct {
	deps     Deps
	sink     live.Sink
	clientID string
	log      *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	view   *viewState
	closed bool
}

// NewSession creates the session for a tab that sends its updates to sink.
// clientID keys the tab's durable preferences; it may be empty.
func NewSession(deps Deps, sink live.Sink, clientID string) *Session {
	if deps.NoticeDelay <= 0 {
		deps.NoticeDelay = DefaultNoticeDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		deps:     deps,
		sink:     sink,
		clientID: clientID,
		log:      logging.Named("view").With(zap.String("client_id", clientID)),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Factory adapts NewSession to live.SessionFactory.
func Factory(deps Deps) live.SessionFactory {
	return func(sink live.Sink, clientID string) live.Session {
		return NewSession(deps, sink, clientID)
	}
}

// Handle applies one browser event.
func (s *Session) Handle(ev live.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch ev.Type {
	case live.EventNavigate:
		s.navigate(ev.Path)
	case live.EventInput:
		s.input(ev.Field, ev.Value)
	case live.EventAction:
		s.action(ev.Name)
	default:
		s.log.Debug("ignoring event", zap.String("type", ev.Type))
	}
}

// Close abandons the current view and waits for outstanding requests.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

// Wait blocks until every outstanding request has settled.
func (s *Session) Wait() { s.wg.Wait() }

func (s *Session) navigate(path string) {
	if s.view != nil {
		s.view.cancel()
	}
	page, params := s.deps.Router.Match(path)
	ctx, cancel := context.WithCancel(s.ctx)
	v := &viewState{ctx: ctx, cancel: cancel, page: page, params: params}
	s.view = v

	s.log.Debug("navigate", zap.String("path", path), zap.String("page", string(page)))
	s.send(live.Title(pageTitles[page] + " | " + s.deps.Renderer.Title()))

	switch page {
	case router.Test:
		s.renderInto("app", "test", nil)
	case router.Words:
		s.renderInto("app", "words", nil)
		s.loadWords(v)
	case router.Languages:
		s.renderInto("app", "languages", nil)
		s.loadLanguages(v)
	case router.WordDetail:
		s.renderInto("app", "word-detail", nil)
		s.loadWord(v)
	case router.LanguageDetail:
		s.renderInto("app", "language-detail", nil)
		s.loadLanguage(v)
	case router.AddWord:
		v.create = form.NewCreate(wordFields, []string{"word", "pos"}, nil)
		s.renderInto("app", "add-word", nil)
		s.loadWordForm(v)
	case router.AddLanguage:
		v.create = form.NewCreate(languageFields, languageFields, nil)
		s.renderInto("app", "add-language", nil)
	default:
		s.renderInto("app", "home", homeData{Title: s.deps.Renderer.Title(), Intro: s.deps.Renderer.intro})
	}
}

func (s *Session) input(field, value string) {
	v := s.view
	if v == nil {
		return
	}
	var err error
	switch {
	case v.edit != nil:
		err = v.edit.Set(field, value)
	case v.create != nil:
		err = v.create.Set(field, value)
	default:
		return
	}
	if err != nil {
		s.log.Debug("ignoring input", zap.Error(err))
		return
	}
	s.refreshSave(v)
}

func (s *Session) action(name string) {
	v := s.view
	if v == nil {
		return
	}
	if v.status == loading {
		s.log.Debug("ignoring action while loading", zap.String("action", name), zap.String("page", string(v.page)))
		return
	}
	switch {
	case name == ActionTest && v.page == router.Test:
		s.runTest(v)
	case name == ActionEdit && v.page == router.WordDetail:
		s.editWord(v)
	case name == ActionEdit && v.page == router.LanguageDetail:
		s.editLanguage(v)
	case name == ActionSave && v.page == router.WordDetail:
		s.saveWord(v)
	case name == ActionSave && v.page == router.LanguageDetail:
		s.saveLanguage(v)
	case name == ActionCancel && v.page == router.WordDetail:
		s.cancelEdit(v, s.renderWordView)
	case name == ActionCancel && v.page == router.LanguageDetail:
		s.cancelEdit(v, s.renderLanguageView)
	case name == ActionCreate && v.page == router.AddWord:
		s.createWord(v)
	case name == ActionCreate && v.page == router.AddLanguage:
		s.createLanguage(v)
	default:
		s.log.Debug("ignoring action", zap.String("action", name), zap.String("page", string(v.page)))
	}
}

// canSave reports whether the page's save button may be used: the form
// allows it, the page has loaded and no request is in flight.
func (v *viewState) canSave() bool {
	if v.busy || v.status == loading {
		return false
	}
	switch {
	case v.edit != nil:
		return v.edit.CanSave()
	case v.create != nil:
		return v.create.CanSave()
	}
	return false
}

func (s *Session) refreshSave(v *viewState) {
	s.send(live.Disabled("save", !v.canSave()))
}

// async runs call off the event loop, then hands its error to apply under
// the session lock, unless v has been replaced or the session closed.
func (s *Session) async(v *viewState, call func(ctx context.Context) error, apply func(err error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := call(v.ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.view != v {
			s.log.Debug("dropping result for abandoned view", zap.String("page", string(v.page)))
			return
		}
		apply(err)
	}()
}

// send must be called with s.mu held.
func (s *Session) send(msgs ...live.Message) {
	for _, m := range msgs {
		if err := s.sink.Send(m); err != nil {
			s.log.Debug("send failed", zap.String("type", m.Type), zap.Error(err))
			return
		}
	}
}

func (s *Session) renderInto(target, name string, data any) {
	html, err := s.deps.Renderer.Render(name, data)
	if err != nil {
		s.log.Error("render failed", zap.String("template", name), zap.Error(err))
		return
	}
	s.send(live.Render(target, html))
}

var pageTitles = map[router.Page]string{
	router.Home:           "Home",
	router.Test:           "Test",
	router.Words:          "Words",
	router.AddWord:        "Add Word",
	router.Languages:      "Languages",
	router.AddLanguage:    "Add Language",
	router.WordDetail:     "Word",
	router.LanguageDetail: "Language",
}
