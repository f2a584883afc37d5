// Package apitest provides an in-memory stand-in for the dictionary service,
// for tests that need a real HTTP endpoint.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/lexicon/internal/api"
)

// Route keys used with Fail and Hold.
const (
	ListWords      = "GET /api/words"
	GetWord        = "GET /api/words/{id}"
	UpdateWord     = "PUT /api/word"
	CreateWord     = "POST /api/word"
	ListLanguages  = "GET /api/languages"
	GetLanguage    = "GET /api/languages/{id}"
	UpdateLanguage = "PUT /api/language"
	CreateLanguage = "POST /api/language"
	Test           = "GET /api/test"
)

type failure struct {
	status  int
	message string
}

// Backend is an in-memory dictionary service.
type Backend struct {
	mu        sync.Mutex
	words     map[int64]api.Word
	languages map[int64]api.Language
	nextWord  int64
	nextLang  int64
	failures  map[string]failure
	holds     map[string]chan struct{}
	calls     map[string]int
	router    chi.Router
}

// NewBackend returns an empty backend.
func NewBackend() *Backend {
	b := &Backend{
		words:     make(map[int64]api.Word),
		languages: make(map[int64]api.Language),
		nextWord:  1,
		nextLang:  1,
		failures:  make(map[string]failure),
		holds:     make(map[string]chan struct{}),
		calls:     make(map[string]int),
	}
	b.router = b.buildRouter()
	return b
}

// NewServer starts a seeded backend behind an httptest.Server that is closed
// when the test ends.
func NewServer(t *testing.T) (*httptest.Server, *Backend) {
	t.Helper()
	b := NewBackend()
	b.Seed()
	srv := httptest.NewServer(b)
	t.Cleanup(func() {
		b.ReleaseAll()
		srv.Close()
	})
	return srv, b
}

// Seed loads a small fixed dataset: languages en and de, three words.
func (b *Backend) Seed() {
	en := b.AddLanguage("en", "English")
	b.AddLanguage("de", "German")
	b.AddWord("horse", "noun", en.Code)
	b.AddWord("run", "verb", en.Code)
	b.AddWord("Hund", "noun", "de")
}

// AddLanguage stores a language and returns it with its assigned id.
func (b *Backend) AddLanguage(code, name string) api.Language {
	b.mu.Lock()
	defer b.mu.Unlock()
	l := api.Language{ID: b.nextLang, Code: code, Name: name}
	b.languages[l.ID] = l
	b.nextLang++
	return l
}

// AddWord stores a word and returns it with its assigned id.
func (b *Backend) AddWord(word, pos, language string) api.Word {
	b.mu.Lock()
	defer b.mu.Unlock()
	w := api.Word{ID: b.nextWord, Word: word, POS: pos, Language: api.LanguageRef(language)}
	b.words[w.ID] = w
	b.nextWord++
	return w
}

// Word returns the stored word with the given id.
func (b *Backend) Word(id int64) (api.Word, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.words[id]
	return w, ok
}

// Language returns the stored language with the given id.
func (b *Backend) Language(id int64) (api.Language, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.languages[id]
	return l, ok
}

// Fail makes every request to route answer with status and message until
// Recover is called. An empty message sends a body without error text.
func (b *Backend) Fail(route string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = failure{status: status, message: message}
}

// Recover undoes Fail for route.
func (b *Backend) Recover(route string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, route)
}

// Hold makes requests to route wait until the returned release func is
// called (or the request is cancelled).
func (b *Backend) Hold(route string) (release func()) {
	ch := make(chan struct{})
	b.mu.Lock()
	b.holds[route] = ch
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		owned := b.holds[route] == ch
		if owned {
			delete(b.holds, route)
		}
		b.mu.Unlock()
		if owned {
			close(ch)
		}
	}
}

// ReleaseAll releases every pending Hold.
func (b *Backend) ReleaseAll() {
	b.mu.Lock()
	holds := b.holds
	b.holds = make(map[string]chan struct{})
	b.mu.Unlock()
	for _, ch := range holds {
		close(ch)
	}
}

// Calls returns how many requests route has received.
func (b *Backend) Calls(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// ServeHTTP implements http.Handler.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

func (b *Backend) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/test", b.wrap(Test, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "OK"})
	}))
	r.Get("/api/words", b.wrap(ListWords, b.handleListWords))
	r.Get("/api/words/{id}", b.wrap(GetWord, b.handleGetWord))
	r.Put("/api/word", b.wrap(UpdateWord, b.handleUpdateWord))
	r.Post("/api/word", b.wrap(CreateWord, b.handleCreateWord))
	r.Get("/api/languages", b.wrap(ListLanguages, b.handleListLanguages))
	r.Get("/api/languages/{id}", b.wrap(GetLanguage, b.handleGetLanguage))
	r.Put("/api/language", b.wrap(UpdateLanguage, b.handleUpdateLanguage))
	r.Post("/api/language", b.wrap(CreateLanguage, b.handleCreateLanguage))
	return r
}

// wrap counts calls, applies holds and injected failures for route.
func (b *Backend) wrap(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[route]++
		hold := b.holds[route]
		f, failing := b.failures[route]
		b.mu.Unlock()

		if hold != nil {
			select {
			case <-hold:
			case <-r.Context().Done():
				return
			}
		}
		if failing {
			if f.message == "" {
				writeJSON(w, f.status, map[string]string{})
				return
			}
			writeJSON(w, f.status, map[string]string{"error": f.message})
			return
		}
		h(w, r)
	}
}

func (b *Backend) handleListWords(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	words := make([]api.Word, 0, len(b.words))
	for _, wd := range b.words {
		words = append(words, wd)
	}
	b.mu.Unlock()
	sort.Slice(words, func(i, j int) bool { return words[i].ID < words[j].ID })
	writeJSON(w, http.StatusOK, map[string]any{"words": words})
}

func (b *Backend) handleGetWord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid word id")
		return
	}
	wd, ok := b.Word(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Word not found")
		return
	}
	writeJSON(w, http.StatusOK, wd)
}

func (b *Backend) handleUpdateWord(w http.ResponseWriter, r *http.Request) {
	var in api.Word
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := b.validateWord(in.Word, in.POS, string(in.Language)); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.words[in.ID]; !ok {
		writeError(w, http.StatusNotFound, "Word not found")
		return
	}
	b.words[in.ID] = in
	writeJSON(w, http.StatusOK, api.Result{Message: "Word updated"})
}

func (b *Backend) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	var in api.NewWord
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := b.validateWord(in.Word, in.POS, string(in.Language)); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	b.AddWord(in.Word, in.POS, string(in.Language))
	writeJSON(w, http.StatusCreated, api.Result{Message: "Word created"})
}

func (b *Backend) validateWord(word, pos, language string) string {
	if strings.TrimSpace(word) == "" {
		return "Word is required"
	}
	if strings.TrimSpace(pos) == "" {
		return "Part of speech is required"
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, l := range b.languages {
		if l.Code == language || strconv.FormatInt(l.ID, 10) == language {
			return ""
		}
	}
	return "Unknown language"
}

func (b *Backend) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	langs := make([]api.Language, 0, len(b.languages))
	for _, l := range b.languages {
		langs = append(langs, l)
	}
	b.mu.Unlock()
	sort.Slice(langs, func(i, j int) bool { return langs[i].ID < langs[j].ID })
	writeJSON(w, http.StatusOK, map[string]any{"languages": langs})
}

func (b *Backend) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid language id")
		return
	}
	l, ok := b.Language(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Language not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (b *Backend) handleUpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var in api.Language
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "Code and name are required")
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.languages[in.ID]; !ok {
		writeError(w, http.StatusNotFound, "Language not found")
		return
	}
	b.languages[in.ID] = in
	writeJSON(w, http.StatusOK, api.Result{Message: "Language updated"})
}

func (b *Backend) handleCreateLanguage(w http.ResponseWriter, r *http.Request) {
	var in api.NewLanguage
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		writeError(w, http.StatusBadRequest, "Code and name are required")
		return
	}
	b.mu.Lock()
	for _, l := range b.languages {
		if l.Code == in.Code {
			b.mu.Unlock()
			writeError(w, http.StatusConflict, "Language code already exists")
			return
		}
	}
	b.mu.Unlock()
	b.AddLanguage(in.Code, in.Name)
	writeJSON(w, http.StatusCreated, api.Result{Message: "Language created"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
