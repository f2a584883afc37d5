// Package router maps client paths to pages.
package router

import (
	"regexp"
	"strconv"
	"strings"
)

// Page identifies one of the client's screens.
type Page string

const (
	Home           Page = "home"
	Test           Page = "test"
	Words          Page = "words"
	AddWord        Page = "add-word"
	Languages      Page = "languages"
	AddLanguage    Page = "add-language"
	WordDetail     Page = "word-detail"
	LanguageDetail Page = "language-detail"
)

// Params holds values extracted from a matched path.
type Params struct {
	ID    int64
	HasID bool
}

// pattern is a route template with one numeric capture.
type pattern struct {
	re   *regexp.Regexp
	page Page
}

// Router resolves paths. Static paths are checked before patterns; the
// first match wins and anything else resolves to Home.
type Router struct {
	static   map[string]Page
	patterns []pattern
	fallback Page
}

// New returns the client's route table.
func New() *Router {
	return &Router{
		static: map[string]Page{
			"/":             Home,
			"/test":         Test,
			"/words":        Words,
			"/add-word":     AddWord,
			"/languages":    Languages,
			"/add-language": AddLanguage,
		},
		patterns: []pattern{
			{re: regexp.MustCompile(`^/word/(\d+)$`), page: WordDetail},
			{re: regexp.MustCompile(`^/language/(\d+)$`), page: LanguageDetail},
		},
		fallback: Home,
	}
}

// Match returns the page for path and any parameters captured from it.
func (r *Router) Match(path string) (Page, Params) {
	path = stripQuery(path)

	if page, ok := r.static[path]; ok {
		return page, Params{}
	}

	for _, p := range r.patterns {
		m := p.re.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			// Too many digits for an id.
			continue
		}
		return p.page, Params{ID: id, HasID: true}
	}

	return r.fallback, Params{}
}

// Path returns the canonical client path for page. Detail pages need an id.
func Path(page Page, id int64) string {
	switch page {
	case Home:
		return "/"
	case WordDetail:
		return "/word/" + strconv.FormatInt(id, 10)
	case LanguageDetail:
		return "/language/" + strconv.FormatInt(id, 10)
	default:
		return "/" + string(page)
	}
}

func stripQuery(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	return path
}
