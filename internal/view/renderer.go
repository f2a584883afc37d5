package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
)

// Renderer executes the page templates.
type Renderer struct {
	title string
	intro template.HTML
	shell *template.Template
	pages *template.Template
}

// NewRenderer parses the templates. introMarkdown is rendered once into the
// home page's intro.
func NewRenderer(title, introMarkdown string) (*Renderer, error) {
	shell, err := template.New("shell").Parse(shellTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing shell template: %w", err)
	}
	pages, err := template.New("pages").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}

	// goldmark escapes raw HTML unless WithUnsafe is set.
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(introMarkdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering home markdown: %w", err)
	}

	return &Renderer{
		title: title,
		intro: template.HTML(buf.String()),
		shell: shell,
		pages: pages,
	}, nil
}

// Title returns the application title.
func (r *Renderer) Title() string { return r.title }

// Shell writes the HTML document served for every client path.
func (r *Renderer) Shell(w io.Writer) error {
	return r.shell.Execute(w, struct{ Title string }{r.title})
}

// Render executes the named template and returns the markup.
func (r *Renderer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

type homeData struct {
	Title string
	Intro template.HTML
}

type rowsError struct {
	Cols int
	Text string
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type noticeData struct {
	ID   string
	Kind string
	Text string
}
