package view

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/lexicon/internal/live"
)

// fakeDOM applies messages the way the browser shim does, closely enough
// for assertions: rendered regions, attribute and value overrides, titles.
type fakeDOM struct {
	mu       sync.Mutex
	html     map[string]string
	disabled map[string]bool
	values   map[string]string
	renders  map[string]int
	title    string
}

func newFakeDOM() *fakeDOM {
	return &fakeDOM{
		html:     make(map[string]string),
		disabled: make(map[string]bool),
		values:   make(map[string]string),
		renders:  make(map[string]int),
	}
}

func (d *fakeDOM) Send(m live.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch m.Type {
	case live.MsgRender:
		d.html[m.Target] = m.HTML
		d.renders[m.Target]++
		d.indexFragment(m.HTML)
	case live.MsgAttr:
		if m.Name == "disabled" {
			d.disabled[m.Target] = !m.Remove
		}
	case live.MsgValue:
		d.values[m.Target] = m.Value
	case live.MsgClear:
		if strings.Contains(d.html[m.Target], `data-notice="`+m.Notice+`"`) {
			d.html[m.Target] = ""
		}
	case live.MsgTitle:
		d.title = m.Value
	}
	return nil
}

// indexFragment records the initial disabled state and value of every
// element with an id in a rendered fragment.
func (d *fakeDOM) indexFragment(html string) {
	doc := parseFragment(html)
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		_, disabled := sel.Attr("disabled")
		d.disabled[id] = disabled
		switch goquery.NodeName(sel) {
		case "input":
			d.values[id], _ = sel.Attr("value")
		case "select":
			d.values[id], _ = sel.Find("option[selected]").First().Attr("value")
		}
	})
}

func parseFragment(html string) *goquery.Document {
	trimmed := strings.TrimSpace(html)
	if strings.HasPrefix(trimmed, "<tr") {
		html = "<table><tbody>" + html + "</tbody></table>"
	} else if strings.HasPrefix(trimmed, "<option") {
		html = "<select>" + html + "</select>"
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		panic(err)
	}
	return doc
}

func (d *fakeDOM) HTML(target string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.html[target]
}

func (d *fakeDOM) Doc(target string) *goquery.Document {
	return parseFragment(d.HTML(target))
}

func (d *fakeDOM) Text(target string) string {
	return strings.TrimSpace(d.Doc(target).Text())
}

func (d *fakeDOM) Disabled(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disabled[id]
}

func (d *fakeDOM) Value(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.values[id]
}

func (d *fakeDOM) Renders(target string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renders[target]
}

func (d *fakeDOM) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// selectedOption returns the value of the selected option rendered into
// target, for selects re-filled by a render of their options.
func (d *fakeDOM) selectedOption(target string) string {
	v, _ := d.Doc(target).Find("option[selected]").First().Attr("value")
	return v
}

func eventually(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting: %s", msg)
}
