package form

import (
	"errors"
	"reflect"
	"testing"
)

var wordFields = []string{"word", "pos", "language"}

func newWordEdit() *Edit {
	return NewEdit(wordFields, Values{"word": "horse", "pos": "noun", "language": "en"})
}

func TestEditStartsClean(t *testing.T) {
	e := newWordEdit()
	if e.CanSave() {
		t.Error("save should be disabled when live values equal the snapshot")
	}
	if e.Dirty() {
		t.Error("expected a clean form")
	}
}

func TestEditDirtyAndRevert(t *testing.T) {
	for _, field := range wordFields {
		t.Run(field, func(t *testing.T) {
			e := newWordEdit()
			original := e.Value(field)

			if err := e.Set(field, original+"x"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if !e.CanSave() {
				t.Errorf("save should be enabled after changing %s", field)
			}

			e.Set(field, original)
			if e.CanSave() {
				t.Errorf("save should be disabled after reverting %s", field)
			}
		})
	}
}

func TestEditComparisonIsExact(t *testing.T) {
	e := newWordEdit()
	e.Set("word", "horse ")
	if !e.CanSave() {
		t.Error("trailing space is a change")
	}
	e.Set("word", "Horse")
	if !e.CanSave() {
		t.Error("case difference is a change")
	}
}

func TestEditResetAfterMultipleChanges(t *testing.T) {
	e := newWordEdit()
	before := e.Live()

	e.Set("word", "pony")
	e.Set("pos", "verb")
	e.Set("word", "mare")
	e.Set("language", "de")
	e.Reset()

	if !reflect.DeepEqual(e.Live(), before) {
		t.Errorf("Live() = %v, want %v", e.Live(), before)
	}
	if e.Dirty() {
		t.Error("expected clean state after reset")
	}
}

func TestEditCommit(t *testing.T) {
	e := newWordEdit()
	e.Set("pos", "verb")
	e.Commit(e.Live())

	if e.Dirty() {
		t.Error("expected clean state after commit")
	}

	e.Set("pos", "noun")
	if !e.CanSave() {
		t.Error("the old value is now a change")
	}
	e.Reset()
	if e.Value("pos") != "verb" {
		t.Errorf("reset should return to the committed value, got %q", e.Value("pos"))
	}
}

func TestEditCommitKeepsLaterInput(t *testing.T) {
	e := newWordEdit()
	e.Set("word", "pony")
	sent := e.Live()
	e.Set("word", "ponyx")
	e.Commit(sent)

	if !e.Dirty() {
		t.Error("input typed after the save was sent is still a change")
	}
	if e.Value("word") != "ponyx" {
		t.Errorf("live value lost: got %q", e.Value("word"))
	}

	e.Set("word", "pony")
	if e.Dirty() {
		t.Error("the confirmed value is the new snapshot")
	}
}

func TestEditUnknownField(t *testing.T) {
	e := newWordEdit()
	err := e.Set("id", "3")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	if e.Dirty() {
		t.Error("unknown field must not change state")
	}
}

func TestEditSnapshotIsolation(t *testing.T) {
	seed := Values{"code": "en", "name": "English"}
	e := NewEdit([]string{"code", "name"}, seed)
	seed["name"] = "changed"

	if e.Dirty() {
		t.Error("mutating the seed must not affect the edit")
	}
	live := e.Live()
	live["code"] = "xx"
	if e.Value("code") != "en" || e.Dirty() {
		t.Error("Live() must return a copy")
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		word string
		pos  string
		want bool
	}{
		{"both empty", "", "", false},
		{"word only", "cat", "", false},
		{"pos only", "", "noun", false},
		{"whitespace word", "   ", "noun", false},
		{"tab and newline", "\t\n", "noun", false},
		{"both set", "cat", "noun", true},
		{"padded", "  cat ", " noun", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCreate(wordFields, []string{"word", "pos"}, Values{"language": "en"})
			c.Set("word", tt.word)
			c.Set("pos", tt.pos)
			if got := c.CanSave(); got != tt.want {
				t.Errorf("CanSave() = %v, want %v (missing %v)", got, tt.want, c.Missing())
			}
		})
	}
}

func TestCreateDefaultsAndClear(t *testing.T) {
	c := NewCreate(wordFields, []string{"word", "pos"}, Values{"language": "de", "word": "ignored"})
	if c.Value("word") != "" {
		t.Error("required fields start empty")
	}
	if c.Value("language") != "de" {
		t.Errorf("language default: got %q", c.Value("language"))
	}

	c.Set("word", " cat ")
	c.Set("pos", "noun")
	if got := c.Trimmed(); got["word"] != "cat" {
		t.Errorf("Trimmed word: got %q", got["word"])
	}

	c.Clear()
	if c.Value("word") != "" || c.Value("pos") != "" {
		t.Error("required fields should be cleared")
	}
	if c.Value("language") != "de" {
		t.Error("language should be kept")
	}
	if c.CanSave() {
		t.Error("save should be disabled after clear")
	}
}

func TestCreateUnknownField(t *testing.T) {
	c := NewCreate([]string{"code", "name"}, []string{"code", "name"}, nil)
	if err := c.Set("id", "1"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}
