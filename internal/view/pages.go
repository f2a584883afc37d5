package view

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/ziadkadry99/lexicon/internal/api"
	"github.com/ziadkadry99/lexicon/internal/form"
	"github.com/ziadkadry99/lexicon/internal/live"
	"github.com/ziadkadry99/lexicon/internal/prefs"
)

var (
	wordFields     = []string{"word", "pos", "language"}
	languageFields = []string{"code", "name"}
)

func (s *Session) runTest(v *viewState) {
	s.async(v, func(ctx context.Context) error {
		return s.deps.API.Test(ctx)
	}, func(err error) {
		if err != nil {
			s.notify("message", errorText(err), Failure)
			return
		}
		s.notify("message", "Test was successful", Success)
	})
}

func (s *Session) loadWords(v *viewState) {
	v.status = loading
	var words []api.Word
	s.async(v, func(ctx context.Context) (err error) {
		words, err = s.deps.API.ListWords(ctx)
		return err
	}, func(err error) {
		v.status = idle
		if err != nil {
			s.log.Warn("loading words", zap.Error(err))
			s.renderInto("rows", "rows-error", rowsError{Cols: 4, Text: loadErrorText(err, "Could not load words")})
			return
		}
		s.renderInto("rows", "word-rows", words)
	})
}

func (s *Session) loadLanguages(v *viewState) {
	v.status = loading
	var langs []api.Language
	s.async(v, func(ctx context.Context) (err error) {
		langs, err = s.deps.API.ListLanguages(ctx)
		return err
	}, func(err error) {
		v.status = idle
		if err != nil {
			s.log.Warn("loading languages", zap.Error(err))
			s.renderInto("rows", "rows-error", rowsError{Cols: 3, Text: loadErrorText(err, "Could not load languages")})
			return
		}
		s.renderInto("rows", "language-rows", langs)
	})
}

// Word detail.

func (s *Session) loadWord(v *viewState) {
	v.status = loading
	var (
		word  *api.Word
		langs []api.Language
	)
	s.async(v, func(ctx context.Context) error {
		var err error
		word, err = s.deps.API.GetWord(ctx, v.params.ID)
		if err != nil {
			return err
		}
		// The language list only feeds the edit form's selector.
		var lerr error
		langs, lerr = s.deps.API.ListLanguages(ctx)
		if lerr != nil {
			s.log.Warn("loading language index", zap.Error(lerr))
		}
		return nil
	}, func(err error) {
		v.status = idle
		if err != nil {
			s.renderInto("detail", "detail-error", loadErrorText(err, "Could not load word"))
			return
		}
		v.word = word
		v.setLanguages(langs)
		s.renderWordView(v)
	})
}

type wordRow struct {
	ID       int64
	Word     string
	POS      string
	Language string
}

type wordEditData struct {
	ID      int64
	Values  form.Values
	Options []option
}

func (s *Session) renderWordView(v *viewState) {
	w := v.word
	s.renderInto("detail", "word-view", wordRow{ID: w.ID, Word: w.Word, POS: w.POS, Language: v.languageCode(w.Language)})
	s.renderInto("actions", "view-actions", nil)
}

func (s *Session) editWord(v *viewState) {
	if v.word == nil || v.edit != nil {
		return
	}
	w := v.word
	// The selector speaks the word's own reference form so an untouched
	// language is sent back exactly as stored.
	v.edit = form.NewEdit(wordFields, form.Values{
		"word":     w.Word,
		"pos":      w.POS,
		"language": string(w.Language),
	})
	s.renderInto("detail", "word-edit", wordEditData{
		ID:      w.ID,
		Values:  v.edit.Live(),
		Options: v.languageOptions(v.edit.Value("language"), v.refersByID(w.Language)),
	})
	s.renderInto("actions", "edit-actions", v.canSave())
}

func (s *Session) saveWord(v *viewState) {
	if v.edit == nil || !v.canSave() {
		return
	}
	vals := v.edit.Live()
	updated := api.Word{
		ID:       v.word.ID,
		Word:     vals["word"],
		POS:      vals["pos"],
		Language: api.LanguageRef(vals["language"]),
	}
	v.busy = true
	s.refreshSave(v)

	var res *api.Result
	s.async(v, func(ctx context.Context) (err error) {
		res, err = s.deps.API.UpdateWord(ctx, updated)
		return err
	}, func(err error) {
		v.busy = false
		if err != nil {
			s.log.Debug("saving word", zap.Int64("id", updated.ID), zap.Error(err))
			if v.edit != nil {
				s.refreshSave(v)
			}
			s.notify("message", errorText(err), Failure)
			return
		}
		*v.word = updated
		if !s.keepEditing(v, vals) {
			s.renderWordView(v)
		}
		s.notify("message", resultText(res), Success)
	})
}

// Language detail.

func (s *Session) loadLanguage(v *viewState) {
	v.status = loading
	var lang *api.Language
	s.async(v, func(ctx context.Context) (err error) {
		lang, err = s.deps.API.GetLanguage(ctx, v.params.ID)
		return err
	}, func(err error) {
		v.status = idle
		if err != nil {
			s.renderInto("detail", "detail-error", loadErrorText(err, "Could not load language"))
			return
		}
		v.language = lang
		s.renderLanguageView(v)
	})
}

type languageEditData struct {
	ID     int64
	Values form.Values
}

func (s *Session) renderLanguageView(v *viewState) {
	s.renderInto("detail", "language-view", v.language)
	s.renderInto("actions", "view-actions", nil)
}

func (s *Session) editLanguage(v *viewState) {
	if v.language == nil || v.edit != nil {
		return
	}
	v.edit = form.NewEdit(languageFields, form.Values{"code": v.language.Code, "name": v.language.Name})
	s.renderInto("detail", "language-edit", languageEditData{ID: v.language.ID, Values: v.edit.Live()})
	s.renderInto("actions", "edit-actions", v.canSave())
}

func (s *Session) saveLanguage(v *viewState) {
	if v.edit == nil || !v.canSave() {
		return
	}
	vals := v.edit.Live()
	updated := api.Language{ID: v.language.ID, Code: vals["code"], Name: vals["name"]}
	v.busy = true
	s.refreshSave(v)

	var res *api.Result
	s.async(v, func(ctx context.Context) (err error) {
		res, err = s.deps.API.UpdateLanguage(ctx, updated)
		return err
	}, func(err error) {
		v.busy = false
		if err != nil {
			s.log.Debug("saving language", zap.Int64("id", updated.ID), zap.Error(err))
			if v.edit != nil {
				s.refreshSave(v)
			}
			s.notify("message", errorText(err), Failure)
			return
		}
		*v.language = updated
		if !s.keepEditing(v, vals) {
			s.renderLanguageView(v)
		}
		s.notify("message", resultText(res), Success)
	})
}

// keepEditing commits sent as the confirmed values after a successful save.
// It reports true, leaving the inputs alone, when the user typed more while
// the save was in flight; otherwise it ends the edit.
func (s *Session) keepEditing(v *viewState, sent form.Values) bool {
	if v.edit == nil {
		return false
	}
	v.edit.Commit(sent)
	if v.edit.Dirty() {
		s.refreshSave(v)
		return true
	}
	v.edit = nil
	return false
}

func (s *Session) cancelEdit(v *viewState, renderView func(*viewState)) {
	if v.edit == nil {
		return
	}
	v.edit.Reset()
	v.edit = nil
	renderView(v)
}

// Create forms.

func (s *Session) loadWordForm(v *viewState) {
	v.status = loading
	var (
		langs      []api.Language
		remembered string
	)
	s.async(v, func(ctx context.Context) (err error) {
		langs, err = s.deps.API.ListLanguages(ctx)
		if err != nil {
			return err
		}
		if s.deps.Prefs != nil && s.clientID != "" {
			code, ok, perr := s.deps.Prefs.Get(ctx, s.clientID, prefs.KeyLastWordLanguage)
			if perr != nil {
				s.log.Warn("reading remembered language", zap.Error(perr))
			} else if ok {
				remembered = code
			}
		}
		return nil
	}, func(err error) {
		v.status = idle
		if err != nil {
			s.renderInto("field-language", "language-options", []option{{Value: "", Label: "No languages"}})
			s.refreshSave(v)
			s.notify("message", loadErrorText(err, "Could not load languages"), Failure)
			return
		}
		v.setLanguages(langs)
		// A choice made while the list was loading wins over the defaults.
		selected := v.create.Value("language")
		if selected == "" {
			if v.codes[remembered] {
				selected = remembered
			} else if len(langs) > 0 {
				selected = langs[0].Code
			}
			v.create.Set("language", selected)
		}
		s.renderInto("field-language", "language-options", v.languageOptions(selected, false))
		s.refreshSave(v)
	})
}

func (s *Session) createWord(v *viewState) {
	if v.create == nil || !v.canSave() {
		return
	}
	vals := v.create.Trimmed()
	nw := api.NewWord{Word: vals["word"], POS: vals["pos"], Language: api.LanguageRef(vals["language"])}
	v.busy = true
	s.refreshSave(v)

	var res *api.Result
	s.async(v, func(ctx context.Context) (err error) {
		res, err = s.deps.API.CreateWord(ctx, nw)
		if err != nil {
			return err
		}
		if s.deps.Prefs != nil && s.clientID != "" && nw.Language != "" {
			// Remember the language even if the user has already moved on.
			if perr := s.deps.Prefs.Set(context.WithoutCancel(ctx), s.clientID, prefs.KeyLastWordLanguage, string(nw.Language)); perr != nil {
				s.log.Warn("remembering language", zap.Error(perr))
			}
		}
		return nil
	}, func(err error) {
		v.busy = false
		if err != nil {
			s.refreshSave(v)
			s.notify("message", errorText(err), Failure)
			return
		}
		v.create.Clear()
		s.send(
			live.SetValue("field-word", ""),
			live.SetValue("field-pos", ""),
		)
		s.refreshSave(v)
		s.notify("message", resultText(res), Success)
	})
}

func (s *Session) createLanguage(v *viewState) {
	if v.create == nil || !v.canSave() {
		return
	}
	vals := v.create.Trimmed()
	nl := api.NewLanguage{Code: vals["code"], Name: vals["name"]}
	v.busy = true
	s.refreshSave(v)

	var res *api.Result
	s.async(v, func(ctx context.Context) (err error) {
		res, err = s.deps.API.CreateLanguage(ctx, nl)
		return err
	}, func(err error) {
		v.busy = false
		if err != nil {
			s.refreshSave(v)
			s.notify("message", errorText(err), Failure)
			return
		}
		v.create.Clear()
		s.send(
			live.SetValue("field-code", ""),
			live.SetValue("field-name", ""),
		)
		s.refreshSave(v)
		s.notify("message", resultText(res), Success)
	})
}

func resultText(res *api.Result) string {
	if res != nil && res.Message != "" {
		return res.Message
	}
	return "Saved"
}

// Language index.

func (v *viewState) setLanguages(langs []api.Language) {
	v.languages = langs
	v.codes = make(map[string]bool, len(langs))
	v.codeByID = make(map[int64]string, len(langs))
	for _, l := range langs {
		v.codes[l.Code] = true
		v.codeByID[l.ID] = l.Code
	}
}

// refersByID reports whether ref names a known language by id rather than
// by code.
func (v *viewState) refersByID(ref api.LanguageRef) bool {
	if v.codes[string(ref)] {
		return false
	}
	id, ok := ref.ID()
	if !ok {
		return false
	}
	_, known := v.codeByID[id]
	return known
}

// languageCode resolves a word's language reference to a code when the
// index knows it; otherwise the reference is returned as is.
func (v *viewState) languageCode(ref api.LanguageRef) string {
	if v.codes[string(ref)] {
		return string(ref)
	}
	if id, ok := ref.ID(); ok {
		if code, ok := v.codeByID[id]; ok {
			return code
		}
	}
	return string(ref)
}

// languageOptions lists the known languages with selected marked. Option
// values are language ids when byID is set, codes otherwise. A selected
// value the index does not know is kept as an extra option.
func (v *viewState) languageOptions(selected string, byID bool) []option {
	opts := make([]option, 0, len(v.languages)+1)
	found := false
	for _, l := range v.languages {
		value := l.Code
		if byID {
			value = strconv.FormatInt(l.ID, 10)
		}
		sel := value == selected
		found = found || sel
		opts = append(opts, option{Value: value, Label: l.Code + " (" + l.Name + ")", Selected: sel})
	}
	if !found && selected != "" {
		opts = append(opts, option{Value: selected, Label: selected, Selected: true})
	}
	return opts
}
