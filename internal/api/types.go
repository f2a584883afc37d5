// Package api is a client for the dictionary service's HTTP API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LanguageRef identifies a word's language. The service sends either a
// language code (string) or a language id (number); both are kept as text.
type LanguageRef string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (l *LanguageRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = LanguageRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("language must be a string or number: %w", err)
	}
	*l = LanguageRef(n.String())
	return nil
}

// ID returns the reference as a numeric language id, if it is one.
func (l LanguageRef) ID() (int64, bool) {
	n, err := strconv.ParseInt(string(l), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Word is a dictionary entry.
type Word struct {
	ID       int64       `json:"id"`
	Word     string      `json:"word"`
	POS      string      `json:"pos"`
	Language LanguageRef `json:"language"`
}

// NewWord is the body of a word creation request.
type NewWord struct {
	Word     string      `json:"word"`
	POS      string      `json:"pos"`
	Language LanguageRef `json:"language"`
}

// Language is a language the dictionary knows about.
type Language struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewLanguage is the body of a language creation request.
type NewLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type wordsResponse struct {
	Words []Word `json:"words"`
}

type languagesResponse struct {
	Languages []Language `json:"languages"`
}

// Result is the body of a successful mutation.
type Result struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
