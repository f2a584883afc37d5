package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the dictionary service. Every call makes exactly one
// request; nothing is retried.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the service at baseURL. A zero timeout
// leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the service base URL the client was created with.
func (c *Client) BaseURL() string { return c.baseURL }

// ListWords returns every word.
func (c *Client) ListWords(ctx context.Context) ([]Word, error) {
	var resp wordsResponse
	if err := c.do(ctx, "list words", http.MethodGet, "/api/words", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Words == nil {
		resp.Words = []Word{}
	}
	return resp.Words, nil
}

// GetWord returns the word with the given id.
func (c *Client) GetWord(ctx context.Context, id int64) (*Word, error) {
	var w Word
	if err := c.do(ctx, "get word", http.MethodGet, fmt.Sprintf("/api/words/%d", id), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWord replaces all fields of an existing word.
func (c *Client) UpdateWord(ctx context.Context, w Word) (*Result, error) {
	var res Result
	if err := c.do(ctx, "update word", http.MethodPut, "/api/word", w, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateWord adds a new word.
func (c *Client) CreateWord(ctx context.Context, w NewWord) (*Result, error) {
	var res Result
	if err := c.do(ctx, "create word", http.MethodPost, "/api/word", w, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListLanguages returns every language.
func (c *Client) ListLanguages(ctx context.Context) ([]Language, error) {
	var resp languagesResponse
	if err := c.do(ctx, "list languages", http.MethodGet, "/api/languages", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Languages == nil {
		resp.Languages = []Language{}
	}
	return resp.Languages, nil
}

// GetLanguage returns the language with the given id.
func (c *Client) GetLanguage(ctx context.Context, id int64) (*Language, error) {
	var l Language
	if err := c.do(ctx, "get language", http.MethodGet, fmt.Sprintf("/api/languages/%d", id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateLanguage replaces all fields of an existing language.
func (c *Client) UpdateLanguage(ctx context.Context, l Language) (*Result, error) {
	var res Result
	if err := c.do(ctx, "update language", http.MethodPut, "/api/language", l, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateLanguage adds a new language.
func (c *Client) CreateLanguage(ctx context.Context, l NewLanguage) (*Result, error) {
	var res Result
	if err := c.do(ctx, "create language", http.MethodPost, "/api/language", l, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Test checks that the service is up and able to serve requests.
func (c *Client) Test(ctx context.Context) error {
	return c.do(ctx, "test", http.MethodGet, "/api/test", nil, nil)
}

// do sends one request and decodes a 2xx body into out (when non-nil).
// Non-2xx responses become *APIError; everything else that goes wrong
// becomes *TransportError.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshalling request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.Unmarshal(respBody, &e)
		return &APIError{Op: op, Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
