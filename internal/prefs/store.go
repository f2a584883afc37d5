// Package prefs persists small per-client values across sessions.
package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ziadkadry99/lexicon/internal/db"
)

// KeyLastWordLanguage holds the language code last used to create a word.
const KeyLastWordLanguage = "last_word_language"

// Store manages persistence of client preferences.
type Store struct {
	db *db.DB
}

// NewStore creates a new preference store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the value stored for clientID and key. The second return is
// false when nothing is stored.
func (s *Store) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM client_prefs WHERE client_id = ? AND key = ?`, clientID, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting pref %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value for clientID and key, replacing any previous value.
func (s *Store) Set(ctx context.Context, clientID, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO client_prefs (client_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		clientID, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("setting pref %s: %w", key, err)
	}
	return nil
}
