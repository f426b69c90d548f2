// Package reading persists completed readings: the query the homeostat
// surfaced, the cards drawn, and the interpretation text. Invoked by the
// surrounding scenes, never by the regulator.
package reading

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	reading_id      TEXT PRIMARY KEY,
	session_id      TEXT NOT NULL,
	query           TEXT NOT NULL,
	cards_json      TEXT NOT NULL,
	cards_key       TEXT NOT NULL,
	interpretation  TEXT NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_readings_cards_key ON readings(cards_key);
`

// #endregion schema

// #region types

// Reading is one stored reading.
type Reading struct {
	ReadingID      string
	SessionID      string
	Query          string
	Cards          []string
	Interpretation string
	CreatedAt      time.Time
}

// #endregion types

// #region store

// Store keeps readings in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the readings database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the connection for sibling stores sharing the file.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Save stores one reading and returns its id.
func (s *Store) Save(sessionID, query string, cards []string, interpretation string) (string, error) {
	id := uuid.New().String()
	cardsJSON, err := json.Marshal(cards)
	if err != nil {
		return "", fmt.Errorf("marshal cards: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO readings (reading_id, session_id, query, cards_json, cards_key, interpretation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, sessionID, query, string(cardsJSON), cardsKey(cards), interpretation,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("save reading: %w", err)
	}
	return id, nil
}

// ForCards returns the most recent interpretation stored for exactly this
// set of cards, or "" if none exists.
func (s *Store) ForCards(cards []string) (string, error) {
	row := s.db.QueryRow(
		`SELECT interpretation FROM readings WHERE cards_key = ? ORDER BY rowid DESC LIMIT 1`,
		cardsKey(cards),
	)
	var interpretation string
	if err := row.Scan(&interpretation); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("lookup cards: %w", err)
	}
	return interpretation, nil
}

// Recent returns up to n readings, newest first.
func (s *Store) Recent(n int) ([]Reading, error) {
	rows, err := s.db.Query(
		`SELECT reading_id, session_id, query, cards_json, interpretation, created_at
		 FROM readings ORDER BY rowid DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	var out []Reading
	for rows.Next() {
		var r Reading
		var cardsJSON, createdAt string
		if err := rows.Scan(&r.ReadingID, &r.SessionID, &r.Query, &cardsJSON, &r.Interpretation, &createdAt); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		if err := json.Unmarshal([]byte(cardsJSON), &r.Cards); err != nil {
			return nil, fmt.Errorf("unmarshal cards: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

// #endregion store

// #region helpers

// cardsKey produces an order-insensitive lookup key for a card set.
func cardsKey(cards []string) string {
	sorted := make([]string, len(cards))
	copy(sorted, cards)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return strings.Join(sorted, "|")
}

// #endregion helpers
