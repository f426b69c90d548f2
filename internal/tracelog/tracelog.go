// Package tracelog writes per-turn regulation rows to SQLite so a session
// can be inspected after the fact.
package tracelog

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS turn_log (
	session_id   TEXT NOT NULL,
	turn_id      TEXT NOT NULL,
	utterance    TEXT,
	state        TEXT NOT NULL,
	variety_json TEXT,
	momentum     REAL NOT NULL,
	persistence  INTEGER NOT NULL,
	rule         TEXT NOT NULL,
	override     INTEGER NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_turn_log_session ON turn_log(session_id);
`

// Ensure creates the turn_log table if it does not exist.
func Ensure(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate turn_log: %w", err)
	}
	return nil
}

// #endregion schema

// #region log-turn
// LogTurn writes one turn entry to the turn_log table.
func LogTurn(db *sql.DB, entry TurnEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	override := 0
	if entry.Override {
		override = 1
	}

	_, err := db.Exec(
		`INSERT INTO turn_log (session_id, turn_id, utterance, state, variety_json, momentum, persistence, rule, override, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.TurnID,
		nullIfEmpty(entry.Utterance),
		entry.State,
		nullIfEmpty(entry.VarietyJSON),
		entry.Momentum,
		entry.Persistence,
		entry.Rule,
		override,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log turn: %w", err)
	}
	return nil
}

// #endregion log-turn

// #region session-turns
// SessionTurns returns all logged turns for a session in insertion order.
func SessionTurns(db *sql.DB, sessionID string) ([]TurnEntry, error) {
	rows, err := db.Query(
		`SELECT session_id, turn_id, utterance, state, variety_json, momentum, persistence, rule, override, created_at
		 FROM turn_log WHERE session_id = ? ORDER BY rowid`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var out []TurnEntry
	for rows.Next() {
		var e TurnEntry
		var utterance, varietyJSON sql.NullString
		var override int
		var createdAt string
		if err := rows.Scan(&e.SessionID, &e.TurnID, &utterance, &e.State, &varietyJSON, &e.Momentum, &e.Persistence, &e.Rule, &override, &createdAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		e.Utterance = utterance.String
		e.VarietyJSON = varietyJSON.String
		e.Override = override != 0
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// #endregion session-turns

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
