package tracelog

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Ensure(db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

// #endregion helpers

// #region log-turn-tests
func TestLogTurn_Success(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := TurnEntry{
		SessionID:   "s1",
		TurnID:      "t1",
		Utterance:   "I keep circling the same worry",
		State:       "containing",
		VarietyJSON: `{"dispersal":0.2,"intensity":0.8,"complexity":0.5}`,
		Momentum:    0.12,
		Persistence: 0,
		Rule:        "high_total_variety",
		CreatedAt:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogTurn(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM turn_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var state, rule string
	db.QueryRow("SELECT state, rule FROM turn_log").Scan(&state, &rule)
	if state != "containing" {
		t.Errorf("expected state 'containing', got %q", state)
	}
	if rule != "high_total_variety" {
		t.Errorf("expected rule 'high_total_variety', got %q", rule)
	}
}

func TestLogTurn_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	before := time.Now().UTC()
	err := LogTurn(db, TurnEntry{
		SessionID: "s2",
		TurnID:    "t1",
		State:     "settling",
		Rule:      "flat",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM turn_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogTurn_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	err := LogTurn(db, TurnEntry{
		SessionID: "s3",
		TurnID:    "t1",
		State:     "settling",
		Rule:      "safety_override",
		Override:  true,
		CreatedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var utterance, varietyJSON sql.NullString
	var override int
	db.QueryRow("SELECT utterance, variety_json, override FROM turn_log").Scan(&utterance, &varietyJSON, &override)
	if utterance.Valid {
		t.Error("expected NULL utterance for empty string")
	}
	if varietyJSON.Valid {
		t.Error("expected NULL variety_json for empty string")
	}
	if override != 1 {
		t.Errorf("expected override 1, got %d", override)
	}
}

func TestLogTurn_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	err := LogTurn(db, TurnEntry{SessionID: "s4", TurnID: "t1", State: "settling", Rule: "flat"})
	if err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-turn-tests

// #region session-turns-tests
func TestSessionTurns_OrderAndFilter(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	for i, rule := range []string{"flat", "scattered", "emerging"} {
		err := LogTurn(db, TurnEntry{
			SessionID:   "session-a",
			TurnID:      string(rune('a' + i)),
			State:       "dwelling",
			Rule:        rule,
			Persistence: i,
		})
		if err != nil {
			t.Fatalf("log turn %d: %v", i, err)
		}
	}
	if err := LogTurn(db, TurnEntry{SessionID: "session-b", TurnID: "x", State: "settling", Rule: "flat"}); err != nil {
		t.Fatalf("log other session: %v", err)
	}

	turns, err := SessionTurns(db, "session-a")
	if err != nil {
		t.Fatalf("session turns: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	for i, want := range []string{"flat", "scattered", "emerging"} {
		if turns[i].Rule != want {
			t.Errorf("turn %d: expected rule %q, got %q", i, want, turns[i].Rule)
		}
		if turns[i].Persistence != i {
			t.Errorf("turn %d: expected persistence %d, got %d", i, i, turns[i].Persistence)
		}
	}
}

// #endregion session-turns-tests
