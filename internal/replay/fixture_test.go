package replay

import (
	"os"
	"path/filepath"
	"testing"
)

// #region fixture-loader-tests
func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	doc := `{
		"description": "two-turn calm session",
		"utterances": [
			{"turn_id": "t1", "text": "I'm feeling uncertain about a decision I need to make"},
			{"turn_id": "t2", "text": "still not sure"}
		],
		"expected_results": [
			{"turn_id": "t1", "state": "settling", "rule": "flat"},
			{"turn_id": "t2", "state": "settling"}
		]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if f.Description != "two-turn calm session" {
		t.Errorf("unexpected description: %q", f.Description)
	}
	if len(f.Utterances) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(f.Utterances))
	}
	if f.Utterances[0].TurnID != "t1" {
		t.Errorf("unexpected first turn id: %q", f.Utterances[0].TurnID)
	}
	if len(f.ExpectedResults) != 2 {
		t.Fatalf("expected 2 expected results, got %d", len(f.ExpectedResults))
	}
	if f.ExpectedResults[0].Rule != "flat" {
		t.Errorf("unexpected rule: %q", f.ExpectedResults[0].Rule)
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFixture_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

// #endregion fixture-loader-tests

// #region fixture-config-tests
func TestToHomeostatConfig_ZeroUsesDefaults(t *testing.T) {
	var fc FixtureConfig
	cfg := fc.ToHomeostatConfig()
	if cfg.Variety.MaxInputLen != 1000 {
		t.Errorf("expected default max input len, got %d", cfg.Variety.MaxInputLen)
	}
	if cfg.Regulate.OverloadIntensity != 0.9 {
		t.Errorf("expected default overload intensity, got %v", cfg.Regulate.OverloadIntensity)
	}
}

func TestToHomeostatConfig_ExplicitValues(t *testing.T) {
	fc := FixtureConfig{
		Variety: FixtureVarietyConfig{
			MaxInputLen: 200,
			Window:      3,
			Dispersal:   FixtureDispersalWeights{Scatter: 0.5, Disruption: 0.3, Breaks: 0.2, Gain: 2.0},
			Intensity:   FixtureIntensityWeights{Pressure: 0.4, Embodied: 0.25, Shifts: 0.2, Repetition: 0.15, HotBoost: 2.0, Gain: 2.5},
			Complexity:  FixtureComplexityWeights{Connections: 0.3, Shifts: 0.25, Abstraction: 0.25, Movement: 0.1, Recursion: 0.1, Gain: 2.5},
		},
		Regulate: FixtureRegulateConfig{
			OverloadIntensity: 0.8,
			OverloadDispersal: 0.8,
			HighMean:          0.7,
			HighDispersal:     0.6,
			HighComplexity:    0.6,
			StuckPersistence:  2,
			StuckMomentum:     0.05,
			LowComplexity:     0.1,
			EmergeTurns:       1,
		},
	}
	cfg := fc.ToHomeostatConfig()
	if cfg.Variety.MaxInputLen != 200 || cfg.Variety.Window != 3 {
		t.Errorf("variety config not carried over: %+v", cfg.Variety)
	}
	if cfg.Regulate.StuckPersistence != 2 || cfg.Regulate.EmergeTurns != 1 {
		t.Errorf("regulate config not carried over: %+v", cfg.Regulate)
	}
}

// #endregion fixture-config-tests
