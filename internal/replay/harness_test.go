package replay

import (
	"testing"
)

// #region replay-tests
func TestReplay_CalmSession(t *testing.T) {
	f := &Fixture{
		Description: "settled two-turn session",
		Utterances: []FixtureUtterance{
			{TurnID: "t1", Text: "I'm feeling uncertain about a decision I need to make"},
		},
		ExpectedResults: []FixtureExpectedResult{
			{TurnID: "t1", State: "settling", Rule: "flat"},
		},
	}

	results, summary := Replay(f, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].State != "settling" {
		t.Errorf("expected settling, got %s (%s)", results[0].State, results[0].Rule)
	}
	if summary.TotalTurns != 1 || summary.Failures != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.StateCounts["settling"] != 1 {
		t.Errorf("expected one settling turn in summary, got %+v", summary.StateCounts)
	}

	if mismatches := Verify(f, results); len(mismatches) != 0 {
		t.Errorf("expected clean verify, got %v", mismatches)
	}
}

func TestReplay_OverrideRecorded(t *testing.T) {
	f := &Fixture{
		Utterances: []FixtureUtterance{
			{TurnID: "t1", Text: "EVERYTHING FEELS OVERWHELMING AND I DON'T KNOW WHAT TO DO"},
		},
		ExpectedResults: []FixtureExpectedResult{
			{TurnID: "t1", State: "settling", Rule: "safety_override", Override: true},
		},
	}

	results, summary := Replay(f, nil)
	if summary.Overrides != 1 {
		t.Fatalf("expected 1 override, got %d", summary.Overrides)
	}
	if mismatches := Verify(f, results); len(mismatches) != 0 {
		t.Errorf("expected clean verify, got %v", mismatches)
	}
}

func TestReplay_FailedTurnDoesNotAdvance(t *testing.T) {
	f := &Fixture{
		Utterances: []FixtureUtterance{
			{TurnID: "t1", Text: ""},
			{TurnID: "t2", Text: "I'm feeling uncertain about a decision I need to make"},
		},
	}

	results, summary := Replay(f, nil)
	if summary.Failures != 1 {
		t.Fatalf("expected 1 failure, got %d", summary.Failures)
	}
	if results[0].Err == nil {
		t.Fatal("expected error on empty-utterance turn")
	}
	if results[1].Err != nil {
		t.Fatalf("second turn should succeed: %v", results[1].Err)
	}
}

func TestReplay_EmergenceSummary(t *testing.T) {
	utterance := "I think about the pattern because it returns again and again between things"
	f := &Fixture{
		Utterances: []FixtureUtterance{
			{TurnID: "t1", Text: utterance},
			{TurnID: "t2", Text: utterance},
			{TurnID: "t3", Text: utterance},
		},
	}

	_, summary := Replay(f, nil)
	if !summary.Emerged {
		t.Fatal("expected session to reach emergence")
	}
	if summary.Query != utterance {
		t.Errorf("unexpected emerged query: %q", summary.Query)
	}
	if summary.StateCounts["emerging"] != 3 {
		t.Errorf("expected 3 emerging turns, got %+v", summary.StateCounts)
	}
}

// #endregion replay-tests

// #region verify-tests
func TestVerify_ReportsMismatches(t *testing.T) {
	f := &Fixture{
		ExpectedResults: []FixtureExpectedResult{
			{TurnID: "t1", State: "containing"},
			{TurnID: "t9", State: "settling"},
		},
	}
	results := []Result{{TurnID: "t1", State: "dwelling"}}

	mismatches := Verify(f, results)
	if len(mismatches) != 2 {
		t.Fatalf("expected 2 mismatches, got %d: %v", len(mismatches), mismatches)
	}
	if mismatches[0].Field != "state" || mismatches[0].Got != "dwelling" {
		t.Errorf("unexpected first mismatch: %+v", mismatches[0])
	}
	if mismatches[1].Field != "turn" {
		t.Errorf("unexpected second mismatch: %+v", mismatches[1])
	}
}

// #endregion verify-tests
