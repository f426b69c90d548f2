package variety

import (
	"strings"
	"testing"

	"github.com/liminal-ware/querent/internal/fault"
)

func TestAssessRejectsEmpty(t *testing.T) {
	a := NewAssessor(DefaultConfig())
	_, err := a.Assess("")
	if err == nil {
		t.Fatal("expected error for empty utterance")
	}
	if !fault.Is(err, fault.KindInputValidation) {
		t.Fatalf("expected input_validation fault, got %v", err)
	}
}

func TestAssessRejectsOversized(t *testing.T) {
	a := NewAssessor(DefaultConfig())
	_, err := a.Assess(strings.Repeat("x", 1001))
	if err == nil {
		t.Fatal("expected error for oversized utterance")
	}
	if !fault.Is(err, fault.KindInputValidation) {
		t.Fatalf("expected input_validation fault, got %v", err)
	}
}

func TestWhitespaceOnlyYieldsZero(t *testing.T) {
	a := NewAssessor(DefaultConfig())
	v, err := a.Assess("   \t  \n ")
	if err != nil {
		t.Fatalf("whitespace-only should not fail: %v", err)
	}
	if v != (Variety{}) {
		t.Fatalf("expected zero variety, got %v", v)
	}
}

func TestMeasuresAlwaysBounded(t *testing.T) {
	texts := []string{
		"a",
		"maybe it's about trust",
		"I'm feeling uncertain about a decision I need to make",
		"EVERYTHING FEELS OVERWHELMING AND I DON'T KNOW WHAT TO DO",
		"!!! ??? ... --- ;;; :::",
		"now now now never never always must need!!! REALLY TRULY",
		"There are so many factors to consider and I'm not sure where to begin...",
		"The pattern within the pattern, because the system changes while the structure holds. Before and after. Here and there.",
		strings.Repeat("word ", 190),
		"one.\ntwo.\nthree!\nFOUR?\nfive...",
	}
	a := NewAssessor(DefaultConfig())
	for _, text := range texts {
		v, err := a.Assess(text)
		if err != nil {
			t.Fatalf("assess %q: %v", text, err)
		}
		for name, m := range map[string]float64{
			"dispersal": v.Dispersal, "intensity": v.Intensity, "complexity": v.Complexity,
		} {
			if m < 0.0 || m > 1.0 {
				t.Fatalf("%s out of range for %q: %v", name, text, m)
			}
		}
	}
}

func TestAssessDeterministic(t *testing.T) {
	text := "There are so many factors to consider and I'm not sure where to begin..."
	a := NewAssessor(DefaultConfig())
	b := NewAssessor(DefaultConfig())
	v1, err := a.Assess(text)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := b.Assess(text)
	if err != nil {
		t.Fatal(err)
	}
	if v1 != v2 {
		t.Fatalf("identical input produced %v then %v", v1, v2)
	}
}

// Reference-formula pin for the uncertain-decision utterance. The exact
// sub-scores come out of the canonical weights; if these drift, the
// regulator's behavior drifts with them.
func TestUncertainDecisionPinned(t *testing.T) {
	a := NewAssessor(DefaultConfig())
	v, err := a.Assess("I'm feeling uncertain about a decision I need to make")
	if err != nil {
		t.Fatal(err)
	}
	if v.Dispersal != 0.0 {
		t.Fatalf("expected zero dispersal for a single plain sentence, got %v", v.Dispersal)
	}
	// pressure 0.2 and embodied 0.2 over ten words: (0.40+0.25)*0.2*2.5
	if diff(v.Intensity, 0.325) > 1e-9 {
		t.Fatalf("expected intensity 0.325, got %v", v.Intensity)
	}
	// two viewpoint markers over ten words: 0.25*0.2*2.5
	if diff(v.Complexity, 0.125) > 1e-9 {
		t.Fatalf("expected complexity 0.125, got %v", v.Complexity)
	}
}

// All-caps urgency must saturate intensity so the safety override can fire.
func TestOverwhelmSaturatesIntensity(t *testing.T) {
	a := NewAssessor(DefaultConfig())
	v, err := a.Assess("EVERYTHING FEELS OVERWHELMING AND I DON'T KNOW WHAT TO DO")
	if err != nil {
		t.Fatal(err)
	}
	if v.Intensity <= 0.9 {
		t.Fatalf("expected intensity above 0.9, got %v", v.Intensity)
	}
}

func TestWindowedAssessmentSmooths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window = 3
	a := NewAssessor(cfg)

	hot := "EVERYTHING FEELS OVERWHELMING AND I DON'T KNOW WHAT TO DO"
	calm := "maybe it's about trust"

	first, err := a.Assess(hot)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assess(calm)
	if err != nil {
		t.Fatal(err)
	}
	if second.Intensity >= first.Intensity {
		t.Fatalf("window should pull intensity down: %v then %v", first.Intensity, second.Intensity)
	}
	if second.Intensity == 0.0 {
		t.Fatal("window should retain some of the hot turn's charge")
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
