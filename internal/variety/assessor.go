package variety

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/liminal-ware/querent/internal/fault"
)

// #region assessor

// Assessor computes a Variety from a single utterance. All three measures
// are pure functions of the text; the only held state is the optional
// rolling window of recent measures.
type Assessor struct {
	config Config
	window []Variety
}

// NewAssessor creates an Assessor with the given weights.
func NewAssessor(config Config) *Assessor {
	if config.Window < 1 {
		config.Window = 1
	}
	return &Assessor{config: config}
}

// #endregion assessor

// #region assess

// Assess measures one utterance. Empty or oversized input fails with an
// input-validation fault; whitespace-only input yields the zero Variety.
func (a *Assessor) Assess(text string) (Variety, error) {
	if text == "" {
		return Variety{}, fault.New(fault.KindInputValidation, "utterance is empty")
	}
	if a.config.MaxInputLen > 0 && utf8.RuneCountInString(text) > a.config.MaxInputLen {
		return Variety{}, fault.New(fault.KindInputValidation, "utterance exceeds maximum length").
			With("length", fmt.Sprintf("%d", utf8.RuneCountInString(text))).
			With("max", fmt.Sprintf("%d", a.config.MaxInputLen))
	}
	if strings.TrimSpace(text) == "" {
		return a.windowed(Variety{}), nil
	}

	v, err := New(
		a.dispersal(text),
		a.intensity(text),
		a.complexity(text),
	)
	if err != nil {
		return Variety{}, fault.Wrap(fault.KindAssessment, "variety measure out of range", err)
	}
	return a.windowed(v), nil
}

// windowed applies the optional rolling-window average. With Window == 1
// the raw measure passes through untouched.
func (a *Assessor) windowed(v Variety) Variety {
	if a.config.Window <= 1 {
		return v
	}
	a.window = append(a.window, v)
	if len(a.window) > a.config.Window {
		a.window = a.window[1:]
	}
	var sum Variety
	for _, w := range a.window {
		sum.Dispersal += w.Dispersal
		sum.Intensity += w.Intensity
		sum.Complexity += w.Complexity
	}
	n := float64(len(a.window))
	return Variety{
		Dispersal:  sum.Dispersal / n,
		Intensity:  sum.Intensity / n,
		Complexity: sum.Complexity / n,
	}
}

// #endregion assess

// #region dispersal

// dispersal scores rhythmic scatter: sentence-length variance, flow
// disruptions, and structural breaks. Pattern, not content.
func (a *Assessor) dispersal(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0.0
	}

	lengths := make([]float64, len(sentences))
	var total float64
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		total += lengths[i]
	}
	avg := total / float64(len(lengths))

	var deviation float64
	for _, l := range lengths {
		deviation += math.Abs(l - avg)
	}
	scatter := deviation / (float64(len(lengths)) * avg)

	runes := float64(utf8.RuneCountInString(text))
	lower := strings.ToLower(text)
	disruption := float64(countAll(flowDisruptions, lower)) / runes
	breaks := float64(len(sentenceBreaks.FindAllStringIndex(text, -1))) / runes

	w := a.config.Dispersal
	score := w.Scatter*scatter + w.Disruption*disruption + w.Breaks*breaks
	return clamp01(score * w.Gain)
}

// #endregion dispersal

// #region intensity

// intensity scores energetic charge: hot/cool marker pressure, embodied
// references, cross-sentence polarity shifts, and immediate repetition.
func (a *Assessor) intensity(text string) float64 {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	wordCount := math.Max(float64(len(words)), 1)

	hot := float64(countAll(hotMarkers, lower) + len(allCaps.FindAllStringIndex(text, -1)))
	cool := float64(countAll(coolMarkers, lower))
	pressure := (hot*a.config.Intensity.HotBoost + cool) / wordCount

	embodied := float64(countAll(embodiedMarkers, lower)) / wordCount

	repeats := 0
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			repeats++
		}
	}
	repetition := float64(repeats) / wordCount

	shifts := 0.0
	sentences := splitSentences(text)
	if len(sentences) > 1 {
		shifted := 0
		for i := 0; i < len(sentences)-1; i++ {
			if polarityShift(sentences[i], sentences[i+1]) {
				shifted++
			}
		}
		shifts = float64(shifted) / float64(len(sentences)-1)
	}

	w := a.config.Intensity
	score := w.Pressure*pressure + w.Embodied*embodied + w.Shifts*shifts + w.Repetition*repetition
	return clamp01(score * w.Gain)
}

// polarityShift reports whether the hot/cool balance moves by more than one
// marker class between adjacent sentences.
func polarityShift(prev, next string) bool {
	return absInt(polarity(prev)-polarity(next)) > 1
}

// polarity counts hot marker classes present minus cool marker classes
// present. Presence, not frequency.
func polarity(sentence string) int {
	lower := strings.ToLower(sentence)
	hot, cool := 0, 0
	for _, p := range hotMarkers {
		if p.MatchString(lower) {
			hot++
		}
	}
	if allCaps.MatchString(sentence) {
		hot++
	}
	for _, p := range coolMarkers {
		if p.MatchString(lower) {
			cool++
		}
	}
	return hot - cool
}

// #endregion intensity

// #region complexity

// complexity scores conceptual density: connective words, perspectival
// shifts, abstraction vocabulary, conceptual movement, and self-reference.
// Movement is a raw count: a handful of scale/time/space terms saturates
// the sub-score.
func (a *Assessor) complexity(text string) float64 {
	lower := strings.ToLower(text)
	wordCount := math.Max(float64(len(strings.Fields(lower))), 1)

	connections := float64(countAll(connectionMarkers, lower)) / wordCount

	shiftCount := len(tenseShifts.FindAllStringIndex(lower, -1)) +
		len(viewpointShifts.FindAllStringIndex(lower, -1))
	shifts := float64(shiftCount) / wordCount

	abstraction := float64(countAll(abstractionMarkers, lower)) / wordCount
	movement := float64(countAll(movementMarkers, lower))
	recursion := float64(countAll(recursionMarkers, lower)) / wordCount

	w := a.config.Complexity
	score := w.Connections*connections + w.Shifts*shifts + w.Abstraction*abstraction +
		w.Movement*movement + w.Recursion*recursion
	return clamp01(score * w.Gain)
}

// #endregion complexity

// #region helpers

// splitSentences breaks text on terminal punctuation, dropping empties.
func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// #endregion helpers
