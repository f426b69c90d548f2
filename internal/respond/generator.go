// Package respond renders mode-appropriate response text from fixed prompt
// and pattern tables. Rendering is deterministic: identical (state,
// utterance, pacing) always yields identical output.
package respond

import (
	"fmt"
	"strings"

	"github.com/liminal-ware/querent/internal/environment"
)

// maxReflectWords caps the phrase a containing response mirrors back.
const maxReflectWords = 5

// #region generator

// Generator renders one response per turn. It holds no mutable state.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the response for a turn. pauseLevel and depthLevel are
// clamped into [1, 5]; states outside the table render as Settling.
func (g *Generator) Generate(state environment.State, utterance string, pauseLevel, depthLevel int) string {
	pauseLevel = clampLevel(pauseLevel)
	depthLevel = clampLevel(depthLevel)

	var body string
	switch state {
	case environment.Containing:
		body = g.containing(utterance, depthLevel)
	case environment.Dwelling:
		body = g.dwelling(utterance, depthLevel)
	case environment.Expanding, environment.Emerging, environment.Settling:
		body = statePrompts[state][depthLevel-1]
	default:
		body = statePrompts[environment.Settling][depthLevel-1]
	}

	return g.paced(body, pauseLevel)
}

// #endregion generator

// #region state-renderers

// containing mirrors the opening of the utterance back inside a
// depth-indexed bracket, ellipsis-suffixed when truncated.
func (g *Generator) containing(utterance string, depthLevel int) string {
	words := strings.Fields(utterance)
	phrase := utterance
	if len(words) > maxReflectWords {
		phrase = strings.Join(words[:maxReflectWords], " ") + "..."
	}
	bracket := containingPatterns[depthLevel-1]
	return bracket[0] + phrase + bracket[1]
}

// dwelling reflects the utterance's middle word as a focal phrase, indented
// by depth level.
func (g *Generator) dwelling(utterance string, depthLevel int) string {
	words := strings.Fields(utterance)
	if len(words) == 0 {
		return depthIndents[depthLevel-1] + statePrompts[environment.Dwelling][depthLevel-1]
	}
	focus := words[len(words)/2]
	return depthIndents[depthLevel-1] + fmt.Sprintf("staying with: %s", focus)
}

// paced appends the pacing marker for the pause level.
func (g *Generator) paced(body string, pauseLevel int) string {
	return body + "\n" + pausePatterns[pauseLevel-1]
}

// #endregion state-renderers

// #region helpers

func clampLevel(l int) int {
	if l < 1 {
		return 1
	}
	if l > 5 {
		return 5
	}
	return l
}

// #endregion helpers
