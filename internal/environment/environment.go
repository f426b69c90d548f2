package environment

import (
	"math"

	"github.com/liminal-ware/querent/internal/variety"
)

// HistoryCap is the fixed capacity of the variety history buffer.
const HistoryCap = 5

// #region environment

// Environment is the mutable per-session record. It is created at session
// start, mutated exactly once per turn by Update, and discarded at session
// end. Nothing outside the active session sees it.
type Environment struct {
	state        State
	variety      variety.Variety
	lastResponse string

	pauseLevel int // temporal pacing, 1-5
	depthLevel int // depth of engagement, 1-5

	momentum    float64 // turn-over-turn change in mean variety
	persistence int     // consecutive turns in the current state

	// history is a fixed-capacity ring buffer of recent Variety values.
	history [HistoryCap]variety.Variety
	head    int // index of the next write
	count   int // number of live entries, <= HistoryCap
}

// New returns a session-start Environment: Settling, zero variety,
// empty history, pacing levels at their floor.
func New() *Environment {
	return &Environment{
		state:      Settling,
		pauseLevel: 1,
		depthLevel: 1,
	}
}

// #endregion environment

// #region accessors

// State returns the current dialogue state.
func (e *Environment) State() State { return e.state }

// Variety returns the most recent measures.
func (e *Environment) Variety() variety.Variety { return e.variety }

// LastResponse returns the previously rendered response text.
func (e *Environment) LastResponse() string { return e.lastResponse }

// PauseLevel returns the temporal pacing level in [1, 5].
func (e *Environment) PauseLevel() int { return e.pauseLevel }

// DepthLevel returns the engagement depth level in [1, 5].
func (e *Environment) DepthLevel() int { return e.depthLevel }

// Momentum returns the turn-over-turn change in mean variety.
func (e *Environment) Momentum() float64 { return e.momentum }

// Persistence returns how many consecutive turns the session has stayed in
// the current state.
func (e *Environment) Persistence() int { return e.persistence }

// History returns the retained Variety values, oldest first.
func (e *Environment) History() []variety.Variety {
	out := make([]variety.Variety, 0, e.count)
	start := e.head - e.count
	for i := 0; i < e.count; i++ {
		out = append(out, e.history[mod(start+i, HistoryCap)])
	}
	return out
}

// #endregion accessors

// #region update

// Update records one turn against the record. Ordering matters: momentum
// and persistence are computed against the previous state and history
// before either is touched; the state itself is set last.
func (e *Environment) Update(v variety.Variety, newState State) {
	// 1. Momentum against the most recent prior measure.
	if e.count > 0 {
		prev := e.history[mod(e.head-1, HistoryCap)]
		e.momentum = v.Mean() - prev.Mean()
	} else {
		e.momentum = 0.0
	}

	// 2. Persistence against the previous state.
	if newState == e.state {
		e.persistence++
	} else {
		e.persistence = 0
	}

	// 3. Push into the ring, evicting the oldest when full.
	e.history[e.head] = v
	e.head = mod(e.head+1, HistoryCap)
	if e.count < HistoryCap {
		e.count++
	}

	// 4. Pacing follows intensity, depth follows complexity.
	e.pauseLevel = clampLevel(level(v.Intensity))
	e.depthLevel = clampLevel(level(v.Complexity))

	// 5. Commit the new state and measures.
	e.variety = v
	e.state = newState
}

// SetLastResponse records the rendered response for the turn.
func (e *Environment) SetLastResponse(text string) {
	e.lastResponse = text
}

// #endregion update

// #region helpers

// level maps a [0,1] measure onto 1-5.
func level(measure float64) int {
	return int(math.Round(measure*5.0)) + 1
}

func clampLevel(l int) int {
	if l < 1 {
		return 1
	}
	if l > 5 {
		return 5
	}
	return l
}

func mod(i, n int) int {
	return ((i % n) + n) % n
}

// #endregion helpers
