// Package environment holds the per-session record of the dialogue: current
// state, current measures, bounded history, momentum, persistence, pacing.
package environment

// #region state

// State is the dialogue mode the regulator keeps the session within.
type State string

const (
	Settling   State = "settling"   // initial state, establishing presence
	Expanding  State = "expanding"  // opening to broader awareness
	Containing State = "containing" // providing structure and boundaries
	Dwelling   State = "dwelling"   // staying with particular elements
	Emerging   State = "emerging"   // moving toward query formation
)

// States lists every dialogue state in declaration order.
func States() []State {
	return []State{Settling, Expanding, Containing, Dwelling, Emerging}
}

// Valid reports whether s is a known dialogue state.
func (s State) Valid() bool {
	switch s {
	case Settling, Expanding, Containing, Dwelling, Emerging:
		return true
	}
	return false
}

// #endregion state
