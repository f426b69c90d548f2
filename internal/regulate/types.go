package regulate

import (
	"github.com/liminal-ware/querent/internal/environment"
	"github.com/liminal-ware/querent/internal/variety"
)

// #region rule

// Predicate decides whether a rule fires for this turn's measures and the
// session record as it stood before the turn.
type Predicate func(v variety.Variety, env *environment.Environment) bool

// Rule maps a predicate to a target state. Rules live in an explicitly
// ordered slice; position is priority and first match wins.
type Rule struct {
	Name   string
	Target environment.State
	When   Predicate
}

// #endregion rule

// #region config

// Config holds every transition threshold. The rule list reads these rather
// than embedding literals, so one surface owns all tuning.
type Config struct {
	OverloadIntensity float64 `yaml:"overload_intensity"` // safety override trigger
	OverloadDispersal float64 `yaml:"overload_dispersal"` // safety override trigger
	HighMean          float64 `yaml:"high_mean"`          // mean variety → containing
	HighDispersal     float64 `yaml:"high_dispersal"`     // dispersal → dwelling
	HighComplexity    float64 `yaml:"high_complexity"`    // complexity → containing
	StuckPersistence  int     `yaml:"stuck_persistence"`  // turns before expansion nudge
	StuckMomentum     float64 `yaml:"stuck_momentum"`     // momentum floor for expansion nudge
	LowComplexity     float64 `yaml:"low_complexity"`     // complexity → settling
	EmergeTurns       int     `yaml:"emerge_turns"`       // emerging persistence before hand-off
}

// DefaultConfig returns the canonical thresholds.
func DefaultConfig() Config {
	return Config{
		OverloadIntensity: 0.9,
		OverloadDispersal: 0.9,
		HighMean:          0.8,
		HighDispersal:     0.7,
		HighComplexity:    0.7,
		StuckPersistence:  3,
		StuckMomentum:     0.1,
		LowComplexity:     0.2,
		EmergeTurns:       2,
	}
}

// #endregion config

// #region decision

// Decision reports which rule fired and where it sent the session.
type Decision struct {
	Rule     string
	Target   environment.State
	Override bool // true when the safety override fired
}

// #endregion decision
