// Package regulate is the homeostat's state machine: a safety override plus
// an explicitly ordered list of transition rules, evaluated first-match-wins
// every turn. Array order, not set iteration, so evaluation is reproducible.
package regulate

import (
	"github.com/liminal-ware/querent/internal/environment"
	"github.com/liminal-ware/querent/internal/fault"
	"github.com/liminal-ware/querent/internal/variety"
)

// #region regulator

// Regulator selects the next dialogue state from this turn's measures and
// the session record. Deterministic: identical inputs always produce the
// same decision.
type Regulator struct {
	config Config
	rules  []Rule
}

// NewRegulator builds a regulator with the canonical ordered rule list.
func NewRegulator(config Config) *Regulator {
	r := &Regulator{config: config}
	r.rules = r.buildRules()
	return r
}

// buildRules assembles the ordered list. Position is priority; the final
// catch-all keeps the list exhaustive.
func (r *Regulator) buildRules() []Rule {
	cfg := r.config
	return []Rule{
		{
			Name:   "high_total_variety",
			Target: environment.Containing,
			When: func(v variety.Variety, _ *environment.Environment) bool {
				return v.Mean() > cfg.HighMean
			},
		},
		{
			Name:   "scattered",
			Target: environment.Dwelling,
			When: func(v variety.Variety, _ *environment.Environment) bool {
				return v.Dispersal > cfg.HighDispersal
			},
		},
		{
			Name:   "dense",
			Target: environment.Containing,
			When: func(v variety.Variety, _ *environment.Environment) bool {
				return v.Complexity > cfg.HighComplexity
			},
		},
		{
			Name:   "stalled",
			Target: environment.Expanding,
			When: func(_ variety.Variety, env *environment.Environment) bool {
				return env.Persistence() > cfg.StuckPersistence && env.Momentum() < cfg.StuckMomentum
			},
		},
		{
			Name:   "flat",
			Target: environment.Settling,
			When: func(v variety.Variety, _ *environment.Environment) bool {
				return v.Complexity < cfg.LowComplexity
			},
		},
		{
			Name:   "emerging",
			Target: environment.Emerging,
			When: func(variety.Variety, *environment.Environment) bool {
				return true
			},
		},
	}
}

// #endregion regulator

// #region next

// Next picks the turn's state. The safety override runs before the rule
// list and de-escalates overload unconditionally, from any state.
func (r *Regulator) Next(v variety.Variety, env *environment.Environment) (Decision, error) {
	if v.Intensity > r.config.OverloadIntensity || v.Dispersal > r.config.OverloadDispersal {
		return Decision{Rule: "safety_override", Target: environment.Settling, Override: true}, nil
	}

	for _, rule := range r.rules {
		if rule.When(v, env) {
			return Decision{Rule: rule.Name, Target: rule.Target}, nil
		}
	}

	// Unreachable while the list ends in a catch-all.
	return Decision{}, fault.New(fault.KindStateTransition, "no transition rule matched").
		With("state", string(env.State()))
}

// #endregion next

// #region emergence

// Emerged reports the hand-off signal: the session has held Emerging for at
// least EmergeTurns consecutive turns. A boundary contract for the caller,
// not a terminal state.
func (r *Regulator) Emerged(env *environment.Environment) bool {
	return env.State() == environment.Emerging && env.Persistence() >= r.config.EmergeTurns
}

// #endregion emergence
