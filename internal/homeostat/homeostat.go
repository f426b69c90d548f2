// Package homeostat wires the assessor, regulator, environment, and
// generator into the per-turn control loop. One synchronous turn at a time;
// a failed turn aborts without touching the session record.
package homeostat

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/liminal-ware/querent/internal/environment"
	"github.com/liminal-ware/querent/internal/regulate"
	"github.com/liminal-ware/querent/internal/respond"
	"github.com/liminal-ware/querent/internal/variety"
)

// #region config

// Config gathers the tuning surfaces of the whole control loop.
type Config struct {
	Variety  variety.Config  `yaml:"variety"`
	Regulate regulate.Config `yaml:"regulate"`
}

// DefaultConfig returns the canonical configuration.
func DefaultConfig() Config {
	return Config{
		Variety:  variety.DefaultConfig(),
		Regulate: regulate.DefaultConfig(),
	}
}

// #endregion config

// #region turn-result

// TurnResult reports everything one turn produced.
type TurnResult struct {
	TurnID      string
	Utterance   string
	Variety     variety.Variety
	State       environment.State
	Rule        string
	Override    bool
	Response    string
	Momentum    float64
	Persistence int
	PauseLevel  int
	DepthLevel  int
}

// #endregion turn-result

// #region homeostat

// Homeostat regulates one dialogue session. Not safe for concurrent use;
// a session runs one synchronous turn at a time.
type Homeostat struct {
	assessor  *variety.Assessor
	regulator *regulate.Regulator
	generator *respond.Generator
	env       *environment.Environment
	trace     *Trace
	logger    *zap.Logger

	sessionID string
	turns     int

	// sigText is the most charged utterance so far; it becomes the query
	// handed to card drawing on emergence.
	sigText string
	sigMean float64
}

// New creates a Homeostat for a fresh session. logger may be nil.
func New(config Config, logger *zap.Logger) *Homeostat {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Homeostat{
		assessor:  variety.NewAssessor(config.Variety),
		regulator: regulate.NewRegulator(config.Regulate),
		generator: respond.NewGenerator(),
		env:       environment.New(),
		trace:     NewTrace(),
		logger:    logger,
		sessionID: uuid.New().String(),
	}
}

// SessionID returns the session identifier.
func (h *Homeostat) SessionID() string { return h.sessionID }

// Environment exposes the session record, read-mostly, for callers that
// render diagnostics.
func (h *Homeostat) Environment() *environment.Environment { return h.env }

// Trace returns the session trace. Informational only; the regulator never
// consults it.
func (h *Homeostat) Trace() *Trace { return h.trace }

// #endregion homeostat

// #region turn

// Turn runs one full cycle: assess, regulate, update, respond. On error the
// Environment is left exactly as it was, with no partial update.
func (h *Homeostat) Turn(utterance string) (TurnResult, error) {
	v, err := h.assessor.Assess(utterance)
	if err != nil {
		return TurnResult{}, err
	}

	decision, err := h.regulator.Next(v, h.env)
	if err != nil {
		return TurnResult{}, err
	}

	h.env.Update(v, decision.Target)

	response := h.generator.Generate(decision.Target, utterance, h.env.PauseLevel(), h.env.DepthLevel())
	h.env.SetLastResponse(response)

	h.turns++
	h.trace.Capture(decision.Target, v)
	if v.Mean() >= h.sigMean {
		h.sigText = utterance
		h.sigMean = v.Mean()
	}

	result := TurnResult{
		TurnID:      uuid.New().String(),
		Utterance:   utterance,
		Variety:     v,
		State:       decision.Target,
		Rule:        decision.Rule,
		Override:    decision.Override,
		Response:    response,
		Momentum:    h.env.Momentum(),
		Persistence: h.env.Persistence(),
		PauseLevel:  h.env.PauseLevel(),
		DepthLevel:  h.env.DepthLevel(),
	}

	h.logger.Debug("turn regulated",
		zap.String("session", h.sessionID),
		zap.String("turn", result.TurnID),
		zap.String("state", string(result.State)),
		zap.String("rule", result.Rule),
		zap.Float64("dispersal", v.Dispersal),
		zap.Float64("intensity", v.Intensity),
		zap.Float64("complexity", v.Complexity),
		zap.Float64("momentum", result.Momentum),
		zap.Int("persistence", result.Persistence),
	)

	return result, nil
}

// #endregion turn

// #region emergence

// Emerged reports whether the session has held Emerging long enough to hand
// off to card drawing.
func (h *Homeostat) Emerged() bool {
	return h.regulator.Emerged(h.env)
}

// Query returns the utterance that becomes the reading's query string: the
// most charged utterance of the session. Empty until the first turn.
func (h *Homeostat) Query() string {
	return h.sigText
}

// Turns returns the number of completed turns.
func (h *Homeostat) Turns() int { return h.turns }

// Opening renders the session's first settling response, before any
// utterance has arrived.
func (h *Homeostat) Opening() string {
	return h.generator.Generate(environment.Settling, "", h.env.PauseLevel(), h.env.DepthLevel())
}

// #endregion emergence
