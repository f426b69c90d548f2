package replay

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/liminal-ware/querent/internal/homeostat"
	"github.com/liminal-ware/querent/internal/variety"
)

// #region types

// Result captures the outcome of replaying one utterance through the loop.
type Result struct {
	TurnID      string
	Utterance   string
	Variety     variety.Variety
	State       string
	Rule        string
	Override    bool
	Response    string
	Persistence int
	Momentum    float64
	Err         error
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalTurns  int
	StateCounts map[string]int
	Overrides   int
	Failures    int
	Emerged     bool
	Query       string
}

// Mismatch pairs an expectation with what the replay actually produced.
type Mismatch struct {
	TurnID string
	Field  string
	Want   string
	Got    string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("turn %s: %s: want %q, got %q", m.TurnID, m.Field, m.Want, m.Got)
}

// #endregion types

// #region replay

// Replay feeds the fixture's utterances through a fresh session in order.
// Failed turns are recorded with Err set and do not advance the loop, which
// mirrors live behavior.
func Replay(f *Fixture, logger *zap.Logger) ([]Result, Summary) {
	h := homeostat.New(f.Config.ToHomeostatConfig(), logger)

	results := make([]Result, 0, len(f.Utterances))
	summary := Summary{StateCounts: make(map[string]int)}

	for _, u := range f.Utterances {
		turn, err := h.Turn(u.Text)
		if err != nil {
			results = append(results, Result{TurnID: u.TurnID, Utterance: u.Text, Err: err})
			summary.Failures++
			summary.TotalTurns++
			continue
		}
		results = append(results, Result{
			TurnID:      u.TurnID,
			Utterance:   u.Text,
			Variety:     turn.Variety,
			State:       string(turn.State),
			Rule:        turn.Rule,
			Override:    turn.Override,
			Response:    turn.Response,
			Persistence: turn.Persistence,
			Momentum:    turn.Momentum,
		})
		summary.StateCounts[string(turn.State)]++
		if turn.Override {
			summary.Overrides++
		}
		summary.TotalTurns++
	}

	summary.Emerged = h.Emerged()
	summary.Query = h.Query()
	return results, summary
}

// Verify compares replay results against the fixture's expectations, matched
// by turn id. Expectations for unknown turn ids are reported as mismatches.
func Verify(f *Fixture, results []Result) []Mismatch {
	byID := make(map[string]Result, len(results))
	for _, r := range results {
		byID[r.TurnID] = r
	}

	var mismatches []Mismatch
	for _, want := range f.ExpectedResults {
		got, ok := byID[want.TurnID]
		if !ok {
			mismatches = append(mismatches, Mismatch{TurnID: want.TurnID, Field: "turn", Want: "present", Got: "missing"})
			continue
		}
		if got.Err != nil {
			mismatches = append(mismatches, Mismatch{TurnID: want.TurnID, Field: "error", Want: "none", Got: got.Err.Error()})
			continue
		}
		if got.State != want.State {
			mismatches = append(mismatches, Mismatch{TurnID: want.TurnID, Field: "state", Want: want.State, Got: got.State})
		}
		if want.Rule != "" && got.Rule != want.Rule {
			mismatches = append(mismatches, Mismatch{TurnID: want.TurnID, Field: "rule", Want: want.Rule, Got: got.Rule})
		}
		if got.Override != want.Override {
			mismatches = append(mismatches, Mismatch{TurnID: want.TurnID, Field: "override", Want: fmt.Sprintf("%t", want.Override), Got: fmt.Sprintf("%t", got.Override)})
		}
	}
	return mismatches
}

// #endregion replay
