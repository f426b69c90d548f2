package homeostat

import (
	"time"

	"github.com/liminal-ware/querent/internal/environment"
	"github.com/liminal-ware/querent/internal/variety"
)

// #region trace

// Moment is one captured point in the session's evolution.
type Moment struct {
	State   environment.State
	Variety variety.Variety
	Elapsed time.Duration // since session start
}

// Trace records the shape of a session: state transitions and variety
// snapshots in order. Diagnostics only: never consulted by the regulator,
// discarded with the session.
type Trace struct {
	start   time.Time
	moments []Moment
}

// NewTrace starts a trace clock.
func NewTrace() *Trace {
	return &Trace{start: time.Now()}
}

// Capture appends one moment.
func (t *Trace) Capture(state environment.State, v variety.Variety) {
	t.moments = append(t.moments, Moment{
		State:   state,
		Variety: v,
		Elapsed: time.Since(t.start),
	})
}

// Moments returns the captured sequence, oldest first.
func (t *Trace) Moments() []Moment {
	return t.moments
}

// Transitions returns only the moments where the state changed from the
// previous captured moment.
func (t *Trace) Transitions() []Moment {
	var out []Moment
	for i, m := range t.moments {
		if i == 0 || m.State != t.moments[i-1].State {
			out = append(out, m)
		}
	}
	return out
}

// #endregion trace
