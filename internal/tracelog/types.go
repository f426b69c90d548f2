package tracelog

import "time"

// #region turn-entry
// TurnEntry is a single row in the turn_log table. One row per homeostat
// turn, enough to reconstruct the session's regulatory trajectory.
type TurnEntry struct {
	SessionID   string
	TurnID      string
	Utterance   string
	State       string
	VarietyJSON string
	Momentum    float64
	Persistence int
	Rule        string
	Override    bool
	CreatedAt   time.Time
}
// #endregion turn-entry
