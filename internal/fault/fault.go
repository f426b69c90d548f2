// Package fault defines the single tagged error type surfaced by the
// homeostat core. Every failed turn produces exactly one Fault; the caller
// decides whether to re-prompt.
package fault

import (
	"errors"
	"fmt"
	"time"
)

// #region kind

// Kind enumerates the failure categories of the dialogue core.
type Kind string

const (
	KindInputValidation Kind = "input_validation" // empty, whitespace-only, or oversized utterance
	KindAssessment      Kind = "assessment"       // a heuristic computation failed unexpectedly
	KindStateTransition Kind = "state_transition" // no rule matched and no default applied
)

// #endregion kind

// #region fault

// Fault carries a message, diagnostic context, and a timestamp.
type Fault struct {
	Kind    Kind
	Msg     string
	Context map[string]string
	At      time.Time
	wrapped error
}

// New creates a Fault of the given kind.
func New(kind Kind, msg string) *Fault {
	return &Fault{Kind: kind, Msg: msg, At: time.Now().UTC()}
}

// Wrap creates a Fault that wraps an underlying error.
func Wrap(kind Kind, msg string, err error) *Fault {
	return &Fault{Kind: kind, Msg: msg, At: time.Now().UTC(), wrapped: err}
}

// With attaches a context key-value pair and returns the same Fault.
func (f *Fault) With(key, value string) *Fault {
	if f.Context == nil {
		f.Context = make(map[string]string)
	}
	f.Context[key] = value
	return f
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Msg, f.wrapped)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
}

// Unwrap exposes the underlying error, if any.
func (f *Fault) Unwrap() error {
	return f.wrapped
}

// #endregion fault

// #region helpers

// KindOf reports the Kind of err, or "" if no *Fault is in its chain.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// Is reports whether err is a *Fault of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// #endregion helpers
