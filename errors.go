package vcolor

import "fmt"

// ContextError reports a precondition violation detected before any mesh
// mutation begins: a missing active attribute, an empty selection, no
// active vertex or face, or a domain mismatch. Every ContextError is
// recoverable by the caller adjusting its input and re-invoking; there is
// no retry policy and no partial mutation to roll back.
type ContextError struct {
	Reason string
}

func (e *ContextError) Error() string { return e.Reason }

// ctxErrorf builds a *ContextError from a format string.
func ctxErrorf(format string, args ...any) error {
	return &ContextError{Reason: fmt.Sprintf(format, args...)}
}
