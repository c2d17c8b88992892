package service

import "errors"

// ErrNotConfirmed is returned when a destructive operation was not
// explicitly approved. Absence of an answer counts as "no".
var ErrNotConfirmed = errors.New("operation not confirmed")

// Confirmer is the synchronous yes/no surface consulted before
// destructive operations (cart clear, item and supplier delete). The
// presentation layer decides how the question is actually asked.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Decline never confirms; it is the default when no answer was given.
var Decline = ConfirmerFunc(func(string) bool { return false })
