package gate

import (
	"errors"
	"fmt"
)

const helpMessage = " Jumpgate. Did you render multiple <Provider /> ?"

// Warnings emitted through the diagnostics sink. They never stop the update.
const (
	MountWarning   = "Tried to use an already-full" + helpMessage
	UpdateWarning  = "Tried to update an empty" + helpMessage
	UnmountWarning = "Tried to clear an empty" + helpMessage
)

var (
	// ErrNoAnchor is matched by every MissingAnchorError.
	ErrNoAnchor = errors.New("jumpgate: no anchor")
	// ErrLifecycle reports a Provider lifecycle call made out of order.
	ErrLifecycle = errors.New("jumpgate: provider lifecycle out of order")
)

// MissingAnchorError is returned when a Provider or Consumer is built without
// an Anchor of the same gate.
type MissingAnchorError struct {
	Role string
}

func (e *MissingAnchorError) Error() string {
	return fmt.Sprintf("Attempted to render a <%s /> without an <Anchor />", e.Role)
}

func (e *MissingAnchorError) Is(target error) bool { return target == ErrNoAnchor }

func missingAnchor(role string) error { return &MissingAnchorError{Role: role} }
