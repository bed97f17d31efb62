// Package guard provides the constructor guard used by commands, queries and
// domain values to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether a value went through its constructor.
// Embed it in a struct, set it with NewConstructorGuard in the constructor and
// check it from the struct's Validate method:
//
//	var ErrRunCommandNotConstructed = errors.New("RunCommand must be created via NewRunCommand")
//
//	type RunCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRunCommand() RunCommand {
//	    return RunCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c RunCommand) Validate() error {
//	    return c.guard.Validate(ErrRunCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
