// Package guard implements the constructor-guard pattern used by value objects,
// entities, and commands to ensure instances are only created through their
// designated constructor functions. A zero-value struct fails validation, which
// keeps domain objects from being used in an unvalidated state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// provided and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and initialize it with NewConstructorGuard inside the constructor;
// Validate then distinguishes constructed instances from zero values.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the owning object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
