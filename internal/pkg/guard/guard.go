// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects whose zero value
// must be rejected. Only NewConstructorGuard produces a guard that validates.
//
// Example:
//
//	type ChangeOrderStatusCommand struct {
//	    orderID kernel.ID
//	    status  order.Status
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ChangeOrderStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
