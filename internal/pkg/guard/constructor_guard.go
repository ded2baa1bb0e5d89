// Package guard implements the constructor guard pattern used by domain
// value objects and entities to reject zero-value instances that bypassed
// their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor from
// zero values. Embed one in a struct and set it with NewConstructorGuard in
// the constructor; Validate then fails for any zero-value instance.
//
// Example:
//
//	type Quantity struct {
//	    value float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuantity(v float64) (Quantity, error) {
//	    if v < 0 {
//	        return Quantity{}, errors.New("quantity cannot be negative")
//	    }
//	    return Quantity{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(errQuantityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built via its constructor.
// For zero-value guards it returns validationError, falling back to
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
