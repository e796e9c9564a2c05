// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities, commands and queries to tell a properly constructed instance apart
// from a zero value created by struct literal.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error and the guard was never set.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
//
// The guard is set last, after every invariant of the owner has been checked,
// so an owner carrying a set guard is always a valid one:
//
//	var ErrCountIsNotConstructed = errors.New("Count must be created via NewCount")
//
//	type Count struct {
//	    n     int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCount(n int) (Count, error) {
//	    if n <= 0 {
//	        return Count{}, errs.NewValueIsNotPositiveError("n", n)
//	    }
//	    return Count{n: n, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Count) Validate() error {
//	    return c.guard.Validate(ErrCountIsNotConstructed)
//	}
//
// The zero ConstructorGuard is unset.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a set guard. Call it only on the success path of
// a constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a set guard. For an unset guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
