// Package guard implements the constructor-guard pattern used by domain value
// objects and commands to reject zero-value instances that bypassed their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their designated
// constructor from zero values. Embed it as an unexported field and flip it on
// in the constructor:
//
//	type TrackingID struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrackingID(v string) (TrackingID, error) {
//	    if v == "" {
//	        return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
//	    }
//	    return TrackingID{value: v, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t TrackingID) Validate() error {
//	    return t.guard.Validate(ErrTrackingIDIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it only
// from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. Zero-value guards
// return validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
