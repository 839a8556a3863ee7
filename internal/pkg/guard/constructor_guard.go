// Package guard holds ConstructorGuard, the marker value embedded in domain
// objects and commands to tell a constructed value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A struct embedding a guard
// that was declared as a literal or zero value fails Validate, so values which
// skipped their constructor (and its checks) are rejected at use time.
//
//	type Slug struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func (s Slug) Validate() error {
//	    return s.guard.Validate(ErrSlugIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
