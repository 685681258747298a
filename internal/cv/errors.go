package cv

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by PreconditionError.
var (
	ErrUnknownUID    = errors.New("unknown uid")
	ErrNoDraft       = errors.New("no record is being edited")
	ErrDraftMismatch = errors.New("uid does not match the record being edited")
	ErrUnknownField  = errors.New("field is not declared by the record kind")
)

// PreconditionError reports a controller call that broke its contract.
// It is raised with panic, never returned, because the caller built the
// state it is addressing.
type PreconditionError struct {
	Op    string // Operation name, e.g. "select"
	UID   UID    // Offending UID, if any
	Field string // Offending field, if any
	Err   error  // One of the sentinel errors above
}

// Error implements the error interface
func (e *PreconditionError) Error() string {
	msg := "cv: " + e.Op
	if e.UID != "" {
		msg += fmt.Sprintf(" %q", string(e.UID))
	}
	if e.Field != "" {
		msg += " field " + e.Field
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the sentinel error
func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// IsPrecondition reports whether err is or wraps a *PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// Guard runs fn and converts a PreconditionError panic into a returned error.
// Any other panic is propagated unchanged.
func Guard(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if pe, ok := r.(*PreconditionError); ok {
			err = pe
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

func violate(op string, uid UID, field string, err error) {
	panic(&PreconditionError{Op: op, UID: uid, Field: field, Err: err})
}
