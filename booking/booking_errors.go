package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrInvalidDuration = errors.New("schedule duration must be positive")

var ErrInvalidActor = errors.New("actor must be MENTOR or STUDENT")

var ErrEmptyGroup = errors.New("group has no members")

// ErrBookingConflict signals a collision with a concurrent transition on the
// same booking, group or schedule slot. The operation is safe to retry.
var ErrBookingConflict = errors.New("booking conflict")
