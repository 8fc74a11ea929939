package db

import "errors"

// Sentinel errors shared by all Database implementations. Store methods
// wrap these with context via fmt.Errorf("...: %w", err) so callers
// match them with errors.Is.
var (
	// ErrCampNotFound is returned when the referenced camp does not exist
	ErrCampNotFound = errors.New("camp not found")

	// ErrUserNotFound is returned when the referenced user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadySelected is returned when a user who already holds an
	// active selection attempts to select another camp
	ErrAlreadySelected = errors.New("user already has an active camp selection")

	// ErrNoActiveSelection is returned when cancelling without an active selection
	ErrNoActiveSelection = errors.New("user has no active camp selection")

	// ErrCampFull is returned when selecting a camp with no available beds
	ErrCampFull = errors.New("camp has no available beds")

	// ErrConflict indicates a concurrent write was detected (conditional
	// update missed its expected value, or the store aborted the
	// transaction to preserve serializability). The operation may be retried.
	ErrConflict = errors.New("concurrent modification detected")

	// ErrConstraintViolation indicates a store-level invariant rejected the
	// write, e.g. a second active selection for a user, beds out of the
	// 0..original_beds range, or deleting a camp with active selections.
	ErrConstraintViolation = errors.New("store constraint violated")

	// ErrStoreUnavailable indicates a transport or infrastructure failure.
	// No partial state change is guaranteed to have occurred; callers must
	// re-fetch rather than assume their intent was applied.
	ErrStoreUnavailable = errors.New("store unavailable")
)
