// Package apperr defines the error taxonomy shared by all services.
// Handlers map these sentinels to transport status codes; business
// logic matches them with errors.Is.
package apperr

import "errors"

var (
	// ErrValidation flags malformed or missing input, rejected before
	// any state is touched.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound flags an unresolved stand, driver or ride identity.
	ErrNotFound = errors.New("not found")

	// ErrConflict flags a driver who already has a ride allocated or is
	// already queued elsewhere.
	ErrConflict = errors.New("conflict")

	// ErrNotQueued flags a queue-leave request for an absent driver.
	ErrNotQueued = errors.New("driver not in queue")

	// ErrOutOfRange flags a geofence violation. It carries the side
	// effect of a forced dequeue.
	ErrOutOfRange = errors.New("outside stand geofence")

	// ErrInvalidVerification flags an OTP mismatch or expiry.
	ErrInvalidVerification = errors.New("invalid or expired verification code")

	// ErrInvalidState flags a transition attempted from a terminal or
	// wrong state.
	ErrInvalidState = errors.New("invalid ride state for transition")

	// ErrInvalidLocation flags a transition missing its required
	// current location.
	ErrInvalidLocation = errors.New("location is required")

	// ErrPresenceUnavailable flags a missing live channel when an
	// operation requires real-time delivery. During dispatch it is
	// treated like a timeout, never surfaced to the rider.
	ErrPresenceUnavailable = errors.New("participant channel unavailable")
)
