package ride

import "errors"

// Lifecycle failures. The messages for the state and ownership errors are part
// of the API contract and are returned to callers verbatim.
var (
	ErrNotFound = errors.New("ride not found")

	// ErrNotRequested is returned when an accept attempt hits a ride that has
	// already left the REQUESTED state (including a concurrent acceptance).
	ErrNotRequested = errors.New("Ride must be in REQUESTED status")

	// ErrNotAccepted is returned when a complete attempt hits a ride that is
	// not currently ACCEPTED.
	ErrNotAccepted = errors.New("Ride must be ACCEPTED to complete")

	// ErrNotParticipant is returned when the completing identity is neither
	// the assigned driver nor the owning passenger.
	ErrNotParticipant = errors.New("Only the assigned driver or passenger can complete this ride")
)

// Read-query validation failures.
var (
	ErrNegativeDistance = errors.New("distance values cannot be negative")
	ErrMinAboveMax      = errors.New("minimum distance cannot be greater than maximum distance")
)
