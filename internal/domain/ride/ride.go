package ride

import (
	"errors"
	"strings"
	"time"
)

// Ride is the domain entity corresponding to the `rides` table.
type Ride struct {
	// Identity & audit
	ID          string
	CreatedDate time.Time // calendar date of creation (UTC, truncated to day)
	CreatedAt   time.Time

	// Actors
	PassengerUsername string
	DriverUsername    *string // nil until accepted, immutable afterwards

	// Trip details, caller-supplied at creation and never recomputed
	PickupLocation string
	DropLocation   string
	Fare           float64
	DistanceKm     float64

	// Core state
	Status Status
}

var (
	ErrPassengerRequired = errors.New("passenger username is required")
	ErrPickupRequired    = errors.New("pickup location is required")
	ErrDropRequired      = errors.New("drop location is required")
	ErrNegativeFare      = errors.New("fare cannot be negative")
	ErrDriverRequired    = errors.New("driver username is required")
)

// NewRide creates a new ride in REQUESTED state. Any caller-supplied id,
// status, driver, or timestamps are ignored by construction: the entity owns
// those fields.
func NewRide(passengerUsername, pickupLocation, dropLocation string, fare, distanceKm float64) (*Ride, error) {
	if passengerUsername = strings.TrimSpace(passengerUsername); passengerUsername == "" {
		return nil, ErrPassengerRequired
	}
	if pickupLocation = strings.TrimSpace(pickupLocation); pickupLocation == "" {
		return nil, ErrPickupRequired
	}
	if dropLocation = strings.TrimSpace(dropLocation); dropLocation == "" {
		return nil, ErrDropRequired
	}
	if fare < 0 {
		return nil, ErrNegativeFare
	}
	if distanceKm < 0 {
		return nil, ErrNegativeDistance
	}

	now := time.Now().UTC()
	return &Ride{
		CreatedDate:       now.Truncate(24 * time.Hour),
		CreatedAt:         now,
		PassengerUsername: passengerUsername,
		PickupLocation:    pickupLocation,
		DropLocation:      dropLocation,
		Fare:              fare,
		DistanceKm:        distanceKm,
		Status:            StatusRequested,
	}, nil
}

// Accept sets the driver and moves REQUESTED -> ACCEPTED.
func (ride *Ride) Accept(driverUsername string) error {
	if driverUsername = strings.TrimSpace(driverUsername); driverUsername == "" {
		return ErrDriverRequired
	}
	if ride.Status != StatusRequested {
		return ErrNotRequested
	}
	ride.DriverUsername = &driverUsername
	ride.Status = StatusAccepted
	return nil
}

// Complete transitions ACCEPTED -> COMPLETED on behalf of callerUsername,
// which must be either the assigned driver or the owning passenger.
func (ride *Ride) Complete(callerUsername string) error {
	if ride.Status != StatusAccepted {
		return ErrNotAccepted
	}
	if !ride.IsParticipant(callerUsername) {
		return ErrNotParticipant
	}
	ride.Status = StatusCompleted
	return nil
}

// IsParticipant reports whether username is the owning passenger or the
// assigned driver.
func (ride *Ride) IsParticipant(username string) bool {
	if username == ride.PassengerUsername {
		return true
	}
	return ride.DriverUsername != nil && username == *ride.DriverUsername
}
