package ports

import (
	"context"
	"time"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/domain/user"
)

// UnitOfWork interface is used to manage transactions across multiple repository operations.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines the methods for managing user data.
type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	// GetByUsername returns (nil, nil) when no such user exists.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// RideRepository owns the write side of the ride lifecycle. The two
// conditional updates are the storage-level guard against lost updates:
// the status precondition is checked atomically at write time, never by a
// separate read followed by an unguarded write.
type RideRepository interface {
	CreateRide(ctx context.Context, r *ride.Ride) error
	// GetByID returns (nil, nil) when no such ride exists.
	GetByID(ctx context.Context, id string) (*ride.Ride, error)
	// AcceptIfRequested assigns the driver and moves the ride to ACCEPTED
	// only if it is still REQUESTED. Reports whether a row was updated.
	AcceptIfRequested(ctx context.Context, rideID, driverUsername string) (bool, error)
	// CompleteIfAccepted moves the ride to COMPLETED only if it is still
	// ACCEPTED. Reports whether a row was updated.
	CompleteIfAccepted(ctx context.Context, rideID string) (bool, error)
}

// RideQueryRepository is the read side: the enumerated, fixed query shapes
// exposed over the ride store. All methods are side-effect free.
type RideQueryRepository interface {
	ListAll(ctx context.Context) ([]*ride.Ride, error)
	Search(ctx context.Context, keyword string) ([]*ride.Ride, error)
	FilterByDistance(ctx context.Context, min, max float64) ([]*ride.Ride, error)
	FilterByDateRange(ctx context.Context, start, end time.Time) ([]*ride.Ride, error)
	SortByFare(ctx context.Context, order ride.SortOrder) ([]*ride.Ride, error)
	ByPassenger(ctx context.Context, username string) ([]*ride.Ride, error)
	ByPassengerAndStatus(ctx context.Context, username, status string) ([]*ride.Ride, error)
	ActiveByDriver(ctx context.Context, driverUsername string) ([]*ride.Ride, error)
	ByCriteria(ctx context.Context, c ride.Criteria) ([]*ride.Ride, error)
	AdvancedSearch(ctx context.Context, q ride.AdvancedQuery) ([]*ride.Ride, error)
	ByDate(ctx context.Context, date time.Time) ([]*ride.Ride, error)
}

// RideEventRepository appends lifecycle events to the ride_events audit trail.
type RideEventRepository interface {
	Append(ctx context.Context, rideID, eventType string, eventData any) error
}

// ----- Analytics row shapes -----

// DayCount is one row of the rides-per-day aggregation.
type DayCount struct {
	Date       string `json:"date"` // YYYY-MM-DD
	RidesCount int    `json:"ridesCount"`
}

// DriverSummary aggregates all rides ever assigned to one driver.
type DriverSummary struct {
	TotalRides     int     `json:"totalRides"`
	CompletedRides int     `json:"completedRides"`
	AvgDistance    float64 `json:"avgDistance"`
	TotalFare      float64 `json:"totalFare"`
}

// UserSpending aggregates a passenger's COMPLETED rides.
type UserSpending struct {
	TotalCompletedRides int     `json:"totalCompletedRides"`
	TotalSpent          float64 `json:"totalSpent"`
}

// StatusCount is one row of the status summary aggregation.
type StatusCount struct {
	Status     string `json:"status"`
	RidesCount int    `json:"ridesCount"`
}

// AnalyticsRepository runs the fixed aggregation shapes over the ride store.
type AnalyticsRepository interface {
	TotalEarnings(ctx context.Context, driverUsername string) (float64, error)
	RidesPerDay(ctx context.Context) ([]DayCount, error)
	DriverSummary(ctx context.Context, driverUsername string) (DriverSummary, error)
	UserSpending(ctx context.Context, passengerUsername string) (UserSpending, error)
	StatusSummary(ctx context.Context) ([]StatusCount, error)
}
