package ports

import (
	"context"
	"time"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/domain/user"
)

// ----- DTOs for Auth Service -----

// RegisterInput is the raw registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // PASSENGER | DRIVER
}

// UserView is the outward representation of a user. The password hash never
// leaves the service boundary.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserView maps a domain user to its outward representation.
func NewUserView(u *user.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

// LoginResult carries the issued bearer token.
type LoginResult struct {
	Token string `json:"token"`
}

// AuthService is the auth gateway boundary: credential verification and token
// issuance. Password hashing and token signing live behind this interface and
// nowhere else.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (UserView, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
}

// ----- DTOs for Ride Service -----

// CreateRideInput is the caller-supplied draft for a new ride. Identity,
// status, and timestamps are never taken from the caller.
type CreateRideInput struct {
	PickupLocation string  `json:"pickupLocation"`
	DropLocation   string  `json:"dropLocation"`
	Fare           float64 `json:"fare"`
	DistanceKm     float64 `json:"distanceKm"`
}

// RideView is the outward representation of a ride.
type RideView struct {
	ID                string    `json:"id"`
	PassengerUsername string    `json:"passengerUsername"`
	DriverUsername    *string   `json:"driverUsername"`
	PickupLocation    string    `json:"pickupLocation"`
	DropLocation      string    `json:"dropLocation"`
	Fare              float64   `json:"fare"`
	DistanceKm        float64   `json:"distanceKm"`
	Status            string    `json:"status"`
	CreatedDate       string    `json:"createdDate"` // YYYY-MM-DD
	CreatedAt         time.Time `json:"createdAt"`
}

// NewRideView maps a domain ride to its outward representation.
func NewRideView(r *ride.Ride) RideView {
	return RideView{
		ID:                r.ID,
		PassengerUsername: r.PassengerUsername,
		DriverUsername:    r.DriverUsername,
		PickupLocation:    r.PickupLocation,
		DropLocation:      r.DropLocation,
		Fare:              r.Fare,
		DistanceKm:        r.DistanceKm,
		Status:            r.Status.String(),
		CreatedDate:       r.CreatedDate.Format("2006-01-02"),
		CreatedAt:         r.CreatedAt,
	}
}

// NewRideViews maps a result set. It always returns a non-nil slice so empty
// results serialize as [] rather than null.
func NewRideViews(rides []*ride.Ride) []RideView {
	views := make([]RideView, 0, len(rides))
	for _, r := range rides {
		views = append(views, NewRideView(r))
	}
	return views
}

// ----- Ride Service Interface -----

// RideService exposes the ride lifecycle state machine and the enumerated
// read queries. Role checks happen before these calls (middleware); ownership
// checks happen inside them.
type RideService interface {
	CreateRide(ctx context.Context, passengerUsername string, in CreateRideInput) (RideView, error)
	AcceptRide(ctx context.Context, rideID, driverUsername string) (RideView, error)
	CompleteRide(ctx context.Context, rideID, callerUsername string) (RideView, error)

	ListAllRides(ctx context.Context) ([]RideView, error)
	SearchRides(ctx context.Context, keyword string) ([]RideView, error)
	FilterByDistance(ctx context.Context, min, max float64) ([]RideView, error)
	FilterByDateRange(ctx context.Context, start, end time.Time) ([]RideView, error)
	SortByFare(ctx context.Context, order string) ([]RideView, error)
	RidesByUser(ctx context.Context, username string) ([]RideView, error)
	RidesByUserAndStatus(ctx context.Context, username, status string) ([]RideView, error)
	DriverActiveRides(ctx context.Context, driverUsername string) ([]RideView, error)
	FilterByStatusAndKeyword(ctx context.Context, status, keyword string) ([]RideView, error)
	AdvancedSearch(ctx context.Context, keyword, status, sortBy, order string, page, size int) ([]RideView, error)
	RidesByDate(ctx context.Context, date time.Time) ([]RideView, error)
}

// ----- Analytics Service Interface -----

// AnalyticsService runs the fixed read-only aggregations over stored rides.
type AnalyticsService interface {
	TotalEarnings(ctx context.Context, driverUsername string) (float64, error)
	RidesPerDay(ctx context.Context) ([]DayCount, error)
	DriverSummary(ctx context.Context, driverUsername string) (DriverSummary, error)
	UserSpending(ctx context.Context, passengerUsername string) (UserSpending, error)
	StatusSummary(ctx context.Context) ([]StatusCount, error)
}
