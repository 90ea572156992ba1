package postgres

import (
	"context"
	"errors"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/ports"

	"github.com/jackc/pgx/v5"
)

// rideColumns is the canonical column list shared by every ride SELECT.
const rideColumns = `
	id, created_at, created_date, passenger_username, driver_username,
	pickup_location, drop_location, fare, distance_km, status`

// RideRepo persists rides using pgx and plain SQL.
type RideRepo struct{}

// NewRideRepo constructs a new RideRepo.
func NewRideRepo() ports.RideRepository {
	return &RideRepo{}
}

// CreateRide inserts a new ride row in REQUESTED state.
func (repo *RideRepo) CreateRide(ctx context.Context, r *ride.Ride) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO rides (
			passenger_username, pickup_location, drop_location,
			fare, distance_km, status
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, created_date
	`,
		r.PassengerUsername,
		r.PickupLocation,
		r.DropLocation,
		r.Fare,
		r.DistanceKm,
		r.Status.String(),
	).Scan(&r.ID, &r.CreatedAt, &r.CreatedDate)
}

// GetByID fetches a ride by primary key, or (nil, nil) when absent.
func (repo *RideRepo) GetByID(ctx context.Context, id string) (*ride.Ride, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, `SELECT`+rideColumns+` FROM rides WHERE id = $1`, id)

	out, err := scanRide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// AcceptIfRequested performs the accept transition as a single conditional
// update: the status precondition is evaluated at write time, so two drivers
// racing for the same ride cannot both win.
func (repo *RideRepo) AcceptIfRequested(ctx context.Context, rideID, driverUsername string) (bool, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE rides
		SET driver_username = $1,
		    status = $2
		WHERE id = $3
		  AND status = $4
	`, driverUsername, ride.StatusAccepted.String(), rideID, ride.StatusRequested.String())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// CompleteIfAccepted performs the complete transition conditioned on the ride
// still being ACCEPTED at write time.
func (repo *RideRepo) CompleteIfAccepted(ctx context.Context, rideID string) (bool, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE rides
		SET status = $1
		WHERE id = $2
		  AND status = $3
	`, ride.StatusCompleted.String(), rideID, ride.StatusAccepted.String())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// --- scan helpers shared with the query repo ---

// scanRide reads one ride row in rideColumns order.
func scanRide(row pgx.Row) (*ride.Ride, error) {
	var (
		out    ride.Ride
		status string
	)
	err := row.Scan(
		&out.ID, &out.CreatedAt, &out.CreatedDate, &out.PassengerUsername, &out.DriverUsername,
		&out.PickupLocation, &out.DropLocation, &out.Fare, &out.DistanceKm, &status,
	)
	if err != nil {
		return nil, err
	}
	out.Status, err = ride.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// collectRides drains a result set of ride rows.
func collectRides(rows pgx.Rows) ([]*ride.Ride, error) {
	defer rows.Close()

	var rides []*ride.Ride
	for rows.Next() {
		r, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rides, nil
}
