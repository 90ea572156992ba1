package postgres

import (
	"context"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/ports"
)

// AnalyticsRepo runs the fixed aggregation shapes over the rides table.
type AnalyticsRepo struct{}

// NewAnalyticsRepo constructs a new AnalyticsRepo.
func NewAnalyticsRepo() ports.AnalyticsRepository {
	return &AnalyticsRepo{}
}

// TotalEarnings sums the fares of a driver's COMPLETED rides; 0.0 when none.
func (repo *AnalyticsRepo) TotalEarnings(ctx context.Context, driverUsername string) (float64, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(fare), 0)
		FROM rides
		WHERE driver_username = $1 AND status = $2
	`, driverUsername, ride.StatusCompleted.String()).Scan(&total)
	return total, err
}

// RidesPerDay counts rides grouped by creation date, newest date first.
func (repo *AnalyticsRepo) RidesPerDay(ctx context.Context) ([]ports.DayCount, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT to_char(created_date, 'YYYY-MM-DD'), COUNT(*)
		FROM rides
		GROUP BY created_date
		ORDER BY created_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ports.DayCount, 0)
	for rows.Next() {
		var dc ports.DayCount
		if err := rows.Scan(&dc.Date, &dc.RidesCount); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// DriverSummary aggregates every ride ever assigned to one driver. A driver
// with no rides gets the zero-valued summary.
func (repo *AnalyticsRepo) DriverSummary(ctx context.Context, driverUsername string) (ports.DriverSummary, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return ports.DriverSummary{}, err
	}

	var out ports.DriverSummary
	err = tx.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = $2 THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(distance_km), 0),
			COALESCE(SUM(fare), 0)
		FROM rides
		WHERE driver_username = $1
	`, driverUsername, ride.StatusCompleted.String()).Scan(
		&out.TotalRides, &out.CompletedRides, &out.AvgDistance, &out.TotalFare,
	)
	return out, err
}

// UserSpending aggregates a passenger's COMPLETED rides.
func (repo *AnalyticsRepo) UserSpending(ctx context.Context, passengerUsername string) (ports.UserSpending, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return ports.UserSpending{}, err
	}

	var out ports.UserSpending
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(fare), 0)
		FROM rides
		WHERE passenger_username = $1 AND status = $2
	`, passengerUsername, ride.StatusCompleted.String()).Scan(
		&out.TotalCompletedRides, &out.TotalSpent,
	)
	return out, err
}

// StatusSummary counts rides grouped by status.
func (repo *AnalyticsRepo) StatusSummary(ctx context.Context) ([]ports.StatusCount, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT status, COUNT(*)
		FROM rides
		GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ports.StatusCount, 0)
	for rows.Next() {
		var sc ports.StatusCount
		if err := rows.Scan(&sc.Status, &sc.RidesCount); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
