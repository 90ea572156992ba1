package postgres

import (
	"context"
	"encoding/json"

	"ride-booking/internal/ports"
)

// RideEventRepo appends rows to the ride_events audit trail.
type RideEventRepo struct{}

// NewRideEventRepo constructs a new RideEventRepo.
func NewRideEventRepo() ports.RideEventRepository {
	return &RideEventRepo{}
}

// Append writes one event row with encoded event_data. It runs inside the
// same transaction as the lifecycle transition it records.
func (repo *RideEventRepo) Append(ctx context.Context, rideID, eventType string, eventData any) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(eventData)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ride_events (ride_id, event_type, event_data)
		VALUES ($1, $2, $3::jsonb)
	`, rideID, eventType, string(body))
	return err
}
