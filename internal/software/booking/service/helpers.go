package service

import (
	"context"
	"time"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/general/contracts"

	"github.com/google/uuid"
)

// announce publishes a lifecycle event to the broker and pushes it to any
// WebSocket watchers of the ride. Both paths are best-effort: the transition
// has already committed, so a delivery failure is logged and swallowed.
func (service *rideService) announce(ctx context.Context, r *ride.Ride) {
	msg := contracts.RideStatusMessage{
		RideID:            r.ID,
		Status:            r.Status.String(),
		PassengerUsername: r.PassengerUsername,
		Timestamp:         time.Now().UTC(),
		Envelope: contracts.Envelope{
			EventID:  uuid.NewString(),
			Producer: "booking-service",
			SentAt:   time.Now().UTC(),
		},
	}
	if r.DriverUsername != nil {
		msg.DriverUsername = *r.DriverUsername
	}

	if service.pub != nil {
		if err := service.pub.PublishJSON(contracts.ExchangeRideTopic, msg.RoutingKey(), msg); err != nil {
			service.logger.Error(ctx, "ride_event_publish_failed", "Failed to publish ride status event", err,
				map[string]any{"ride_id": r.ID, "status": r.Status.String()})
		}
	}

	if service.hub != nil {
		service.hub.Broadcast(r.ID, msg)
	}
}
