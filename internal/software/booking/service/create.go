package service

import (
	"context"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/general/contracts"
	"ride-booking/internal/ports"
)

// CreateRide creates a new ride request in REQUESTED state on behalf of the
// authenticated passenger. The draft's fare and distance are stored as given
// and never recomputed; any id, status, driver, or timestamps the caller may
// have sent were already dropped at the HTTP boundary.
func (service *rideService) CreateRide(ctx context.Context, passengerUsername string, in ports.CreateRideInput) (ports.RideView, error) {
	r, err := ride.NewRide(passengerUsername, in.PickupLocation, in.DropLocation, in.Fare, in.DistanceKm)
	if err != nil {
		return ports.RideView{}, err
	}

	err = service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		if err := service.rideRepo.CreateRide(txCtx, r); err != nil {
			return err
		}
		return service.eventRepo.Append(txCtx, r.ID, contracts.EventRideRequested, map[string]any{
			"new_status": r.Status.String(),
			"passenger":  r.PassengerUsername,
		})
	})
	if err != nil {
		return ports.RideView{}, err
	}

	ctx = service.logger.WithRideID(ctx, r.ID)
	service.logger.Info(ctx, "ride_created", "Ride request created",
		map[string]any{"passenger": r.PassengerUsername, "fare": r.Fare, "distance_km": r.DistanceKm})

	service.announce(ctx, r)

	return ports.NewRideView(r), nil
}
