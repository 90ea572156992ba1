package service

import (
	"context"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/general/contracts"
	"ride-booking/internal/ports"
)

// CompleteRide moves an ACCEPTED ride to COMPLETED. Only the assigned driver
// or the owning passenger may complete; the write itself is still conditioned
// on the ACCEPTED status so a concurrent completion cannot be applied twice.
func (service *rideService) CompleteRide(ctx context.Context, rideID, callerUsername string) (ports.RideView, error) {
	ctx = service.logger.WithRideID(ctx, rideID)

	var completed *ride.Ride
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := service.rideRepo.GetByID(txCtx, rideID)
		if err != nil {
			return err
		}
		if current == nil {
			return ride.ErrNotFound
		}
		if err := current.Complete(callerUsername); err != nil {
			return err
		}

		updated, err := service.rideRepo.CompleteIfAccepted(txCtx, rideID)
		if err != nil {
			return err
		}
		if !updated {
			// lost a race: the ride left ACCEPTED between read and write
			return ride.ErrNotAccepted
		}

		completed = current
		return service.eventRepo.Append(txCtx, rideID, contracts.EventRideCompleted, map[string]any{
			"old_status":   ride.StatusAccepted.String(),
			"new_status":   current.Status.String(),
			"completed_by": callerUsername,
		})
	})
	if err != nil {
		return ports.RideView{}, err
	}

	service.logger.Info(ctx, "ride_completed", "Ride completed",
		map[string]any{"completed_by": callerUsername})

	service.announce(ctx, completed)

	return ports.NewRideView(completed), nil
}
