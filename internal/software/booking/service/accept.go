package service

import (
	"context"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/general/contracts"
	"ride-booking/internal/ports"
)

// AcceptRide moves a REQUESTED ride to ACCEPTED and assigns the driver. The
// transition is a conditional update: when two drivers race for the same
// ride, exactly one write matches the REQUESTED precondition and the loser is
// told the ride has already left that state. The DRIVER role was verified by
// the gateway before this call.
func (service *rideService) AcceptRide(ctx context.Context, rideID, driverUsername string) (ports.RideView, error) {
	ctx = service.logger.WithRideID(ctx, rideID)

	var accepted *ride.Ride
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		current, err := service.rideRepo.GetByID(txCtx, rideID)
		if err != nil {
			return err
		}
		if current == nil {
			return ride.ErrNotFound
		}
		if err := current.Accept(driverUsername); err != nil {
			return err
		}

		updated, err := service.rideRepo.AcceptIfRequested(txCtx, rideID, driverUsername)
		if err != nil {
			return err
		}
		if !updated {
			// lost a race: the ride left REQUESTED between read and write
			return ride.ErrNotRequested
		}

		accepted = current
		return service.eventRepo.Append(txCtx, rideID, contracts.EventRideAccepted, map[string]any{
			"old_status": ride.StatusRequested.String(),
			"new_status": current.Status.String(),
			"driver":     driverUsername,
		})
	})
	if err != nil {
		return ports.RideView{}, err
	}

	service.logger.Info(ctx, "ride_accepted", "Ride accepted by driver",
		map[string]any{"driver": driverUsername})

	service.announce(ctx, accepted)

	return ports.NewRideView(accepted), nil
}
