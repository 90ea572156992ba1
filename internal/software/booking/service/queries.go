package service

import (
	"context"
	"time"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/ports"
)

// collect wraps a read query in a transaction and maps the result set to
// views. All read queries share this shape.
func (service *rideService) collect(ctx context.Context, fn func(txCtx context.Context) ([]*ride.Ride, error)) ([]ports.RideView, error) {
	var rides []*ride.Ride
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		rides, err = fn(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ports.NewRideViews(rides), nil
}

func (service *rideService) ListAllRides(ctx context.Context) ([]ports.RideView, error) {
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.ListAll(txCtx)
	})
}

func (service *rideService) SearchRides(ctx context.Context, keyword string) ([]ports.RideView, error) {
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.Search(txCtx, keyword)
	})
}

func (service *rideService) FilterByDistance(ctx context.Context, min, max float64) ([]ports.RideView, error) {
	if err := ride.ValidateDistanceRange(min, max); err != nil {
		return nil, err
	}
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.FilterByDistance(txCtx, min, max)
	})
}

func (service *rideService) FilterByDateRange(ctx context.Context, start, end time.Time) ([]ports.RideView, error) {
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.FilterByDateRange(txCtx, start, end)
	})
}

// SortByFare treats anything other than "asc" as descending.
func (service *rideService) SortByFare(ctx context.Context, order string) ([]ports.RideView, error) {
	dir := ride.OrderFromParam(order, ride.OrderDesc)
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.SortByFare(txCtx, dir)
	})
}

func (service *rideService) RidesByUser(ctx context.Context, username string) ([]ports.RideView, error) {
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.ByPassenger(txCtx, username)
	})
}

func (service *rideService) RidesByUserAndStatus(ctx context.Context, username, status string) ([]ports.RideView, error) {
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.ByPassengerAndStatus(txCtx, username, status)
	})
}

func (service *rideService) DriverActiveRides(ctx context.Context, driverUsername string) ([]ports.RideView, error) {
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.ActiveByDriver(txCtx, driverUsername)
	})
}

func (service *rideService) FilterByStatusAndKeyword(ctx context.Context, status, keyword string) ([]ports.RideView, error) {
	criteria := ride.NewCriteria(keyword, status)
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.ByCriteria(txCtx, criteria)
	})
}

func (service *rideService) AdvancedSearch(ctx context.Context, keyword, status, sortBy, order string, page, size int) ([]ports.RideView, error) {
	query := ride.NewAdvancedQuery(keyword, status, sortBy, order, page, size)
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.AdvancedSearch(txCtx, query)
	})
}

func (service *rideService) RidesByDate(ctx context.Context, date time.Time) ([]ports.RideView, error) {
	return service.collect(ctx, func(txCtx context.Context) ([]*ride.Ride, error) {
		return service.queryRepo.ByDate(txCtx, date)
	})
}
