package service

import (
	"context"

	"ride-booking/internal/general/logger"
	"ride-booking/internal/ports"
)

// analyticsService runs the fixed aggregations. It is a thin transactional
// wrapper over the analytics repository.
type analyticsService struct {
	logger *logger.Logger
	uow    ports.UnitOfWork
	repo   ports.AnalyticsRepository
}

// NewAnalyticsService creates a new instance of the AnalyticsService with the provided dependencies.
func NewAnalyticsService(log *logger.Logger, uow ports.UnitOfWork, repo ports.AnalyticsRepository) ports.AnalyticsService {
	return &analyticsService{
		logger: log,
		uow:    uow,
		repo:   repo,
	}
}

func (service *analyticsService) TotalEarnings(ctx context.Context, driverUsername string) (float64, error) {
	var total float64
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		total, err = service.repo.TotalEarnings(txCtx, driverUsername)
		return err
	})
	return total, err
}

func (service *analyticsService) RidesPerDay(ctx context.Context) ([]ports.DayCount, error) {
	var rows []ports.DayCount
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		rows, err = service.repo.RidesPerDay(txCtx)
		return err
	})
	return rows, err
}

func (service *analyticsService) DriverSummary(ctx context.Context, driverUsername string) (ports.DriverSummary, error) {
	var summary ports.DriverSummary
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		summary, err = service.repo.DriverSummary(txCtx, driverUsername)
		return err
	})
	return summary, err
}

func (service *analyticsService) UserSpending(ctx context.Context, passengerUsername string) (ports.UserSpending, error) {
	var spending ports.UserSpending
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		spending, err = service.repo.UserSpending(txCtx, passengerUsername)
		return err
	})
	return spending, err
}

func (service *analyticsService) StatusSummary(ctx context.Context) ([]ports.StatusCount, error) {
	var rows []ports.StatusCount
	err := service.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		rows, err = service.repo.StatusSummary(txCtx)
		return err
	})
	return rows, err
}
