package service

import (
	"ride-booking/internal/general/logger"
	"ride-booking/internal/general/rabbitmq"
	"ride-booking/internal/general/websocket"
	"ride-booking/internal/ports"
)

// rideService owns the ride lifecycle state machine and the read-side
// queries. All storage access goes through the unit of work.
type rideService struct {
	logger    *logger.Logger
	uow       ports.UnitOfWork
	rideRepo  ports.RideRepository
	queryRepo ports.RideQueryRepository
	eventRepo ports.RideEventRepository
	pub       *rabbitmq.MQPublisher
	hub       *websocket.Hub
}

// NewRideService creates a new instance of the RideService with the provided dependencies.
func NewRideService(
	log *logger.Logger,
	uow ports.UnitOfWork,
	rideRepo ports.RideRepository,
	queryRepo ports.RideQueryRepository,
	eventRepo ports.RideEventRepository,
	pub *rabbitmq.MQPublisher,
	hub *websocket.Hub,
) ports.RideService {
	return &rideService{
		logger:    log,
		uow:       uow,
		rideRepo:  rideRepo,
		queryRepo: queryRepo,
		eventRepo: eventRepo,
		pub:       pub,
		hub:       hub,
	}
}
