package contracts

// Messaging topology shared by the publisher and any consumer.
const (
	// ExchangeRideTopic carries ride lifecycle events.
	ExchangeRideTopic = "ride.events"

	// QueueRideStatus receives every lifecycle event for downstream consumers.
	QueueRideStatus = "ride.status.updates"

	// RouteRideStatusPrefix prefixes routing keys: "ride.status.<status>".
	RouteRideStatusPrefix = "ride.status."
)

// Event types recorded in ride_events and used as message event names.
const (
	EventRideRequested = "RIDE_REQUESTED"
	EventRideAccepted  = "RIDE_ACCEPTED"
	EventRideCompleted = "RIDE_COMPLETED"
)
