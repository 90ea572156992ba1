package contracts

import (
	"strings"
	"time"
)

// RideStatusMessage is published on every ride lifecycle transition.
// Routing key: "ride.status.{status}" on ExchangeRideTopic.
type RideStatusMessage struct {
	RideID            string    `json:"ride_id"`
	Status            string    `json:"status"` // REQUESTED|ACCEPTED|COMPLETED
	PassengerUsername string    `json:"passenger_username"`
	DriverUsername    string    `json:"driver_username,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	Envelope
}

// RoutingKey returns the topic routing key for this message.
func (m RideStatusMessage) RoutingKey() string {
	return RouteRideStatusPrefix + strings.ToLower(m.Status)
}
