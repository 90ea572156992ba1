package rabbitmq

import (
	"fmt"

	"ride-booking/internal/general/contracts"

	amqp "github.com/rabbitmq/amqp091-go"
)

// declareTopology sets up the exchange, queue, and binding used for ride
// lifecycle events. Declarations are idempotent, so this runs on every
// (re)connect.
func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(contracts.ExchangeRideTopic, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", contracts.ExchangeRideTopic, err)
	}

	if _, err := ch.QueueDeclare(contracts.QueueRideStatus, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", contracts.QueueRideStatus, err)
	}

	if err := ch.QueueBind(contracts.QueueRideStatus, contracts.RouteRideStatusPrefix+"*", contracts.ExchangeRideTopic, false, nil); err != nil {
		return fmt.Errorf("bind queue %s to %s: %w", contracts.QueueRideStatus, contracts.ExchangeRideTopic, err)
	}

	return nil
}
