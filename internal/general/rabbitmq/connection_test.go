package rabbitmq

import (
	"context"
	"testing"

	"ride-booking/internal/general/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	return &Client{
		logger:    logger.New("rabbitmq-test"),
		logCtx:    context.Background(),
		closed:    make(chan struct{}),
		reconnect: make(chan struct{}, 1),
	}
}

func TestCloseAfterChannelShutdown(t *testing.T) {
	// amqp091-go closes every registered confirm listener when the channel
	// shuts down; Close must tolerate a listener that is already closed
	confirms := make(chan amqp.Confirmation)
	close(confirms)

	client := newTestClient()
	client.pubConfirms = confirms

	require.NotPanics(t, func() { client.Close() })
}

func TestCloseIsIdempotent(t *testing.T) {
	client := newTestClient()
	client.pubConfirms = make(chan amqp.Confirmation, 1)

	require.NotPanics(t, func() {
		client.Close()
		client.Close()
	})
}
