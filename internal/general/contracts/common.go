package contracts

import "time"

// Envelope adds cross-cutting headers all messages may carry.
type Envelope struct {
	EventID       string    `json:"event_id,omitempty"`       // Unique id of this message
	CorrelationID string    `json:"correlation_id,omitempty"` // Correlation for tracing across requests
	Producer      string    `json:"producer,omitempty"`       // Producer service name, e.g. "booking-service"
	SentAt        time.Time `json:"sent_at,omitempty"`        // ISO-8601 send time (UTC)
}
