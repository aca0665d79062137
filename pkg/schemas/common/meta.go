package common

import "time"

type Meta struct {
	// Trace / request correlation ID
	CorrelationID *string `json:"correlation_id,omitempty"`
	// Unique event ID
	ID string `json:"id"`
	// Emitting hook integration, e.g. "hive-hook/1.2"
	Producer *string `json:"producer,omitempty"`
	// Timestamp when the notification was emitted
	Time time.Time `json:"time"`
	// Event name and version, e.g. metadata.hook.v1
	Type string `json:"type"`
}
