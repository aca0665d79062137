package common

import "encoding/json"

// Envelope is what actually travels on the wire: routing metadata plus the
// raw notification payload. Data stays undecoded so consumers can dispatch
// on the payload's own discriminator after reading the envelope.
type Envelope struct {
	Meta Meta            `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// GenericEnvelope is the producer-side counterpart for a known payload type.
type GenericEnvelope[T any] struct {
	Meta Meta `json:"meta"`
	Data T    `json:"data"`
}
