package hook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the notification variants on the wire.
type Kind string

const (
	TypeCreate          Kind = "TYPE_CREATE"
	TypeUpdate          Kind = "TYPE_UPDATE"
	EntityCreate        Kind = "ENTITY_CREATE"
	EntityPartialUpdate Kind = "ENTITY_PARTIAL_UPDATE"
	EntityFullUpdate    Kind = "ENTITY_FULL_UPDATE"
	EntityDelete        Kind = "ENTITY_DELETE"
)

// UnknownUser is reported when a message carries no acting principal.
const UnknownUser = "UNKNOWN"

// ErrUnknownKind is returned by Decode for a discriminator outside the six
// notification kinds.
var ErrUnknownKind = errors.New("unknown notification kind")

// Notification is one hook message: a discriminator, the acting user, and a
// per-kind payload. Instances are one-shot values; normalize before
// publishing and again after decoding.
type Notification interface {
	NotificationKind() Kind
	GetUser() string
	Normalize()
	Validate() error
	fmt.Stringer
}

// Message is the shape every variant shares. Variants embed it; it is
// exported so decode-then-populate flows can fill it directly.
type Message struct {
	Type Kind   `json:"type"`
	User string `json:"user,omitempty"`
}

func (m *Message) NotificationKind() Kind { return m.Type }

// GetUser resolves a blank principal to UnknownUser. The substitution
// happens on every read so a later rewrite of the field is covered too.
func (m *Message) GetUser() string {
	if m.User == "" {
		return UnknownUser
	}
	return m.User
}

// Normalize on the bare message is a no-op; payload-carrying variants
// extend it.
func (m *Message) Normalize() {}

func (m *Message) writeString(sb *strings.Builder) {
	sb.WriteString("Message{type=")
	sb.WriteString(string(m.Type))
	sb.WriteString(", user=")
	sb.WriteString(m.User)
	sb.WriteString("}")
}

// Decode deserializes one notification, dispatching on the type
// discriminator. Unknown JSON fields are dropped; an unknown discriminator
// is an error. Callers still own the normalize step on the result.
func Decode(data []byte) (Notification, error) {
	var head Message
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode notification header: %w", err)
	}

	var n Notification
	switch head.Type {
	case TypeCreate, TypeUpdate:
		n = &TypeRequest{}
	case EntityCreate:
		n = &EntityCreateRequest{}
	case EntityFullUpdate:
		n = &EntityUpdateRequest{}
	case EntityPartialUpdate:
		n = &EntityPartialUpdateRequest{}
	case EntityDelete:
		n = &EntityDeleteRequest{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, head.Type)
	}

	if err := json.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("decode %s notification: %w", head.Type, err)
	}
	return n, nil
}
