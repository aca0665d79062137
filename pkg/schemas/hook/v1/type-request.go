package hook

import (
	"strings"

	typedef "github.com/lineagehub/lineagehub-events/pkg/schemas/typedef/v1"
)

// TypeRequest registers or updates type definitions. It is the one variant
// serving two discriminators: TYPE_CREATE and TYPE_UPDATE share the payload
// shape and differ only in intent.
type TypeRequest struct {
	Message
	TypesDef *typedef.TypesDef `json:"typesDef,omitempty"`
}

func NewTypeCreateRequest(user string, typesDef *typedef.TypesDef) *TypeRequest {
	return &TypeRequest{Message: Message{Type: TypeCreate, User: user}, TypesDef: typesDef}
}

func NewTypeUpdateRequest(user string, typesDef *typedef.TypesDef) *TypeRequest {
	return &TypeRequest{Message: Message{Type: TypeUpdate, User: user}, TypesDef: typesDef}
}

func (t *TypeRequest) Validate() error {
	ve := &ValidationError{}
	if t.Type != TypeCreate && t.Type != TypeUpdate {
		ve.add("type", "must be TYPE_CREATE or TYPE_UPDATE")
	}
	if t.TypesDef == nil {
		ve.add("typesDef", "required")
	}
	return ve.orNil()
}

func (t *TypeRequest) String() string {
	var sb strings.Builder
	sb.WriteString("TypeRequest{")
	t.Message.writeString(&sb)
	sb.WriteString("typesDef=")
	if t.TypesDef != nil {
		t.TypesDef.WriteString(&sb)
	}
	sb.WriteString("}")
	return sb.String()
}
