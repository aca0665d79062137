package hook

import (
	"strings"

	instance "github.com/lineagehub/lineagehub-events/pkg/schemas/instance/v1"
)

// EntityCreateRequest announces newly observed entities, in the order the
// hook saw them.
type EntityCreateRequest struct {
	Message
	Entities []*instance.Referenceable `json:"entities,omitempty"`
}

func NewEntityCreateRequest(user string, entities ...*instance.Referenceable) *EntityCreateRequest {
	return &EntityCreateRequest{
		Message:  Message{Type: EntityCreate, User: user},
		Entities: entities,
	}
}

// Normalize walks every owned entity. Nil slices and nil elements are
// skipped, and a second call changes nothing.
func (e *EntityCreateRequest) Normalize() {
	e.Message.Normalize()

	for _, entity := range e.Entities {
		if entity != nil {
			entity.Normalize()
		}
	}
}

func (e *EntityCreateRequest) Validate() error {
	ve := &ValidationError{}
	if e.Type != EntityCreate {
		ve.add("type", "must be ENTITY_CREATE")
	}
	if len(e.Entities) == 0 {
		ve.add("entities", "required")
	}
	return ve.orNil()
}

func (e *EntityCreateRequest) writeString(sb *strings.Builder) {
	sb.WriteString("EntityCreateRequest{")
	e.Message.writeString(sb)
	writeEntities(sb, e.Entities)
	sb.WriteString("}")
}

func (e *EntityCreateRequest) String() string {
	var sb strings.Builder
	e.writeString(&sb)
	return sb.String()
}

func writeEntities(sb *strings.Builder, entities []*instance.Referenceable) {
	sb.WriteString("entities=[")
	for i, entity := range entities {
		if i > 0 {
			sb.WriteString(", ")
		}
		if entity != nil {
			entity.WriteString(sb)
		}
	}
	sb.WriteString("]")
}
