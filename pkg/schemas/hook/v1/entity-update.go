package hook

import (
	"strings"

	instance "github.com/lineagehub/lineagehub-events/pkg/schemas/instance/v1"
)

// EntityUpdateRequest replaces entities wholesale. It shares the create
// payload shape and differs only in its discriminator; keep the two kinds
// distinct even though nothing else diverges today.
type EntityUpdateRequest struct {
	EntityCreateRequest
}

func NewEntityUpdateRequest(user string, entities ...*instance.Referenceable) *EntityUpdateRequest {
	return &EntityUpdateRequest{
		EntityCreateRequest: EntityCreateRequest{
			Message:  Message{Type: EntityFullUpdate, User: user},
			Entities: entities,
		},
	}
}

func (e *EntityUpdateRequest) Validate() error {
	ve := &ValidationError{}
	if e.Type != EntityFullUpdate {
		ve.add("type", "must be ENTITY_FULL_UPDATE")
	}
	if len(e.Entities) == 0 {
		ve.add("entities", "required")
	}
	return ve.orNil()
}

func (e *EntityUpdateRequest) String() string {
	var sb strings.Builder
	sb.WriteString("EntityUpdateRequest{")
	e.EntityCreateRequest.writeString(&sb)
	writeEntities(&sb, e.Entities)
	sb.WriteString("}")
	return sb.String()
}
