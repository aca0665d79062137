package hook

import (
	"strings"

	instance "github.com/lineagehub/lineagehub-events/pkg/schemas/instance/v1"
)

// EntityPartialUpdateRequest patches one entity, located by a unique
// attribute, with the values carried in Entity.
type EntityPartialUpdateRequest struct {
	Message
	TypeName       string                  `json:"typeName,omitempty"`
	Attribute      string                  `json:"attribute,omitempty"`
	AttributeValue string                  `json:"attributeValue,omitempty"`
	Entity         *instance.Referenceable `json:"entity,omitempty"`
}

func NewEntityPartialUpdateRequest(user, typeName, attribute, attributeValue string, entity *instance.Referenceable) *EntityPartialUpdateRequest {
	return &EntityPartialUpdateRequest{
		Message:        Message{Type: EntityPartialUpdate, User: user},
		TypeName:       typeName,
		Attribute:      attribute,
		AttributeValue: attributeValue,
		Entity:         entity,
	}
}

// Normalize touches only the owned entity; the three lookup strings pass
// through untouched.
func (e *EntityPartialUpdateRequest) Normalize() {
	e.Message.Normalize()

	if e.Entity != nil {
		e.Entity.Normalize()
	}
}

func (e *EntityPartialUpdateRequest) Validate() error {
	ve := &ValidationError{}
	if e.Type != EntityPartialUpdate {
		ve.add("type", "must be ENTITY_PARTIAL_UPDATE")
	}
	if e.TypeName == "" {
		ve.add("typeName", "required")
	}
	if e.Attribute == "" {
		ve.add("attribute", "required")
	}
	if e.Entity == nil {
		ve.add("entity", "required")
	}
	return ve.orNil()
}

func (e *EntityPartialUpdateRequest) String() string {
	var sb strings.Builder
	sb.WriteString("EntityPartialUpdateRequest{")
	e.Message.writeString(&sb)
	sb.WriteString("typeName=")
	sb.WriteString(e.TypeName)
	sb.WriteString(", attribute=")
	sb.WriteString(e.Attribute)
	sb.WriteString(", attributeValue=")
	sb.WriteString(e.AttributeValue)
	sb.WriteString(", entity=")
	if e.Entity != nil {
		e.Entity.WriteString(&sb)
	}
	sb.WriteString("}")
	return sb.String()
}
