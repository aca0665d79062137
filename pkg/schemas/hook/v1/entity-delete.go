package hook

import "strings"

// EntityDeleteRequest removes one entity, located by a unique attribute.
// It carries no entity payload, so normalize stays the base no-op.
type EntityDeleteRequest struct {
	Message
	TypeName       string `json:"typeName,omitempty"`
	Attribute      string `json:"attribute,omitempty"`
	AttributeValue string `json:"attributeValue,omitempty"`
}

func NewEntityDeleteRequest(user, typeName, attribute, attributeValue string) *EntityDeleteRequest {
	return &EntityDeleteRequest{
		Message:        Message{Type: EntityDelete, User: user},
		TypeName:       typeName,
		Attribute:      attribute,
		AttributeValue: attributeValue,
	}
}

func (e *EntityDeleteRequest) Validate() error {
	ve := &ValidationError{}
	if e.Type != EntityDelete {
		ve.add("type", "must be ENTITY_DELETE")
	}
	if e.TypeName == "" {
		ve.add("typeName", "required")
	}
	if e.Attribute == "" {
		ve.add("attribute", "required")
	}
	return ve.orNil()
}

func (e *EntityDeleteRequest) String() string {
	var sb strings.Builder
	sb.WriteString("EntityDeleteRequest{")
	e.Message.writeString(&sb)
	sb.WriteString("typeName=")
	sb.WriteString(e.TypeName)
	sb.WriteString(", attribute=")
	sb.WriteString(e.Attribute)
	sb.WriteString(", attributeValue=")
	sb.WriteString(e.AttributeValue)
	sb.WriteString("}")
	return sb.String()
}
