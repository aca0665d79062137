package typedef

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AttributeDef describes one attribute of a struct/class/trait type.
type AttributeDef struct {
	Name                 string
	DataTypeName         string
	Multiplicity         Multiplicity
	IsComposite          bool
	IsIndexable          bool
	IsUnique             bool
	ReverseAttributeName string
}

type attributeDefWire struct {
	Name                 string           `json:"name"`
	DataTypeName         string           `json:"dataTypeName"`
	Multiplicity         *json.RawMessage `json:"multiplicity,omitempty"`
	IsComposite          bool             `json:"isComposite"`
	IsIndexable          bool             `json:"isIndexable"`
	IsUnique             bool             `json:"isUnique"`
	ReverseAttributeName string           `json:"reverseAttributeName,omitempty"`
}

// MarshalJSON keeps the multiplicity field absent when the value has no
// canonical token.
func (a AttributeDef) MarshalJSON() ([]byte, error) {
	wire := attributeDefWire{
		Name:                 a.Name,
		DataTypeName:         a.DataTypeName,
		IsComposite:          a.IsComposite,
		IsIndexable:          a.IsIndexable,
		IsUnique:             a.IsUnique,
		ReverseAttributeName: a.ReverseAttributeName,
	}
	if token, ok := EncodeMultiplicity(a.Multiplicity); ok {
		raw, err := json.Marshal(token)
		if err != nil {
			return nil, err
		}
		msg := json.RawMessage(raw)
		wire.Multiplicity = &msg
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a missing or unrecognized multiplicity as required.
func (a *AttributeDef) UnmarshalJSON(data []byte) error {
	var wire attributeDefWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	a.Name = wire.Name
	a.DataTypeName = wire.DataTypeName
	a.IsComposite = wire.IsComposite
	a.IsIndexable = wire.IsIndexable
	a.IsUnique = wire.IsUnique
	a.ReverseAttributeName = wire.ReverseAttributeName
	if wire.Multiplicity == nil {
		a.Multiplicity = Required
		return nil
	}
	return a.Multiplicity.UnmarshalJSON(*wire.Multiplicity)
}

func (a AttributeDef) writeString(sb *strings.Builder) {
	sb.WriteString("AttributeDef{")
	sb.WriteString("name=")
	sb.WriteString(a.Name)
	sb.WriteString(", dataTypeName=")
	sb.WriteString(a.DataTypeName)
	if token, ok := EncodeMultiplicity(a.Multiplicity); ok {
		sb.WriteString(", multiplicity=")
		sb.WriteString(token)
	}
	sb.WriteString("}")
}

// EnumValue is one member of an enum type.
type EnumValue struct {
	Value   string `json:"value"`
	Ordinal int    `json:"ordinal"`
}

// EnumTypeDef declares an enum type.
type EnumTypeDef struct {
	TypeName   string      `json:"typeName"`
	EnumValues []EnumValue `json:"enumValues,omitempty"`
}

// StructTypeDef declares a struct, class or trait type.
type StructTypeDef struct {
	TypeName        string         `json:"typeName"`
	TypeDescription string         `json:"typeDescription,omitempty"`
	AttributeDefs   []AttributeDef `json:"attributeDefinitions,omitempty"`
}

// TypesDef bundles the type declarations a hook registers in one shot.
type TypesDef struct {
	EnumTypes   []EnumTypeDef   `json:"enumTypes,omitempty"`
	StructTypes []StructTypeDef `json:"structTypes,omitempty"`
	TraitTypes  []StructTypeDef `json:"traitTypes,omitempty"`
	ClassTypes  []StructTypeDef `json:"classTypes,omitempty"`
}

func (t StructTypeDef) writeString(sb *strings.Builder) {
	sb.WriteString("StructTypeDef{")
	sb.WriteString("typeName=")
	sb.WriteString(t.TypeName)
	sb.WriteString(", attributeDefs=[")
	for i, a := range t.AttributeDefs {
		if i > 0 {
			sb.WriteString(", ")
		}
		a.writeString(sb)
	}
	sb.WriteString("]}")
}

// WriteString appends the diagnostic rendering to sb. The notification
// model delegates here when dumping a type request.
func (t *TypesDef) WriteString(sb *strings.Builder) {
	sb.WriteString("TypesDef{")
	sb.WriteString("enumTypes=")
	sb.WriteString(strconv.Itoa(len(t.EnumTypes)))
	writeStructTypes(sb, ", structTypes=[", t.StructTypes)
	writeStructTypes(sb, ", traitTypes=[", t.TraitTypes)
	writeStructTypes(sb, ", classTypes=[", t.ClassTypes)
	sb.WriteString("}")
}

func writeStructTypes(sb *strings.Builder, label string, defs []StructTypeDef) {
	sb.WriteString(label)
	for i, d := range defs {
		if i > 0 {
			sb.WriteString(", ")
		}
		d.writeString(sb)
	}
	sb.WriteString("]")
}

func (t *TypesDef) String() string {
	var sb strings.Builder
	t.WriteString(&sb)
	return sb.String()
}
