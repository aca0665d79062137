package instance

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// StateActive is the default lifecycle state of a normalized entity id.
const StateActive = "ACTIVE"

// ID identifies one entity instance across the wire.
type ID struct {
	ID       string `json:"id,omitempty"`
	TypeName string `json:"typeName,omitempty"`
	Version  int    `json:"version"`
	State    string `json:"state,omitempty"`
}

// Referenceable is a single metadata entity instance as a hook reports it:
// a typed bag of attribute values plus the traits attached to it.
type Referenceable struct {
	ID       ID             `json:"id"`
	TypeName string         `json:"typeName,omitempty"`
	Values   map[string]any `json:"values,omitempty"`
	Traits   []string       `json:"traits,omitempty"`
}

// NewReferenceable mints an entity reference with a fresh id.
func NewReferenceable(typeName string, values map[string]any) *Referenceable {
	r := &Referenceable{
		ID:       ID{ID: uuid.NewString(), TypeName: typeName, State: StateActive},
		TypeName: typeName,
		Values:   values,
	}
	if r.Values == nil {
		r.Values = map[string]any{}
	}
	return r
}

// Normalize brings a decoded or hand-built reference to canonical shape.
// Idempotent: ids are minted only when blank, and every other step is a
// pure fixpoint. Nested references inside Values are normalized too.
func (r *Referenceable) Normalize() {
	if r == nil {
		return
	}
	if r.ID.ID == "" {
		r.ID.ID = uuid.NewString()
	}
	if r.ID.TypeName == "" {
		r.ID.TypeName = r.TypeName
	}
	if r.TypeName == "" {
		r.TypeName = r.ID.TypeName
	}
	if r.ID.State == "" {
		r.ID.State = StateActive
	}
	if r.Values == nil {
		r.Values = map[string]any{}
	}
	for _, v := range r.Values {
		switch nested := v.(type) {
		case *Referenceable:
			nested.Normalize()
		case []*Referenceable:
			for _, n := range nested {
				n.Normalize()
			}
		}
	}
}

// WriteString appends the diagnostic rendering to sb.
func (r *Referenceable) WriteString(sb *strings.Builder) {
	sb.WriteString("Referenceable{")
	sb.WriteString("id=")
	sb.WriteString(r.ID.ID)
	sb.WriteString(", typeName=")
	sb.WriteString(r.TypeName)
	sb.WriteString(", values=")
	fmt.Fprintf(sb, "%v", r.Values)
	if len(r.Traits) > 0 {
		sb.WriteString(", traits=[")
		sb.WriteString(strings.Join(r.Traits, ", "))
		sb.WriteString("]")
	}
	sb.WriteString("}")
}

func (r *Referenceable) String() string {
	var sb strings.Builder
	r.WriteString(&sb)
	return sb.String()
}
