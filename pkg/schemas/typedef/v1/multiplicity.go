package typedef

import (
	"encoding/json"
	"math"
)

// Unbounded marks a multiplicity with no upper limit.
const Unbounded = math.MaxInt32

// Multiplicity is the cardinality constraint of an attribute: how many
// values it carries and whether repeated values must be distinct.
// Comparable by value; the wire codec relies on that.
type Multiplicity struct {
	Lower    int
	Upper    int
	IsUnique bool
}

// The four canonical multiplicities. Only these round-trip through the
// wire encoding.
var (
	Optional   = Multiplicity{Lower: 0, Upper: 1}
	Required   = Multiplicity{Lower: 1, Upper: 1}
	Collection = Multiplicity{Lower: 1, Upper: Unbounded}
	Set        = Multiplicity{Lower: 1, Upper: Unbounded, IsUnique: true}
)

const (
	tokenRequired   = "required"
	tokenOptional   = "optional"
	tokenCollection = "collection"
	tokenSet        = "set"
)

// DecodeMultiplicity maps a wire token to a copy of the canonical value.
// Unrecognized or missing tokens fall back to Required rather than failing;
// producers ahead of this schema must stay readable.
func DecodeMultiplicity(text string) Multiplicity {
	switch text {
	case tokenOptional:
		return Optional
	case tokenRequired:
		return Required
	case tokenCollection:
		return Collection
	case tokenSet:
		return Set
	default:
		return Required
	}
}

// EncodeMultiplicity returns the wire token for a canonical multiplicity.
// Matching is structural, checked in the order optional, required,
// collection, set. A non-canonical value has no token: ok is false and the
// field stays off the wire.
func EncodeMultiplicity(m Multiplicity) (token string, ok bool) {
	switch m {
	case Optional:
		return tokenOptional, true
	case Required:
		return tokenRequired, true
	case Collection:
		return tokenCollection, true
	case Set:
		return tokenSet, true
	default:
		return "", false
	}
}

// MarshalJSON writes the canonical token, or null for a value that has none.
// Containers that must omit the field entirely (AttributeDef) call
// EncodeMultiplicity themselves.
func (m Multiplicity) MarshalJSON() ([]byte, error) {
	if token, ok := EncodeMultiplicity(m); ok {
		return json.Marshal(token)
	}
	return []byte("null"), nil
}

// UnmarshalJSON reads a token with the lenient fallback of
// DecodeMultiplicity. A JSON null also decodes to Required.
func (m *Multiplicity) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		// Not a string (null, number, object): treat as unrecognized.
		*m = Required
		return nil
	}
	*m = DecodeMultiplicity(token)
	return nil
}
