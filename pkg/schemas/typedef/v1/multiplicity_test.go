package typedef

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, m := range []Multiplicity{Optional, Required, Collection, Set} {
		token, ok := EncodeMultiplicity(m)
		require.True(t, ok, "canonical value must encode")
		assert.Equal(t, m, DecodeMultiplicity(token))
	}
}

func TestDecode_Tokens(t *testing.T) {
	assert.Equal(t, Optional, DecodeMultiplicity("optional"))
	assert.Equal(t, Required, DecodeMultiplicity("required"))
	assert.Equal(t, Collection, DecodeMultiplicity("collection"))
	assert.Equal(t, Set, DecodeMultiplicity("set"))
}

func TestDecode_UnrecognizedFallsBackToRequired(t *testing.T) {
	for _, s := range []string{"", "REQUIRED", "Optional", "list", "sets", "0..1"} {
		assert.Equal(t, Required, DecodeMultiplicity(s), "token %q", s)
	}
}

func TestEncode_NonCanonicalHasNoToken(t *testing.T) {
	token, ok := EncodeMultiplicity(Multiplicity{Lower: 2, Upper: 5})
	assert.False(t, ok)
	assert.Empty(t, token)

	// optional-with-uniqueness is off the table too
	_, ok = EncodeMultiplicity(Multiplicity{Lower: 0, Upper: 1, IsUnique: true})
	assert.False(t, ok)
}

func TestCanonicalValues(t *testing.T) {
	assert.Equal(t, Multiplicity{Lower: 0, Upper: 1}, Optional)
	assert.Equal(t, Multiplicity{Lower: 1, Upper: 1}, Required)
	assert.Equal(t, Multiplicity{Lower: 1, Upper: Unbounded}, Collection)
	assert.Equal(t, Multiplicity{Lower: 1, Upper: Unbounded, IsUnique: true}, Set)
}

func TestMultiplicity_JSON(t *testing.T) {
	b, err := json.Marshal(Collection)
	require.NoError(t, err)
	assert.Equal(t, `"collection"`, string(b))

	var m Multiplicity
	require.NoError(t, json.Unmarshal([]byte(`"set"`), &m))
	assert.Equal(t, Set, m)

	require.NoError(t, json.Unmarshal([]byte(`"no-such-token"`), &m))
	assert.Equal(t, Required, m)

	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Equal(t, Required, m)
}

func TestAttributeDef_JSONOmitsNonCanonicalMultiplicity(t *testing.T) {
	a := AttributeDef{
		Name:         "columns",
		DataTypeName: "array<hive_column>",
		Multiplicity: Multiplicity{Lower: 2, Upper: 5},
	}
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "multiplicity")
}

func TestAttributeDef_JSONRoundTrip(t *testing.T) {
	a := AttributeDef{
		Name:         "qualifiedName",
		DataTypeName: "string",
		Multiplicity: Required,
		IsUnique:     true,
		IsIndexable:  true,
	}
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"multiplicity":"required"`)

	var back AttributeDef
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, a, back)
}

func TestAttributeDef_MissingMultiplicityReadsAsRequired(t *testing.T) {
	var a AttributeDef
	require.NoError(t, json.Unmarshal([]byte(`{"name":"owner","dataTypeName":"string"}`), &a))
	assert.Equal(t, Required, a.Multiplicity)
}
