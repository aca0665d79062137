package typedef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypesDef_String(t *testing.T) {
	td := &TypesDef{
		ClassTypes: []StructTypeDef{{
			TypeName: "hive_table",
			AttributeDefs: []AttributeDef{
				{Name: "qualifiedName", DataTypeName: "string", Multiplicity: Required},
				{Name: "columns", DataTypeName: "array<hive_column>", Multiplicity: Multiplicity{Lower: 3, Upper: 7}},
			},
		}},
	}

	s := td.String()
	assert.Contains(t, s, "typeName=hive_table")
	assert.Contains(t, s, "multiplicity=required")
	// the non-canonical multiplicity renders no token, same as the wire
	assert.Contains(t, s, "dataTypeName=array<hive_column>}")
}
