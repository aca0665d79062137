package hook

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	instance "github.com/lineagehub/lineagehub-events/pkg/schemas/instance/v1"
	typedef "github.com/lineagehub/lineagehub-events/pkg/schemas/typedef/v1"
)

func tableEntity(name string) *instance.Referenceable {
	return &instance.Referenceable{
		TypeName: "hive_table",
		Values:   map[string]any{"name": name},
	}
}

func TestGetUser_BlankResolvesToUnknown(t *testing.T) {
	m := NewEntityCreateRequest("", tableEntity("t"))
	assert.Equal(t, UnknownUser, m.GetUser())

	m.User = "alice"
	assert.Equal(t, "alice", m.GetUser())

	// substitution happens on read, so a later rewrite is covered
	m.User = ""
	assert.Equal(t, UnknownUser, m.GetUser())
}

func TestEntityCreate_NormalizeIdempotent(t *testing.T) {
	e1, e2 := tableEntity("t1"), tableEntity("t2")
	m := NewEntityCreateRequest("alice", e1, e2)

	m.Normalize()
	id1, id2 := e1.ID.ID, e2.ID.ID
	require.NotEmpty(t, id1)
	require.NotEmpty(t, id2)

	m.Normalize()
	assert.Equal(t, id1, e1.ID.ID)
	assert.Equal(t, id2, e2.ID.ID)
}

func TestEntityCreate_NormalizeNilSafe(t *testing.T) {
	m := &EntityCreateRequest{Message: Message{Type: EntityCreate}}
	assert.NotPanics(t, func() { m.Normalize() })

	m.Entities = []*instance.Referenceable{nil, tableEntity("t")}
	assert.NotPanics(t, func() { m.Normalize() })
}

func TestEntityUpdate_ReportsFullUpdateKind(t *testing.T) {
	m := NewEntityUpdateRequest("bob", tableEntity("t1"))
	assert.Equal(t, EntityFullUpdate, m.NotificationKind())
	require.NoError(t, m.Validate())

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"ENTITY_FULL_UPDATE"`)
}

func TestEntityPartialUpdate_NormalizeTouchesOnlyEntity(t *testing.T) {
	entity := tableEntity("tbl")
	m := NewEntityPartialUpdateRequest("alice", "hive_table", "qualifiedName", "db.tbl@cluster", entity)

	m.Normalize()
	assert.NotEmpty(t, entity.ID.ID)
	assert.Equal(t, "hive_table", m.TypeName)
	assert.Equal(t, "qualifiedName", m.Attribute)
	assert.Equal(t, "db.tbl@cluster", m.AttributeValue)

	// second hop is a no-op
	id := entity.ID.ID
	m.Normalize()
	assert.Equal(t, id, entity.ID.ID)
}

func TestEntityPartialUpdate_NormalizeNilEntity(t *testing.T) {
	m := &EntityPartialUpdateRequest{Message: Message{Type: EntityPartialUpdate}}
	assert.NotPanics(t, func() { m.Normalize() })
}

func TestDecode_DispatchesEveryKind(t *testing.T) {
	cases := []struct {
		payload string
		want    Kind
	}{
		{`{"type":"TYPE_CREATE","user":"u","typesDef":{}}`, TypeCreate},
		{`{"type":"TYPE_UPDATE","user":"u","typesDef":{}}`, TypeUpdate},
		{`{"type":"ENTITY_CREATE","user":"u","entities":[{"typeName":"hive_table"}]}`, EntityCreate},
		{`{"type":"ENTITY_FULL_UPDATE","user":"u","entities":[{"typeName":"hive_table"}]}`, EntityFullUpdate},
		{`{"type":"ENTITY_PARTIAL_UPDATE","user":"u","typeName":"hive_table","attribute":"qualifiedName","attributeValue":"x","entity":{"typeName":"hive_table"}}`, EntityPartialUpdate},
		{`{"type":"ENTITY_DELETE","user":"u","typeName":"hive_table","attribute":"qualifiedName","attributeValue":"x"}`, EntityDelete},
	}
	for _, tc := range cases {
		n, err := Decode([]byte(tc.payload))
		require.NoError(t, err, "kind %s", tc.want)
		assert.Equal(t, tc.want, n.NotificationKind())
		require.NoError(t, n.Validate(), "kind %s", tc.want)
	}
}

func TestDecode_VariantTypes(t *testing.T) {
	n, err := Decode([]byte(`{"type":"ENTITY_FULL_UPDATE","entities":[{"typeName":"hive_table"}]}`))
	require.NoError(t, err)
	upd, ok := n.(*EntityUpdateRequest)
	require.True(t, ok, "ENTITY_FULL_UPDATE must decode to EntityUpdateRequest, got %T", n)
	assert.Len(t, upd.Entities, 1)
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{"type":"ENTITY_RENAME"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	payload := `{"type":"ENTITY_DELETE","user":"alice","typeName":"hive_table","attribute":"qualifiedName","attributeValue":"db.tbl@cluster","futureField":{"nested":true}}`
	n, err := Decode([]byte(payload))
	require.NoError(t, err)

	del, ok := n.(*EntityDeleteRequest)
	require.True(t, ok)
	assert.Equal(t, "hive_table", del.TypeName)

	// the unknown field must not survive a re-encode
	b, err := json.Marshal(del)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "futureField")
}

func TestValidate_KindMismatch(t *testing.T) {
	m := &EntityCreateRequest{
		Message:  Message{Type: EntityDelete},
		Entities: []*instance.Referenceable{tableEntity("t")},
	}
	err := m.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContract)
}

func TestTypeRequest_Constructors(t *testing.T) {
	td := &typedef.TypesDef{
		ClassTypes: []typedef.StructTypeDef{{
			TypeName: "hive_table",
			AttributeDefs: []typedef.AttributeDef{
				{Name: "qualifiedName", DataTypeName: "string", Multiplicity: typedef.Required, IsUnique: true},
				{Name: "columns", DataTypeName: "array<hive_column>", Multiplicity: typedef.Collection},
			},
		}},
	}

	create := NewTypeCreateRequest("alice", td)
	assert.Equal(t, TypeCreate, create.NotificationKind())
	require.NoError(t, create.Validate())

	update := NewTypeUpdateRequest("alice", td)
	assert.Equal(t, TypeUpdate, update.NotificationKind())
	require.NoError(t, update.Validate())

	// type requests own no entities; normalize is a no-op
	assert.NotPanics(t, func() { create.Normalize() })
}

func TestString_ExtendsBaseRendering(t *testing.T) {
	m := NewEntityDeleteRequest("alice", "hive_table", "qualifiedName", "db.tbl@cluster")
	s := m.String()

	assert.True(t, strings.HasPrefix(s, "EntityDeleteRequest{"))
	assert.Contains(t, s, "Message{type=ENTITY_DELETE, user=alice}")
	assert.Less(t,
		strings.Index(s, "type=ENTITY_DELETE"),
		strings.Index(s, "typeName=hive_table"),
		"base fields must render before variant fields")
}

func TestString_UpdateWrapsCreateRendering(t *testing.T) {
	m := NewEntityUpdateRequest("bob", tableEntity("t1"))
	s := m.String()
	assert.True(t, strings.HasPrefix(s, "EntityUpdateRequest{"))
	assert.Contains(t, s, "EntityCreateRequest{")
}

func TestJSON_OmitsEmptyUser(t *testing.T) {
	m := NewEntityDeleteRequest("", "hive_table", "qualifiedName", "x")
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"user"`)
}
