package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsweep/specsweep/spec"
)

func TestFlattenSingleAllOf(t *testing.T) {
	t.Run("single-branch allOf becomes oneOf", func(t *testing.T) {
		inner := &spec.Schema{Ref: "#/components/schemas/Kind"}
		prop := &spec.Schema{AllOf: []*spec.Schema{inner}}

		FlattenSingleAllOf(prop, "kind")

		assert.Nil(t, prop.AllOf)
		require.Len(t, prop.OneOf, 1)
		assert.Same(t, inner, prop.OneOf[0])
	})

	t.Run("existing oneOf guards the rewrite", func(t *testing.T) {
		prop := &spec.Schema{
			AllOf: []*spec.Schema{{Ref: "#/components/schemas/A"}},
			OneOf: []*spec.Schema{{Ref: "#/components/schemas/B"}},
		}

		FlattenSingleAllOf(prop, "kind")

		require.Len(t, prop.AllOf, 1, "allOf must be left untouched")
		assert.Equal(t, "#/components/schemas/A", prop.AllOf[0].Ref)
		require.Len(t, prop.OneOf, 1)
		assert.Equal(t, "#/components/schemas/B", prop.OneOf[0].Ref)
	})

	t.Run("multi-branch allOf untouched", func(t *testing.T) {
		prop := &spec.Schema{AllOf: []*spec.Schema{{Type: "object"}, {Type: "object"}}}
		FlattenSingleAllOf(prop, "kind")
		assert.Len(t, prop.AllOf, 2)
		assert.Empty(t, prop.OneOf)
	})

	t.Run("no composition untouched", func(t *testing.T) {
		prop := &spec.Schema{Type: "string"}
		FlattenSingleAllOf(prop, "name")
		assert.Empty(t, prop.AllOf)
		assert.Empty(t, prop.OneOf)
	})

	t.Run("idempotent", func(t *testing.T) {
		prop := &spec.Schema{AllOf: []*spec.Schema{{Ref: "#/components/schemas/Kind"}}}
		FlattenSingleAllOf(prop, "kind")
		once := *prop
		FlattenSingleAllOf(prop, "kind")
		assert.Equal(t, once, *prop)
	})
}

func TestRelocateNullable(t *testing.T) {
	t.Run("nullable oneOf gains synthetic branch", func(t *testing.T) {
		prop := &spec.Schema{
			Nullable: true,
			OneOf:    []*spec.Schema{{Ref: "#/components/schemas/Kind"}},
		}

		RelocateNullable(prop, "kind")

		assert.False(t, prop.Nullable, "nullable flag must be consumed")
		require.Len(t, prop.OneOf, 2)
		assert.Equal(t, "#/components/schemas/Kind", prop.OneOf[0].Ref)
		assert.True(t, prop.OneOf[1].Nullable)
	})

	t.Run("not nullable untouched", func(t *testing.T) {
		prop := &spec.Schema{OneOf: []*spec.Schema{{Type: "string"}}}
		RelocateNullable(prop, "kind")
		assert.Len(t, prop.OneOf, 1)
	})

	t.Run("nullable without oneOf untouched", func(t *testing.T) {
		prop := &spec.Schema{Nullable: true, Type: "string"}
		RelocateNullable(prop, "name")
		assert.True(t, prop.Nullable)
		assert.Empty(t, prop.OneOf)
	})

	t.Run("idempotent", func(t *testing.T) {
		prop := &spec.Schema{
			Nullable: true,
			OneOf:    []*spec.Schema{{Ref: "#/components/schemas/Kind"}},
		}
		RelocateNullable(prop, "kind")
		require.Len(t, prop.OneOf, 2)
		RelocateNullable(prop, "kind")
		assert.Len(t, prop.OneOf, 2, "second run must not add another branch")
	})
}

func TestBuiltinPropertyVisitors_OrderIndependent(t *testing.T) {
	build := func() *spec.Schema {
		return &spec.Schema{
			Nullable: true,
			AllOf:    []*spec.Schema{{Ref: "#/components/schemas/Kind"}},
		}
	}

	flattenFirst := build()
	FlattenSingleAllOf(flattenFirst, "kind")
	RelocateNullable(flattenFirst, "kind")

	relocateFirst := build()
	RelocateNullable(relocateFirst, "kind")
	FlattenSingleAllOf(relocateFirst, "kind")

	// RelocateNullable only fires once a oneOf exists, so the flatten-first
	// ordering resolves fully while the other leaves the flag for a later
	// sweep. Either way both orderings are safe and converge on a second run.
	FlattenSingleAllOf(relocateFirst, "kind")
	RelocateNullable(relocateFirst, "kind")

	assert.Equal(t, flattenFirst, relocateFirst)
}

func TestBuiltinVisitorSet_Idempotent(t *testing.T) {
	build := func() *spec.Document {
		return &spec.Document{
			OpenAPI: "3.0.3",
			Paths: spec.Paths{
				"/pets": {
					Get:  &spec.Operation{OperationID: "listPets"},
					Post: &spec.Operation{OperationID: "createPet", Deprecated: true},
				},
				"/internal": {
					Get: &spec.Operation{Extra: map[string]any{"x-internal": true}},
				},
			},
			Components: &spec.Components{
				Schemas: map[string]*spec.Schema{
					"Pet": {
						Type: "object",
						Properties: map[string]*spec.Schema{
							"kind": {
								Nullable: true,
								AllOf:    []*spec.Schema{{Ref: "#/components/schemas/Kind"}},
							},
						},
					},
				},
			},
		}
	}

	sweep := func(doc *spec.Document) {
		_, err := Process(doc,
			WithOperationVisitors(RemoveDeprecated, RemoveFlagged("x-internal"), EnsureSummary),
			WithPropertySchemaVisitors(FlattenSingleAllOf, RelocateNullable),
		)
		require.NoError(t, err)
	}

	once := build()
	sweep(once)

	twice := build()
	sweep(twice)
	sweep(twice)

	onceBytes, err := spec.Marshal(once, spec.SourceFormatYAML)
	require.NoError(t, err)
	twiceBytes, err := spec.Marshal(twice, spec.SourceFormatYAML)
	require.NoError(t, err)
	assert.Equal(t, string(onceBytes), string(twiceBytes))

	// Sanity: the sweep actually did everything it should.
	assert.NotContains(t, once.Paths, "/internal")
	require.Contains(t, once.Paths, "/pets")
	assert.Nil(t, once.Paths["/pets"].Post)
	assert.Equal(t, "List Pets", once.Paths["/pets"].Get.Summary)

	kind := once.Components.Schemas["Pet"].Properties["kind"]
	assert.Nil(t, kind.AllOf)
	require.Len(t, kind.OneOf, 2)
	assert.False(t, kind.Nullable)
	assert.True(t, kind.OneOf[1].Nullable)
}

func TestRemoveDeprecated(t *testing.T) {
	assert.Equal(t, RemoveOperation,
		RemoveDeprecated(&spec.Operation{Deprecated: true}, spec.MethodGet, "/pets"))
	assert.Equal(t, KeepOperation,
		RemoveDeprecated(&spec.Operation{}, spec.MethodGet, "/pets"))
	assert.Equal(t, KeepOperation,
		RemoveDeprecated(nil, spec.MethodGet, "/pets"))
}

func TestRemoveFlagged(t *testing.T) {
	visit := RemoveFlagged("x-internal")

	assert.Equal(t, RemoveOperation,
		visit(&spec.Operation{Extra: map[string]any{"x-internal": true}}, spec.MethodGet, "/p"))
	assert.Equal(t, KeepOperation,
		visit(&spec.Operation{Extra: map[string]any{"x-internal": false}}, spec.MethodGet, "/p"))
	assert.Equal(t, KeepOperation,
		visit(&spec.Operation{Extra: map[string]any{"x-internal": "yes"}}, spec.MethodGet, "/p"),
		"non-boolean extension values are not treated as flags")
	assert.Equal(t, KeepOperation, visit(&spec.Operation{}, spec.MethodGet, "/p"))
}

func TestEnsureSummary(t *testing.T) {
	t.Run("from operationId", func(t *testing.T) {
		op := &spec.Operation{OperationID: "listPetsByStatus"}
		action := EnsureSummary(op, spec.MethodGet, "/pets")
		assert.Equal(t, KeepOperation, action)
		assert.Equal(t, "List Pets By Status", op.Summary)
	})

	t.Run("from snake_case operationId", func(t *testing.T) {
		op := &spec.Operation{OperationID: "get_pet_by_id"}
		EnsureSummary(op, spec.MethodGet, "/pets/{petId}")
		assert.Equal(t, "Get Pet By Id", op.Summary)
	})

	t.Run("from method and path", func(t *testing.T) {
		op := &spec.Operation{}
		EnsureSummary(op, spec.MethodDelete, "/pets/{petId}/toys")
		assert.Equal(t, "Delete Pets Toys", op.Summary)
	})

	t.Run("existing summary untouched", func(t *testing.T) {
		op := &spec.Operation{OperationID: "listPets", Summary: "Already set"}
		EnsureSummary(op, spec.MethodGet, "/pets")
		assert.Equal(t, "Already set", op.Summary)
	})
}

func TestSplitIdentifierWords(t *testing.T) {
	tests := []struct {
		ident string
		want  []string
	}{
		{"listPets", []string{"list", "pets"}},
		{"get_pet_by_id", []string{"get", "pet", "by", "id"}},
		{"remove-internal", []string{"remove", "internal"}},
		{"simple", []string{"simple"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, splitIdentifierWords(tt.ident))
		})
	}
}
