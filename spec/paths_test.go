package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods_FixedOrder(t *testing.T) {
	expected := []Method{
		MethodDelete, MethodGet, MethodHead, MethodOptions,
		MethodPatch, MethodPost, MethodPut,
	}
	assert.Equal(t, expected, Methods())

	// Returned slice is a copy; mutating it must not affect later calls.
	got := Methods()
	got[0] = Method("bogus")
	assert.Equal(t, expected, Methods())
}

func TestMethod_IsValid(t *testing.T) {
	for _, m := range Methods() {
		assert.True(t, m.IsValid(), "method %s should be valid", m)
	}
	assert.False(t, Method("trace").IsValid(), "trace is outside the closed set")
	assert.False(t, Method("GET").IsValid(), "methods are lowercase")
	assert.False(t, Method("").IsValid())
}

func TestPathItem_OperationAccessors(t *testing.T) {
	pi := &PathItem{}

	for _, m := range Methods() {
		require.Nil(t, pi.Operation(m), "empty path item should have no %s", m)
	}

	for _, m := range Methods() {
		op := &Operation{OperationID: "op-" + string(m)}
		pi.SetOperation(m, op)
		assert.Same(t, op, pi.Operation(m))
	}

	pi.ClearOperation(MethodGet)
	assert.Nil(t, pi.Get)
	assert.NotNil(t, pi.Post, "clearing one slot must not touch siblings")

	// Unrecognized methods are ignored, not stored.
	pi.SetOperation(Method("trace"), &Operation{})
	assert.Nil(t, pi.Operation(Method("trace")))
}

func TestPathItem_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		item  *PathItem
		empty bool
	}{
		{name: "nil path item", item: nil, empty: true},
		{name: "zero value", item: &PathItem{}, empty: true},
		{
			name:  "parameters only",
			item:  &PathItem{Parameters: []*Parameter{{Name: "id", In: "path"}}},
			empty: true,
		},
		{
			name:  "single operation",
			item:  &PathItem{Get: &Operation{OperationID: "getThing"}},
			empty: false,
		},
		{
			name:  "ref marker with no operations",
			item:  &PathItem{Ref: "#/components/pathItems/shared"},
			empty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.item.IsEmpty())
		})
	}
}

func TestOperation_Extension(t *testing.T) {
	op := &Operation{Extra: map[string]any{"x-internal": true}}
	assert.Equal(t, true, op.Extension("x-internal"))
	assert.Nil(t, op.Extension("x-missing"))

	var nilOp *Operation
	assert.Nil(t, nilOp.Extension("x-internal"))
	assert.Nil(t, (&Operation{}).Extension("x-internal"))
}

func TestSchema_IsRef(t *testing.T) {
	assert.True(t, (&Schema{Ref: "#/components/schemas/Pet"}).IsRef())
	assert.False(t, (&Schema{Type: "object"}).IsRef())

	var nilSchema *Schema
	assert.False(t, nilSchema.IsRef())
}
