package postprocess

import (
	"fmt"

	"github.com/specsweep/specsweep/spec"
)

// OperationAction is the result an operation visitor returns for the
// operation it was handed.
type OperationAction int

const (
	// KeepOperation leaves the operation in place. Later visitors in the
	// pipeline still run against it.
	KeepOperation OperationAction = iota

	// RemoveOperation requests deletion of the operation from its path entry.
	// The pipeline short-circuits: later visitors never see the operation.
	RemoveOperation
)

// IsValid returns true if the action is one of the defined constants.
func (a OperationAction) IsValid() bool {
	return a >= KeepOperation && a <= RemoveOperation
}

// String returns a string representation of the action.
func (a OperationAction) String() string {
	switch a {
	case KeepOperation:
		return "KeepOperation"
	case RemoveOperation:
		return "RemoveOperation"
	default:
		return fmt.Sprintf("OperationAction(%d)", a)
	}
}

// OperationVisitor is called for each operation found during the operation
// phase, with the HTTP method it is registered under and its path key.
// It may mutate the operation in place, or return RemoveOperation to delete
// it from the document.
type OperationVisitor func(op *spec.Operation, method spec.Method, path string) OperationAction

// PropertyVisitor is called for each property schema of each inline component
// schema during the property phase, with the property's name. It transforms
// the schema in place; there is no deletion contract in this phase.
type PropertyVisitor func(prop *spec.Schema, name string)
