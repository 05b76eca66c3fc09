package postprocess

import (
	"fmt"
	"sort"

	"github.com/specsweep/specsweep/spec"
	"github.com/specsweep/specsweep/sweeperrors"
)

// config holds the two ordered visitor lists for one Process call.
// No other configuration is recognized.
type config struct {
	operationVisitors      []OperationVisitor
	propertySchemaVisitors []PropertyVisitor
}

// Option configures a Process call.
type Option func(*config) error

// WithOperationVisitors appends visitors to the ordered operation pipeline.
// Visitors run in registration order against each operation.
func WithOperationVisitors(visitors ...OperationVisitor) Option {
	return func(cfg *config) error {
		for i, v := range visitors {
			if v == nil {
				return &sweeperrors.ConfigError{
					Option:  "WithOperationVisitors",
					Message: fmt.Sprintf("visitor at index %d is nil", i),
				}
			}
		}
		cfg.operationVisitors = append(cfg.operationVisitors, visitors...)
		return nil
	}
}

// WithPropertySchemaVisitors appends visitors to the ordered property-schema
// pipeline. Visitors run in registration order against each property.
func WithPropertySchemaVisitors(visitors ...PropertyVisitor) Option {
	return func(cfg *config) error {
		for i, v := range visitors {
			if v == nil {
				return &sweeperrors.ConfigError{
					Option:  "WithPropertySchemaVisitors",
					Message: fmt.Sprintf("visitor at index %d is nil", i),
				}
			}
		}
		cfg.propertySchemaVisitors = append(cfg.propertySchemaVisitors, visitors...)
		return nil
	}
}

// Process performs one post-processing sweep over doc, mutating it in place,
// and returns a report of the structural changes applied.
//
// The operation phase runs first, then the property phase; a phase with no
// registered visitors is skipped. With no visitors at all, Process is a no-op
// and the document is left untouched.
//
// Process returns an error only for a nil document or invalid option wiring,
// never for document content. The caller must ensure exclusive access to doc
// for the duration of the call.
func Process(doc *spec.Document, opts ...Option) (*Report, error) {
	if doc == nil {
		return nil, &sweeperrors.ConfigError{Message: "nil document"}
	}

	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	report := &Report{}
	if len(cfg.operationVisitors) > 0 {
		processOperations(doc, cfg.operationVisitors, report)
	}
	if len(cfg.propertySchemaVisitors) > 0 {
		processProperties(doc, cfg.propertySchemaVisitors)
	}
	return report, nil
}

// processOperations runs the operation phase: every visitor against every
// populated method slot of every path entry, with cascade removal of path
// entries emptied by the sweep.
func processOperations(doc *spec.Document, visitors []OperationVisitor, report *Report) {
	for _, pathKey := range sortedMapKeys(doc.Paths) {
		item := doc.Paths[pathKey]
		if item == nil {
			continue
		}

		removedAny := false
		for _, method := range spec.Methods() {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			for _, visit := range visitors {
				if visit(op, method, pathKey) == RemoveOperation {
					item.ClearOperation(method)
					removedAny = true
					report.addOperationRemoval(
						fmt.Sprintf("paths.%s.%s", pathKey, method),
						fmt.Sprintf("removed %s operation from path '%s'", method, pathKey),
					)
					break
				}
			}
		}

		// Cascade: a path entry emptied by this sweep is deleted, unless it
		// carries a $ref marker (IsEmpty is false for $ref entries).
		if removedAny && item.IsEmpty() {
			delete(doc.Paths, pathKey)
			report.addPathItemRemoval(
				fmt.Sprintf("paths.%s", pathKey),
				fmt.Sprintf("removed path entry '%s' with no remaining operations", pathKey),
			)
		}
	}
}

// processProperties runs the property phase: every visitor against every
// property of every inline component schema. Reference-marker schemas and
// schemas without properties are skipped.
func processProperties(doc *spec.Document, visitors []PropertyVisitor) {
	schemas := doc.Schemas()
	for _, name := range sortedMapKeys(schemas) {
		schema := schemas[name]
		if schema == nil || schema.IsRef() || len(schema.Properties) == 0 {
			continue
		}
		for _, propName := range sortedMapKeys(schema.Properties) {
			prop := schema.Properties[propName]
			if prop == nil {
				continue
			}
			for _, visit := range visitors {
				visit(prop, propName)
			}
		}
	}
}

// sortedMapKeys returns sorted keys from any map with string keys.
func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
