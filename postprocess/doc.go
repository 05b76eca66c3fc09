// Package postprocess implements the traversal engine that applies ordered
// visitor pipelines to a generated OpenAPI document, mutating it in place.
//
// One call to [Process] performs one synchronous sweep over the document in
// two phases. The operation phase runs first: for every path entry and every
// recognized HTTP method slot, registered operation visitors run in
// registration order against the operation found there. A visitor may request
// the operation's removal by returning [RemoveOperation]; the first removal
// wins and later visitors never see the deleted operation. When a path entry
// loses its last operation this way, the entry itself is removed from the
// document, unless it carries a $ref marker. The property phase runs second,
// independently: every registered property visitor runs against every
// property of every inline component schema, in registration order.
//
// A phase whose visitor list is empty is skipped entirely. The engine never
// raises errors for document content: node shapes it does not recognize are
// skipped. A panic inside a visitor propagates to the caller and may leave
// the document partially mutated; there is no rollback.
//
// Visitors must be side-effect-local: they mutate only the node handed to
// them (or request its deletion) and must not add paths or schemas to the
// mappings being traversed.
//
// # Quick Start
//
//	report, err := postprocess.Process(doc,
//	    postprocess.WithOperationVisitors(postprocess.RemoveDeprecated),
//	    postprocess.WithPropertySchemaVisitors(
//	        postprocess.FlattenSingleAllOf,
//	        postprocess.RelocateNullable,
//	    ),
//	)
//
// The returned [Report] records every structural removal the sweep performed.
package postprocess
