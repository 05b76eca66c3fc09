// Package spec defines the in-memory OpenAPI document model that specsweep
// post-processes, along with loading and serialization helpers.
//
// The model is deliberately narrower than the full OpenAPI Specification:
// it covers the parts that post-processing touches (paths, operations per
// HTTP method, component schemas with properties, $ref markers) and captures
// everything else through inline extension maps so documents round-trip
// through YAML or JSON without loss of the fields specsweep understands.
//
// # Loading
//
// Documents are loaded from a file path, URL, reader, or byte slice:
//
//	doc, err := spec.Load("openapi.yaml")
//	doc, err := spec.LoadBytes(data)
//
// The source format (YAML or JSON) is detected from the file extension and,
// failing that, the content. Use [Marshal] to serialize the document back in
// either format.
//
// # Mutation
//
// The document graph is plain mutable data. The postprocess package assumes
// exclusive access to a Document for the duration of one call; callers must
// not share a Document across concurrent traversals.
package spec
