// Package specsweep provides post-processing tools for generated OpenAPI documents.
//
// specsweep operates on fully generated, in-memory OpenAPI documents and applies
// ordered, composable visitor pipelines that reshape or remove parts of the
// document in place. It is typically the last step between a code-first
// generation pipeline and the serialized specification handed to consumers.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - spec: the in-memory document model, plus loading and serialization
//   - postprocess: the traversal engine and the built-in visitor library
//   - sweeperrors: structured error types shared across the module
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/specsweep/specsweep
//
// # Quick Start
//
// Load a document, remove deprecated operations, and normalize schema shapes:
//
//	import (
//	    "github.com/specsweep/specsweep/postprocess"
//	    "github.com/specsweep/specsweep/spec"
//	)
//
//	doc, err := spec.Load("openapi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := postprocess.Process(doc,
//	    postprocess.WithOperationVisitors(postprocess.RemoveDeprecated),
//	    postprocess.WithPropertySchemaVisitors(
//	        postprocess.FlattenSingleAllOf,
//	        postprocess.RelocateNullable,
//	    ),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Applied %d changes\n", len(report.Changes))
//
// The document is mutated in place; serialize it with [spec.Marshal] when done.
//
// # Command Line
//
// A CLI is available in cmd/specsweep:
//
//	specsweep process --remove-deprecated -o out.yaml openapi.yaml
package specsweep
