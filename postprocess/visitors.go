package postprocess

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/specsweep/specsweep/spec"
)

// FlattenSingleAllOf is a property visitor that rewrites a single-branch
// allOf composition into an equivalent single-entry oneOf. The two are
// semantically identical for exactly one schema, and oneOf is the form
// downstream consumers handle uniformly.
//
// The rewrite is guarded: a property that already carries a oneOf list is
// left untouched, which also makes the visitor idempotent.
func FlattenSingleAllOf(prop *spec.Schema, _ string) {
	if prop == nil || len(prop.AllOf) != 1 || len(prop.OneOf) > 0 {
		return
	}
	prop.OneOf = prop.AllOf
	prop.AllOf = nil
}

// RelocateNullable is a property visitor that moves the nullable flag of a
// oneOf composition into a synthetic { nullable: true } branch. Some
// consumers cannot express nullable-plus-oneOf directly; the extra branch
// carries the same meaning.
//
// The nullable flag is consumed on first application, so running the visitor
// again produces no further change.
func RelocateNullable(prop *spec.Schema, _ string) {
	if prop == nil || !prop.Nullable || len(prop.OneOf) == 0 {
		return
	}
	prop.Nullable = false
	prop.OneOf = append(prop.OneOf, &spec.Schema{Nullable: true})
}

// RemoveDeprecated is an operation visitor that requests removal of
// operations flagged deprecated.
func RemoveDeprecated(op *spec.Operation, _ spec.Method, _ string) OperationAction {
	if op != nil && op.Deprecated {
		return RemoveOperation
	}
	return KeepOperation
}

// RemoveFlagged returns an operation visitor that requests removal of
// operations whose extension field key (e.g. "x-internal") is true.
func RemoveFlagged(key string) OperationVisitor {
	return func(op *spec.Operation, _ spec.Method, _ string) OperationAction {
		if flagged, ok := op.Extension(key).(bool); ok && flagged {
			return RemoveOperation
		}
		return KeepOperation
	}
}

// titleCaser title-cases summary words. strings.Title is deprecated;
// x/text handles casing correctly across languages.
var titleCaser = cases.Title(language.English)

// EnsureSummary is an operation visitor that fills an empty operation
// summary from the operationId when one is set, falling back to the method
// and path. Operations that already have a summary are left untouched.
func EnsureSummary(op *spec.Operation, method spec.Method, path string) OperationAction {
	if op == nil || op.Summary != "" {
		return KeepOperation
	}

	var words []string
	if op.OperationID != "" {
		words = splitIdentifierWords(op.OperationID)
	} else {
		words = append([]string{method.String()}, pathWords(path)...)
	}
	if len(words) > 0 {
		op.Summary = titleCaser.String(strings.Join(words, " "))
	}
	return KeepOperation
}

// splitIdentifierWords splits a camelCase, snake_case, or kebab-case
// identifier into lowercase words.
func splitIdentifierWords(ident string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}
	for _, r := range ident {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// pathWords extracts the static segments of a path template, skipping
// parameter placeholders like {id}.
func pathWords(path string) []string {
	var words []string
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || strings.HasPrefix(seg, "{") {
			continue
		}
		words = append(words, strings.ToLower(seg))
	}
	return words
}
