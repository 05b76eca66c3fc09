package spec

// Method is one of the HTTP methods a PathItem can register an operation under.
// The set is closed: post-processing only recognizes these seven methods, which
// gives PathItem.IsEmpty a decidable test.
type Method string

const (
	MethodDelete  Method = "delete"
	MethodGet     Method = "get"
	MethodHead    Method = "head"
	MethodOptions Method = "options"
	MethodPatch   Method = "patch"
	MethodPost    Method = "post"
	MethodPut     Method = "put"
)

// methodOrder is the fixed order in which method slots are checked during
// traversal. Iteration over this slice is the only supported way to visit
// every method slot.
var methodOrder = [...]Method{
	MethodDelete,
	MethodGet,
	MethodHead,
	MethodOptions,
	MethodPatch,
	MethodPost,
	MethodPut,
}

// Methods returns the closed set of HTTP methods in their fixed check order.
// The returned slice is a copy; callers may modify it freely.
func Methods() []Method {
	out := make([]Method, len(methodOrder))
	copy(out, methodOrder[:])
	return out
}

// IsValid returns true if m is one of the seven recognized methods.
func (m Method) IsValid() bool {
	for _, known := range methodOrder {
		if m == known {
			return true
		}
	}
	return false
}

// String returns the lowercase method name as it appears as a path item key.
func (m Method) String() string {
	return string(m)
}

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path.
// A PathItem carrying a $ref is an external reference: it is structurally
// opaque to post-processing and is never swept, even when no method slot
// is populated.
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation registered under m, or nil if the slot is
// empty or the method is not recognized.
func (pi *PathItem) Operation(m Method) *Operation {
	if pi == nil {
		return nil
	}
	switch m {
	case MethodDelete:
		return pi.Delete
	case MethodGet:
		return pi.Get
	case MethodHead:
		return pi.Head
	case MethodOptions:
		return pi.Options
	case MethodPatch:
		return pi.Patch
	case MethodPost:
		return pi.Post
	case MethodPut:
		return pi.Put
	default:
		return nil
	}
}

// SetOperation registers op under m, replacing any existing operation.
// Unrecognized methods are ignored.
func (pi *PathItem) SetOperation(m Method, op *Operation) {
	switch m {
	case MethodDelete:
		pi.Delete = op
	case MethodGet:
		pi.Get = op
	case MethodHead:
		pi.Head = op
	case MethodOptions:
		pi.Options = op
	case MethodPatch:
		pi.Patch = op
	case MethodPost:
		pi.Post = op
	case MethodPut:
		pi.Put = op
	}
}

// ClearOperation empties the method slot for m. Unrecognized methods are ignored.
func (pi *PathItem) ClearOperation(m Method) {
	pi.SetOperation(m, nil)
}

// IsEmpty returns true if the path item has no operations defined.
// A path item with only parameters but no HTTP methods is considered empty.
// A path item with a $ref is NOT considered empty: it references another
// path item and must never be swept.
func (pi *PathItem) IsEmpty() bool {
	if pi == nil {
		return true
	}
	if pi.Ref != "" {
		return false
	}
	for _, m := range methodOrder {
		if pi.Operation(m) != nil {
			return false
		}
	}
	return true
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security    []map[string][]string `yaml:"security,omitempty" json:"security,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Extension returns the value of the extension field key (e.g. "x-internal"),
// or nil if the operation carries no such field.
func (op *Operation) Extension(key string) any {
	if op == nil || op.Extra == nil {
		return nil
	}
	return op.Extra[key]
}

// Parameter describes a single operation parameter
type Parameter struct {
	Ref         string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string  `yaml:"name,omitempty" json:"name,omitempty"`
	In          string  `yaml:"in,omitempty" json:"in,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Response describes a single response from an API operation
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
