package spec

// Document represents a generated OpenAPI 3.x document subject to post-processing.
// It is constructed externally (by a generation step or by Load) and handed to
// the postprocess package fully formed.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info,omitempty" json:"info,omitempty"`
	Servers    []*Server   `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      Paths       `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
	Tags       []*Tag      `yaml:"tags,omitempty" json:"tags,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Schemas returns the component schema mapping, or nil if the document has
// no components section. Never allocates.
func (d *Document) Schemas() map[string]*Schema {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a server hosting the API
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds the reusable objects of the document. Post-processing only
// traverses Schemas; the other sections ride along for round-trip fidelity.
type Components struct {
	Schemas    map[string]*Schema    `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses  map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
