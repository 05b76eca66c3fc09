package mcpserver

import (
	"fmt"

	"github.com/specsweep/specsweep/spec"
)

// maxContentSize caps inline document content to keep tool payloads sane.
const maxContentSize = 10 * 1024 * 1024 // 10 MiB

// specInput represents the three ways an OAS document can be provided to a
// tool. Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OAS document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// resolve loads the document from whichever input was provided.
func (s specInput) resolve() (*spec.LoadResult, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.URL != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	loader := spec.New()

	if s.Content != "" {
		if len(s.Content) > maxContentSize {
			return nil, fmt.Errorf("inline content exceeds %d byte limit", maxContentSize)
		}
		return loader.LoadBytes([]byte(s.Content))
	}
	// File and URL paths share the loader's path-or-URL dispatch.
	path := s.File
	if s.URL != "" {
		path = s.URL
	}
	return loader.Load(path)
}
