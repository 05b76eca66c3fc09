package spec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/specsweep/specsweep"
	"github.com/specsweep/specsweep/sweeperrors"
)

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// Loader reads OpenAPI documents from files, URLs, readers, or byte slices.
// The zero value is usable; New sets the default User-Agent.
type Loader struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to specsweep.UserAgent() if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with a 30-second timeout is used.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{
		UserAgent: specsweep.UserAgent(),
	}
}

// LoadResult pairs a loaded document with its source metadata, so tools can
// preserve the input format when writing output.
type LoadResult struct {
	// Document is the parsed document
	Document *Document
	// SourcePath is the file path or URL the document was read from
	SourcePath string
	// SourceFormat is the detected format of the source (JSON or YAML)
	SourceFormat SourceFormat
}

// Load reads and parses a document from a local file path or an
// http(s) URL using a default Loader.
func Load(path string) (*LoadResult, error) {
	return New().Load(path)
}

// LoadBytes parses a document from a byte slice using a default Loader.
func LoadBytes(data []byte) (*LoadResult, error) {
	return New().LoadBytes(data)
}

// Load reads and parses a document from a local file path or an http(s) URL.
func (l *Loader) Load(path string) (*LoadResult, error) {
	var data []byte
	var err error
	var format SourceFormat

	if isURL(path) {
		data, err = l.fetchURL(path)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromPath(path)
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, &sweeperrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
		}
		format = detectFormatFromPath(path)
	}
	l.log().Debug("loaded document source", "path", path, "bytes", len(data))

	res, err := l.LoadBytes(data)
	if err != nil {
		var perr *sweeperrors.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	res.SourcePath = path
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// LoadReader parses a document from an io.Reader.
func (l *Loader) LoadReader(r io.Reader) (*LoadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &sweeperrors.ParseError{Message: "failed to read data", Cause: err}
	}
	return l.LoadBytes(data)
}

// LoadBytes parses a document from a byte slice. The format is detected from
// the content: JSON input is parsed on its own path, anything else as YAML.
func (l *Loader) LoadBytes(data []byte) (*LoadResult, error) {
	format := detectFormatFromContent(data)

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &sweeperrors.ParseError{Message: "failed to parse YAML/JSON", Cause: err}
	}
	if doc.OpenAPI == "" {
		return nil, &sweeperrors.ParseError{Message: "missing required 'openapi' version field"}
	}

	return &LoadResult{
		Document:     &doc,
		SourceFormat: format,
	}, nil
}

// Marshal serializes a document in the given format. SourceFormatUnknown is
// treated as YAML.
func Marshal(doc *Document, format SourceFormat) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("spec: cannot marshal nil document")
	}

	// YAML is the canonical encoding: the struct tags and inline extension
	// maps are yaml-first. JSON output goes through a generic map so that
	// inline x- extensions survive.
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("spec: failed to marshal document: %w", err)
	}
	if format != SourceFormatJSON {
		return data, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("spec: failed to rebuild document for JSON output: %w", err)
	}
	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("spec: failed to marshal document as JSON: %w", err)
	}
	return append(out, '\n'), nil
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// detectFormatFromPath detects the source format from a file path or URL
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON typically starts with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchURL fetches document content from a URL
func (l *Loader) fetchURL(urlStr string) ([]byte, error) {
	client := l.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &sweeperrors.ParseError{Path: urlStr, Message: "failed to build request", Cause: err}
	}
	ua := l.UserAgent
	if ua == "" {
		ua = specsweep.UserAgent()
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &sweeperrors.ParseError{Path: urlStr, Message: "failed to fetch URL", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &sweeperrors.ParseError{
			Path:    urlStr,
			Message: fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &sweeperrors.ParseError{Path: urlStr, Message: "failed to read response body", Cause: err}
	}
	return data, nil
}
