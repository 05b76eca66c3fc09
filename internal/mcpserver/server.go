// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes specsweep capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/specsweep/specsweep"
)

const serverInstructions = `specsweep MCP server — applies post-processing sweeps to OpenAPI documents.

The process tool runs two phases over a document:
1. Operation sweep: removes operations matched by the enabled operation
   filters (remove_deprecated, remove_flagged). Path entries left with no
   operations are removed too, unless they carry a $ref.
2. Property sweep: rewrites property schemas in place (flatten_allof,
   relocate_nullable).

Documents can be provided as a file path, a URL, or inline content.
Use include_document=true to get the processed document back inline, or
output to write it to a file.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "specsweep", Version: specsweep.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "process",
		Description: "Post-process an OpenAPI Specification document. Operation filters (remove_deprecated, remove_flagged) delete matching operations and prune path entries left empty. Property transforms (flatten_allof, relocate_nullable) rewrite component property schemas in place. Returns the list of removals; use include_document=true or output to get the processed document.",
	}, handleProcess)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
