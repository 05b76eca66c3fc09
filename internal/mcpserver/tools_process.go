package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/specsweep/specsweep/postprocess"
	"github.com/specsweep/specsweep/spec"
)

type processInput struct {
	Spec             specInput `json:"spec"                        jsonschema:"The OAS document to process"`
	RemoveDeprecated bool      `json:"remove_deprecated,omitempty" jsonschema:"Remove operations marked deprecated"`
	RemoveFlagged    string    `json:"remove_flagged,omitempty"    jsonschema:"Remove operations carrying this boolean extension key (e.g. x-internal)"`
	EnsureSummaries  bool      `json:"ensure_summaries,omitempty"  jsonschema:"Fill in missing operation summaries from operationId or path"`
	FlattenAllOf     bool      `json:"flatten_allof,omitempty"     jsonschema:"Rewrite single-branch allOf property schemas into oneOf"`
	RelocateNullable bool      `json:"relocate_nullable,omitempty" jsonschema:"Move nullable flags on oneOf property schemas into a dedicated branch"`
	IncludeDocument  bool      `json:"include_document,omitempty"  jsonschema:"Include the full processed document in output"`
	Output           string    `json:"output,omitempty"            jsonschema:"File path to write the processed document. If omitted the document is returned inline when include_document is true."`
}

type changeApplied struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type processOutput struct {
	ChangeCount       int             `json:"change_count"`
	RemovedOperations int             `json:"removed_operations"`
	RemovedPathItems  int             `json:"removed_path_items"`
	Changes           []changeApplied `json:"changes,omitempty"`
	WrittenTo         string          `json:"written_to,omitempty"`
	Document          string          `json:"document,omitempty"`
}

func handleProcess(_ context.Context, _ *mcp.CallToolRequest, input processInput) (*mcp.CallToolResult, processOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), processOutput{}, nil
	}

	report, err := postprocess.Process(result.Document, buildProcessOptions(input)...)
	if err != nil {
		return errResult(err), processOutput{}, nil
	}

	output := processOutput{
		ChangeCount:       len(report.Changes),
		RemovedOperations: report.RemovedOperations,
		RemovedPathItems:  report.RemovedPathItems,
	}

	output.Changes = makeSlice[changeApplied](len(report.Changes))
	for _, c := range report.Changes {
		output.Changes = append(output.Changes, changeApplied{
			Type:        string(c.Type),
			Path:        c.Path,
			Description: c.Description,
		})
	}

	if input.Output != "" || input.IncludeDocument {
		data, err := spec.Marshal(result.Document, result.SourceFormat)
		if err != nil {
			return errResult(err), processOutput{}, nil
		}
		if input.Output != "" {
			if err := os.WriteFile(input.Output, data, 0o644); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), processOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}

// buildProcessOptions translates the MCP input flags into postprocess
// options, enabling only the requested visitors.
func buildProcessOptions(input processInput) []postprocess.Option {
	var opVisitors []postprocess.OperationVisitor
	if input.RemoveDeprecated {
		opVisitors = append(opVisitors, postprocess.RemoveDeprecated)
	}
	if input.RemoveFlagged != "" {
		opVisitors = append(opVisitors, postprocess.RemoveFlagged(input.RemoveFlagged))
	}
	if input.EnsureSummaries {
		opVisitors = append(opVisitors, postprocess.EnsureSummary)
	}

	var propVisitors []postprocess.PropertyVisitor
	if input.FlattenAllOf {
		propVisitors = append(propVisitors, postprocess.FlattenSingleAllOf)
	}
	if input.RelocateNullable {
		propVisitors = append(propVisitors, postprocess.RelocateNullable)
	}

	var opts []postprocess.Option
	if len(opVisitors) > 0 {
		opts = append(opts, postprocess.WithOperationVisitors(opVisitors...))
	}
	if len(propVisitors) > 0 {
		opts = append(opts, postprocess.WithPropertySchemaVisitors(propVisitors...))
	}
	return opts
}
