// Command specsweep post-processes OpenAPI specification documents.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/specsweep/specsweep"
	"github.com/specsweep/specsweep/internal/cliutil"
	"github.com/specsweep/specsweep/internal/mcpserver"
	"github.com/specsweep/specsweep/postprocess"
	"github.com/specsweep/specsweep/spec"
)

// stdinFilePath is the special file path used to indicate reading from stdin.
const stdinFilePath = "-"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("specsweep v%s\n", specsweep.Version())
	case "help", "-h", "--help":
		printUsage()
	case "process":
		if err := handleProcess(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var knownCommands = []string{"process", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// processFlags contains flags for the process command
type processFlags struct {
	output           string
	removeDeprecated bool
	removeFlagged    string
	ensureSummaries  bool
	flattenAllOf     bool
	relocateNullable bool
	quiet            bool
}

func setupProcessFlags() (*flag.FlagSet, *processFlags) {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	flags := &processFlags{}

	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.removeDeprecated, "remove-deprecated", false, "remove operations marked deprecated")
	fs.StringVar(&flags.removeFlagged, "remove-flagged", "", "remove operations carrying this boolean extension key (e.g. x-internal)")
	fs.BoolVar(&flags.ensureSummaries, "ensure-summaries", false, "fill in missing operation summaries from operationId or path")
	fs.BoolVar(&flags.flattenAllOf, "flatten-allof", false, "rewrite single-branch allOf property schemas into oneOf")
	fs.BoolVar(&flags.relocateNullable, "relocate-nullable", false, "move nullable flags on oneOf property schemas into a dedicated branch")
	fs.BoolVar(&flags.quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: specsweep process [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Apply post-processing sweeps to an OpenAPI specification document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOperation Filters:\n")
		cliutil.Writef(fs.Output(), "  Matching operations are removed from the document. Path entries left\n")
		cliutil.Writef(fs.Output(), "  with no operations are removed too, unless they carry a $ref.\n")
		cliutil.Writef(fs.Output(), "\nProperty Transforms:\n")
		cliutil.Writef(fs.Output(), "  Component property schemas are rewritten in place. Transforms only\n")
		cliutil.Writef(fs.Output(), "  fire when their guard matches, so repeated runs are stable.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  specsweep process --remove-deprecated openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  specsweep process --remove-flagged x-internal -o public.yaml openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  specsweep process --flatten-allof --relocate-nullable openapi.json\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | specsweep process -q --remove-deprecated - > swept.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Output preserves the original format (JSON or YAML)\n")
		cliutil.Writef(fs.Output(), "  - With no flags the document passes through unchanged\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document processed successfully (or no changes needed)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to load or process the document\n")
	}

	return fs, flags
}

func handleProcess(args []string) error {
	fs, flags := setupProcessFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("process command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	startTime := time.Now()
	var result *spec.LoadResult
	var err error

	if specPath == stdinFilePath {
		result, err = spec.New().LoadReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("loading stdin: %w", err)
		}
	} else {
		result, err = spec.Load(specPath)
		if err != nil {
			return fmt.Errorf("loading document: %w", err)
		}
	}

	report, err := postprocess.Process(result.Document, buildOptions(flags)...)
	if err != nil {
		return fmt.Errorf("processing document: %w", err)
	}
	totalTime := time.Since(startTime)

	// Diagnostic messages go to stderr to keep stdout clean for pipelining.
	if !flags.quiet {
		cliutil.Writef(os.Stderr, "OpenAPI Specification Sweeper\n")
		cliutil.Writef(os.Stderr, "=============================\n\n")
		cliutil.Writef(os.Stderr, "specsweep version: %s\n", specsweep.Version())
		if specPath == stdinFilePath {
			cliutil.Writef(os.Stderr, "Specification: <stdin>\n")
		} else {
			cliutil.Writef(os.Stderr, "Specification: %s\n", specPath)
		}
		cliutil.Writef(os.Stderr, "Paths: %d\n", len(result.Document.Paths))
		cliutil.Writef(os.Stderr, "Schemas: %d\n", len(result.Document.Schemas()))
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if report.HasChanges() {
			cliutil.Writef(os.Stderr, "Changes Applied (%d):\n", len(report.Changes))
			for _, change := range report.Changes {
				cliutil.Writef(os.Stderr, "  - [%s] %s: %s\n", change.Type, change.Path, change.Description)
			}
			cliutil.Writef(os.Stderr, "\n✓ Removed %d operation(s) and %d path entr(ies)\n",
				report.RemovedOperations, report.RemovedPathItems)
		} else {
			cliutil.Writef(os.Stderr, "✓ No removals needed\n")
		}
	}

	data, err := spec.Marshal(result.Document, result.SourceFormat)
	if err != nil {
		return fmt.Errorf("marshaling processed document: %w", err)
	}

	if err := cliutil.WriteDocument(flags.output, data); err != nil {
		return err
	}
	if flags.output != "" && !flags.quiet {
		cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", flags.output)
	}

	return nil
}

// buildOptions translates CLI flags into postprocess options, enabling only
// the requested visitors.
func buildOptions(flags *processFlags) []postprocess.Option {
	var opVisitors []postprocess.OperationVisitor
	if flags.removeDeprecated {
		opVisitors = append(opVisitors, postprocess.RemoveDeprecated)
	}
	if flags.removeFlagged != "" {
		opVisitors = append(opVisitors, postprocess.RemoveFlagged(flags.removeFlagged))
	}
	if flags.ensureSummaries {
		opVisitors = append(opVisitors, postprocess.EnsureSummary)
	}

	var propVisitors []postprocess.PropertyVisitor
	if flags.flattenAllOf {
		propVisitors = append(propVisitors, postprocess.FlattenSingleAllOf)
	}
	if flags.relocateNullable {
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

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Printf("specsweep v%s - OpenAPI specification post-processor\n\n", specsweep.Version())
	fmt.Println("Usage: specsweep <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  process    Apply post-processing sweeps to an OpenAPI document")
	fmt.Println("  mcp        Run as an MCP server over stdio")
	fmt.Println("  version    Print version information")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Run 'specsweep <command> -h' for command-specific help.")
}
