package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nishc/policylint/internal/config"
	"github.com/nishc/policylint/internal/engine"
	"github.com/nishc/policylint/internal/ingest"
	"github.com/nishc/policylint/internal/render"
	"github.com/nishc/policylint/internal/revdiff"
	"github.com/nishc/policylint/internal/schema"
	"github.com/nishc/policylint/internal/standard"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// checkFlags holds the parsed flags for the check command.
type checkFlags struct {
	standardID     string
	standardFile   string
	customSections []string
	minLength      int
	sections       []string
	format         string
	out            string
	configPath     string
	failOn         string
	workers        int
	verbose        bool
}

func main() {
	root := &cobra.Command{
		Use:     "policylint",
		Short:   "Validate policy documents against compliance standards",
		Long:    "policylint checks the textual content of policy documents against compliance standards (NIST 800-53, ISO 27001, SOC 2, or custom rule sets), reporting per-section and overall verdicts.",
		Version: version,
	}

	var flags checkFlags
	checkCmd := &cobra.Command{
		Use:   "check <document-file>...",
		Short: "Validate one or more policy documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, flags)
		},
	}

	f := checkCmd.Flags()
	f.StringVar(&flags.standardID, "standard", "CUSTOM", "Standard id to validate against (see 'policylint standards')")
	f.StringVar(&flags.standardFile, "standard-file", "", "JSON standard definition file (overrides --standard)")
	f.StringArrayVar(&flags.customSections, "custom-section", nil, "Build a custom standard from these section names (may be repeated; overrides --standard)")
	f.IntVar(&flags.minLength, "min-length", 0, "Minimum document length for --custom-section standards (0 = default)")
	f.StringArrayVar(&flags.sections, "section", nil, "Section name to validate (may be repeated; default all)")
	f.StringVar(&flags.format, "format", "term", "Output format: term, json, or md")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.configPath, "config", "", "TOML file with matcher/evaluator threshold overrides")
	f.StringVar(&flags.failOn, "fail-on", "", "Exit 2 if any overall status >= this level (warning or fail)")
	f.IntVar(&flags.workers, "workers", 0, "Concurrent document validations (0 = one per CPU)")
	f.BoolVar(&flags.verbose, "verbose", false, "Print processing steps to stderr")

	standardsCmd := &cobra.Command{
		Use:   "standards",
		Short: "List the built-in standards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStandards()
		},
	}

	var diffOut string
	diffCmd := &cobra.Command{
		Use:   "diff <old-file> <new-file>",
		Short: "Show patch text between two revisions of a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], diffOut)
		},
	}
	diffCmd.Flags().StringVar(&diffOut, "out", "", "Write patch text to file instead of stdout")

	root.AddCommand(checkCmd, standardsCmd, diffCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func runCheck(paths []string, flags checkFlags) error {
	if err := validateFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	cfg := config.Default()
	if flags.configPath != "" {
		logVerbose(flags.verbose, "Loading config: %s", flags.configPath)
		var err error
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return codeError(3, "loading config: %s", err)
		}
	}

	registry := standard.NewRegistry()
	standardID := flags.standardID
	switch {
	case flags.standardFile != "":
		logVerbose(flags.verbose, "Loading standard file: %s", flags.standardFile)
		std, err := standard.LoadFile(flags.standardFile)
		if err != nil {
			return codeError(3, "loading standard file: %s", err)
		}
		if err := registry.Register(std); err != nil {
			return codeError(3, "registering standard: %s", err)
		}
		standardID = std.ID
	case len(flags.customSections) > 0:
		specs := standard.SpecsFromNames(flags.customSections)
		std := registry.RegisterCustom(specs, flags.minLength)
		logVerbose(flags.verbose, "Registered custom standard %s with %d section(s)", std.ID, len(specs))
		standardID = std.ID
	}

	eng := engine.New(registry, cfg)

	docs := make([]engine.Document, 0, len(paths))
	for _, path := range paths {
		logVerbose(flags.verbose, "Loading document: %s", path)
		doc, err := ingest.Load(path)
		if err != nil {
			return codeError(3, "loading document: %s", err)
		}
		docs = append(docs, engine.Document{ID: path, Text: doc.Text})
	}

	logVerbose(flags.verbose, "Validating %d document(s) against %s", len(docs), standardID)
	reports, err := eng.ValidateAll(context.Background(), docs, standardID, flags.sections, flags.workers)
	if err != nil {
		return codeError(3, "%s", err)
	}

	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}

	var output []byte
	for _, report := range reports {
		rendered, err := renderer.Render(report)
		if err != nil {
			return codeError(3, "rendering output: %s", err)
		}
		output = append(output, rendered...)
		if len(rendered) > 0 && rendered[len(rendered)-1] != '\n' {
			output = append(output, '\n')
		}
	}

	if err := writeOutput(flags.out, output); err != nil {
		return codeError(3, "%s", err)
	}

	if flags.failOn != "" {
		threshold := schema.Status(flags.failOn)
		for _, report := range reports {
			if schema.StatusOrdinal(report.OverallStatus) >= schema.StatusOrdinal(threshold) {
				return codeError(2, "%s: overall status %s meets or exceeds --fail-on threshold %s",
					report.DocumentID, report.OverallStatus, threshold)
			}
		}
	}

	return nil
}

func runStandards() error {
	registry := standard.NewRegistry()
	for _, summary := range registry.List() {
		std, err := registry.Resolve(summary.ID)
		if err != nil {
			return codeError(3, "%s", err)
		}
		fmt.Printf("%-14s %s (%d sections, min length %d)\n",
			summary.ID, summary.DisplayName, len(std.Sections), std.MinLength)
		for _, spec := range std.Sections {
			fmt.Printf("    - %s\n", spec.Name)
		}
	}
	return nil
}

func runDiff(oldPath, newPath, out string) error {
	oldDoc, err := ingest.Load(oldPath)
	if err != nil {
		return codeError(3, "loading %s: %s", oldPath, err)
	}
	newDoc, err := ingest.Load(newPath)
	if err != nil {
		return codeError(3, "loading %s: %s", newPath, err)
	}

	patch := revdiff.Patch(oldDoc.Text, newDoc.Text)
	if patch == "" {
		fmt.Fprintln(os.Stderr, "INFO: revisions are identical after normalization")
		return nil
	}
	if err := writeOutput(out, []byte(patch)); err != nil {
		return codeError(3, "%s", err)
	}
	return nil
}

// writeOutput writes bytes to the given file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// validateFlags returns an error if any flag value is invalid.
func validateFlags(flags checkFlags) error {
	switch flags.format {
	case "term", "json", "md":
	default:
		return fmt.Errorf("--format must be term, json, or md, got %q", flags.format)
	}

	switch flags.failOn {
	case "", string(schema.StatusWarning), string(schema.StatusFail):
	default:
		return fmt.Errorf("--fail-on must be warning or fail, got %q", flags.failOn)
	}

	if flags.workers < 0 {
		return fmt.Errorf("--workers must be >= 0, got %d", flags.workers)
	}

	if flags.minLength < 0 {
		return fmt.Errorf("--min-length must be >= 0, got %d", flags.minLength)
	}

	return nil
}

// logVerbose writes a message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}
