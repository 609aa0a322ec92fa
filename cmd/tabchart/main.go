// Package main provides the CLI entry point for tabchart.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/tabchart"
	"github.com/tsawler/tabchart/export"
	"github.com/tsawler/tabchart/format"
	"github.com/tsawler/tabchart/htmldoc"
	"github.com/tsawler/tabchart/tables"
)

// options are the parsed command line flags.
type options struct {
	output     string
	format     string
	input      string
	columns    []string
	kind       string
	render     bool
	skip       string
	minRows    int
	pretty     bool
	tablesOnly bool
	verbose    bool
	logLevel   string
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command with flag defaults taken from cfg.
func newRootCmd(cfg Config) *cobra.Command {
	opts := &options{logLevel: cfg.LogLevel}

	cmd := &cobra.Command{
		Use:   "tabchart [file...]",
		Short: "Extract tables from markdown or HTML as chart data",
		Long: `tabchart finds the pipe tables in a markdown file (or the <table> elements
in an HTML file), classifies them, and writes chart-ready label/series data as
JSON, YAML, or an XLSX workbook with native charts.

With no file, or with "-", input is read from stdin. Several files are
processed concurrently and written as one list keyed by file name.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&opts.format, "format", cfg.Format, "Output format: json, yaml, xlsx")
	flags.StringVar(&opts.input, "input-format", "auto", "Input format: auto, markdown, html")
	flags.StringSliceVar(&opts.columns, "columns", nil, "Value columns to chart, by header name (default: every numeric column)")
	flags.StringVar(&opts.kind, "kind", "all", "Keep only tables of this kind: all, timeseries, comparison")
	flags.BoolVar(&opts.render, "render", false, "Read markdown through the GFM renderer")
	flags.StringVar(&opts.skip, "skip-boilerplate", "none", "Ignore HTML tables in page furniture: none, explicit, standard, aggressive")
	flags.IntVar(&opts.minRows, "min-rows", 0, "Skip tables with fewer data rows")
	flags.BoolVar(&opts.pretty, "pretty", cfg.Pretty, "Pretty-print JSON output")
	flags.BoolVar(&opts.tablesOnly, "tables-only", false, "Write the extracted tables without chart data")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	level := opts.logLevel
	if opts.verbose {
		level = "debug"
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	outFormat := strings.ToLower(opts.format)
	switch outFormat {
	case "json", "yaml":
	case "xlsx":
		if opts.output == "" {
			return errors.New("xlsx output requires --output")
		}
		if opts.tablesOnly {
			return errors.New("xlsx output cannot be combined with --tables-only")
		}
	default:
		return fmt.Errorf("invalid format: %s (must be json, yaml, or xlsx)", opts.format)
	}

	if len(args) > 1 {
		if outFormat == "xlsx" {
			return errors.New("xlsx output takes a single input file")
		}
		batch, err := runBatch(cmd.Context(), args, opts, logger)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), opts, outFormat, batch, logger)
	}

	ext, name, err := newExtractor(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	ext, err = configure(ext, opts)
	if err != nil {
		return err
	}
	logger.Debug("extracting", "input", name, "format", outFormat)

	result, err := extract(ext, name, opts.tablesOnly, logger)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), opts, outFormat, result, logger)
}

// extract runs the terminal operation the flags ask for and logs its
// warnings.
func extract(ext *tabchart.Extractor, name string, tablesOnly bool, logger *slog.Logger) (any, error) {
	var (
		result   any
		count    int
		warnings []tabchart.Warning
	)
	if tablesOnly {
		found, w, err := ext.Tables()
		if err != nil {
			return nil, fmt.Errorf("extraction failed: %w", err)
		}
		result, count, warnings = found, len(found), w
	} else {
		charts, w, err := ext.Charts()
		if err != nil {
			return nil, fmt.Errorf("extraction failed: %w", err)
		}
		result, count, warnings = charts, len(charts), w
	}

	for _, w := range warnings {
		logger.Warn(w.Message, "input", name, "table", w.Table+1)
	}
	logger.Info("extracted tables", "input", name, "tables", count, "warnings", len(warnings))
	return result, nil
}

// newExtractor opens the named file, or reads stdin when there is no name.
func newExtractor(stdin io.Reader, args []string) (*tabchart.Extractor, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return tabchart.FromString(string(data)), "stdin", nil
	}

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("file not found: %s", path)
	}
	return tabchart.Open(path), path, nil
}

// configure applies the filter and projection flags.
func configure(ext *tabchart.Extractor, opts *options) (*tabchart.Extractor, error) {
	if opts.input != "" && !strings.EqualFold(opts.input, "auto") {
		f := format.Parse(opts.input)
		if f == format.Unknown {
			return nil, fmt.Errorf("invalid input format: %s (must be auto, markdown, or html)", opts.input)
		}
		ext = ext.Format(f)
	}
	if opts.render {
		ext = ext.UseRenderer()
	}
	if len(opts.columns) > 0 {
		ext = ext.Columns(opts.columns...)
	}
	if opts.skip != "" {
		mode, ok := htmldoc.ParseExclusion(opts.skip)
		if !ok {
			return nil, fmt.Errorf("invalid skip-boilerplate level: %s (must be none, explicit, standard, or aggressive)", opts.skip)
		}
		ext = ext.SkipBoilerplate(mode)
	}
	if opts.minRows > 0 {
		ext = ext.MinRows(opts.minRows)
	}
	if opts.kind != "" && !strings.EqualFold(opts.kind, "all") {
		kind, ok := tables.ParseKind(opts.kind)
		if !ok {
			return nil, fmt.Errorf("invalid kind: %s (must be all, timeseries, or comparison)", opts.kind)
		}
		ext = ext.OnlyKind(kind)
	}
	return ext, nil
}

// writeOutput encodes result to the output file, or to stdout when no file
// was given.
func writeOutput(stdout io.Writer, opts *options, outFormat string, result any, logger *slog.Logger) error {
	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch outFormat {
	case "yaml":
		err = export.WriteYAML(w, result)
	case "xlsx":
		err = export.WriteWorkbook(w, result.([]tabchart.ChartResult))
	default:
		err = export.WriteJSON(w, result, opts.pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if opts.output != "" {
		logger.Info("wrote output", "path", opts.output, "format", outFormat)
	}
	return nil
}
