package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/pipeline"
	"github.com/matzehuels/csvgrid/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	columns string // column count, validated as text
	formats string // comma-separated output formats
	fill    string // rows or columns
	border  string // text table border
	output  string // output file (or base path for multiple formats)
	file    string // read values from this file ("-" for stdin)
	noColor bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [values]",
		Short: "Lay comma-separated values out as a grid",
		Long: `Render splits the values on commas and arranges them row by row into the
requested number of columns. The last row is padded with empty cells.

Values come from the argument, from --file, or from stdin when the argument
is "-" or missing.`,
		Example: `  # Five values in two columns
  csvgrid render "a,b,c,d,e" -c 2

  # Fill top to bottom instead, as HTML
  csvgrid render "a,b,c,d,e" -c 2 --fill columns -f html

  # Several formats at once
  csvgrid render "1,2,3,4" -c 3 -f svg,png,json -o grid`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRenderDefaults(cmd, &opts)
			values, err := readValues(cmd.InOrStdin(), args, opts.file)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), values, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.columns, "columns", "c", "", "number of columns (default from config, else 3)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text, html, json, csv, md, dot, svg, png (comma-separated)")
	cmd.Flags().StringVar(&opts.fill, "fill", "", "fill order: rows (default), columns")
	cmd.Flags().StringVar(&opts.border, "border", "", "text border: rounded (default), normal, thick, double, ascii, hidden")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.file, "file", "", "read values from file (- for stdin)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored text output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	registerGridFlagCompletions(cmd)

	return cmd
}

// applyRenderDefaults fills flags the user did not set from the config file.
func (c *CLI) applyRenderDefaults(cmd *cobra.Command, opts *renderOpts) {
	d := c.Config.Defaults
	if !cmd.Flags().Changed("columns") {
		opts.columns = d.ColumnsText()
	}
	if !cmd.Flags().Changed("format") {
		opts.formats = strings.Join(d.Formats, ",")
	}
	if !cmd.Flags().Changed("fill") {
		opts.fill = d.Fill.String()
	}
	if !cmd.Flags().Changed("border") {
		opts.border = d.Border
	}
}

// readValues returns the raw input from the argument, --file, or stdin.
func readValues(stdin io.Reader, args []string, file string) (string, error) {
	switch {
	case file == "-":
		return readAll(stdin)
	case file != "":
		if err := errors.ValidatePath(file); err != nil {
			return "", err
		}
		data, err := os.ReadFile(file)
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeFileNotFound, "file not found: %s", file)
		}
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	case len(args) == 1 && args[0] != "-":
		return args[0], nil
	default:
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return "", errors.New(errors.ErrCodeInvalidInput,
				"no values given: pass them as an argument, with --file, or on stdin")
		}
		return readAll(stdin)
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// runRender runs the pipeline and writes the artifacts to stdout or files.
func (c *CLI) runRender(ctx context.Context, out io.Writer, values string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	fill, err := grid.ParseFill(opts.fill)
	if err != nil {
		return err
	}
	formats := parseFormats(opts.formats)
	if len(formats) > 1 && opts.output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--output is required when rendering %d formats", len(formats))
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if usesGraphviz(formats) && isTerminal(os.Stderr) {
		spinner = newSpinnerWithContext(ctx, os.Stderr, "Rendering "+strings.Join(formats, ", ")+"...")
		spinner.Start()
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Values:  values,
		Columns: opts.columns,
		Fill:    fill,
		Formats: formats,
		Border:  opts.border,
		Color:   !opts.noColor && opts.output == "" && isTerminal(out),
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := out.Write(result.Artifacts[formats[0]]); err != nil {
			return err
		}
	} else {
		paths, err := writeArtifacts(opts.output, formats, result.Artifacts)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %d format(s)", len(formats)))
		for _, p := range paths {
			printFile(p)
		}
		printStats(result.Stats.Values, result.Stats.Rows, result.Stats.Columns, result.CacheInfo.RenderHit)
	}

	if rejected, ok := result.Model.(render.Error); ok {
		if opts.output != "" {
			printError("%s", rejected.Message)
		}
		return ErrRejected
	}
	return nil
}

// writeArtifacts writes one file per format. A single format goes to output
// as given; several formats share output's base name.
func writeArtifacts(output string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if err := errors.ValidatePath(output); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := output
		if len(formats) > 1 {
			path = basePath(output) + "." + extension(format)
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func usesGraphviz(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatSVG || f == pipeline.FormatPNG {
			return true
		}
	}
	return false
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
