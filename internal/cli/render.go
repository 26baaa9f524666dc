package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deviationview/pkg/config"
	"github.com/matzehuels/deviationview/pkg/errors"
	"github.com/matzehuels/deviationview/pkg/pipeline"
	"github.com/matzehuels/deviationview/pkg/render"
	"github.com/matzehuels/deviationview/pkg/view"
)

// renderCommand creates the render command for writing the gauge to files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		gf         gaugeFlags
		formatsStr string
		output     string
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gauge to SVG, PNG, PDF, JSON or text",
		Long: `Render the gauge to one or more files.

With a single format, --output names the file. With several, its extension
is replaced per format. Without --output the files are named deviation.<format>.
Use "-o -" to write a single format to stdout.

PDF output needs rsvg-convert on PATH; it is skipped with a warning otherwise.`,
		Example: `  deviationview render --position -12 -f svg,png
  deviationview render -c gauge.toml --orientation horizontal -o gauge.svg
  deviationview render -f txt --cols 60 --rows 30 -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, opts, output)
		},
	}

	gf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, txt (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG pixel scale")
	cmd.Flags().StringVar(&opts.FontFamily, "font", opts.FontFamily, "SVG font family")
	cmd.Flags().IntVar(&opts.Cols, "cols", opts.Cols, "text output columns")
	cmd.Flags().IntVar(&opts.Rows, "rows", opts.Rows, "text output rows")

	return cmd
}

// runRender builds the view and writes every requested format.
func (c *CLI) runRender(ctx context.Context, cfg *config.Config, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	opts.Formats = dedupFormats(opts.Formats)
	if slices.Contains(opts.Formats, pipeline.FormatPDF) && !render.RSVGAvailable() {
		printWarning("skipping pdf: rsvg-convert not found")
		opts.Formats = slices.DeleteFunc(opts.Formats, func(f string) bool { return f == pipeline.FormatPDF })
		if len(opts.Formats) == 0 {
			return errors.New(errors.ErrCodeUnsupported, "no format left to render")
		}
	}
	if output == "-" && len(opts.Formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stdout output takes a single format, got %d", len(opts.Formats))
	}

	v, err := cfg.NewView(view.WithLogger(logger))
	if err != nil {
		return err
	}
	f, ok := v.Frame()
	if !ok {
		return errors.New(errors.ErrCodeInternal, "view has no geometry")
	}

	opts.Logger = logger
	artifacts, err := pipeline.Render(ctx, f, opts)
	if err != nil {
		return err
	}

	if output == "-" {
		_, err := os.Stdout.Write(artifacts[opts.Formats[0]])
		return err
	}

	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := outputPath(output, format, len(opts.Formats) > 1)
		if err := writeOutput(path, artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Generated %s", path)
		paths = append(paths, path)
	}

	prog.done(fmt.Sprintf("Rendered %s gauge at position %d", cfg.Orientation, cfg.Position))
	printSuccess("Rendered %d file(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printNextStep("Preview in the terminal", appName+" preview")
	return nil
}

// basePath strips a known format extension from output. An empty output
// falls back to "deviation".
func basePath(output string) string {
	if output == "" {
		return "deviation"
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where format is written. A single format keeps an
// explicit output path as given.
func outputPath(output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	return basePath(output) + "." + format
}

func writeOutput(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// dedupFormats drops repeated formats, keeping the first occurrence.
func dedupFormats(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
