package cli

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	mosaicio "github.com/mhuggins102-sudo/Estimate-Game/pkg/io"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

type measureOpts struct {
	res     int
	formats []string
	output  string
	size    int
	noCache bool
	refresh bool
}

// measureCommand creates the measure command.
func (c *CLI) measureCommand() *cobra.Command {
	var formatsStr string
	var opts measureOpts

	cmd := &cobra.Command{
		Use:   "measure <board.json|board.png|->",
		Short: "Measure the color areas of a board file",
		Long: `Measure reads a board written by 'mosaic generate -f json' (or a bare JSON
array of objects) and reports how much of the canvas each color covers and
which constraints the board breaks. Use - to read from stdin.

The board is measured as given: objects keep their z_index and no missing
colors are added.

A .png file is measured as an image instead: every sample takes the board
color nearest to its pixel. Use it to check a PNG rendered by 'mosaic
generate -f png' or a screenshot of a board.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.formats = parseFormats(formatsStr)
				if err := pipeline.ValidateFormats(opts.formats); err != nil {
					return err
				}
			}
			return c.runMeasure(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.res, "resolution", 0, "sampling grid side (default from config)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "also render: svg, png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input name)")
	cmd.Flags().IntVar(&opts.size, "size", pipeline.DefaultSize, "artifact width in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the measurement cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached measurements")

	return cmd
}

func (c *CLI) runMeasure(ctx context.Context, input string, opts measureOpts) error {
	if isPNG(input) {
		return c.runMeasureImage(input, opts)
	}
	b, err := readBoard(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.baseOptions()
	popts.Refresh = opts.refresh
	popts.Formats = opts.formats
	popts.Size = opts.size
	if opts.res > 0 {
		popts.Resolution = opts.res
	}

	result, err := runner.Measure(ctx, b, popts)
	if err != nil {
		return err
	}

	title := input
	if b.Style != "" {
		title = fmt.Sprintf("%s (%s)", input, b.Style)
	}
	printSuccess("Measured %s", StyleTitle.Render(title))
	fmt.Println(boardStats(result.Stats.Objects, 0, result.CacheInfo.MeasureHits > 0))
	printDetail("grid %dx%d", result.Measurement.Grid.SX, result.Measurement.Grid.SY)
	fmt.Println(breakdownTable(result.Breakdown, result.Violations))
	if result.Violations.OK() {
		printInfo("Board passes every constraint")
	} else {
		for _, v := range result.Violations {
			printWarning("%s", v)
		}
	}

	if len(opts.formats) == 0 {
		return nil
	}
	artifacts, err := runner.Render(ctx, result, popts)
	if err != nil {
		return err
	}
	base := opts.output
	if base == "" {
		base = measuredBase(input)
	}
	for _, format := range opts.formats {
		path := strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// runMeasureImage measures a rendered board. Images carry no objects, so
// nothing is cached and no artifacts are rendered.
func (c *CLI) runMeasureImage(input string, opts measureOpts) error {
	if len(opts.formats) > 0 {
		return errors.New(errors.ErrCodeUnsupported, "--format is not supported for image input")
	}
	img, err := mosaicio.ImportPNG(input)
	if err != nil {
		return err
	}

	res := c.cfg.Sampler.Resolution
	if opts.res > 0 {
		res = opts.res
	}
	m := sample.MeasureImage(img, imageGrid(img.Bounds(), res))
	b := m.Breakdown()
	violations := c.cfg.Constraints.Check(b)

	printSuccess("Measured %s", StyleTitle.Render(input))
	printDetail("image %dx%d, grid %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), m.Grid.SX, m.Grid.SY)
	fmt.Println(breakdownTable(b, violations))
	if violations.OK() {
		printInfo("Board passes every constraint")
	} else {
		for _, v := range violations {
			printWarning("%s", v)
		}
	}
	return nil
}

// imageGrid lays a grid res samples wide over bounds, keeping the aspect
// ratio and never sampling finer than one pixel.
func imageGrid(bounds image.Rectangle, res int) sample.Grid {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return sample.Square(res)
	}
	sx := min(res, w)
	sy := max(1, min(h, sx*h/w))
	return sample.Grid{SX: sx, SY: sy}
}

func isPNG(input string) bool {
	return strings.EqualFold(filepath.Ext(input), ".png")
}

func readBoard(input string) (*board.Board, error) {
	if input == "-" {
		return mosaicio.ReadJSON(os.Stdin)
	}
	return mosaicio.ImportJSON(input)
}

// measuredBase names artifacts rendered from an input file so that they do
// not overwrite it.
func measuredBase(input string) string {
	if input == "-" {
		return "measured"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "-measured"
}
