package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

const (
	defaultPreviewWidth = 64
	maxPreviewWidth     = 400
)

type previewOpts struct {
	seed      uint64
	style     string
	width     int
	breakdown bool
	noCache   bool
}

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{width: defaultPreviewWidth, breakdown: true}

	cmd := &cobra.Command{
		Use:   "preview [board.json]",
		Short: "Draw a board in the terminal",
		Long: `Preview draws a board as colored terminal cells: exactly the colors the
sampler sees, at a coarse resolution. Without a file a new board is
generated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPreviewWidth(opts.width); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = randomSeed()
			}
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return c.runPreview(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "board seed (default random)")
	cmd.Flags().StringVar(&opts.style, "style", "", "generator style")
	cmd.Flags().IntVarP(&opts.width, "width", "w", opts.width, "preview width in terminal columns")
	cmd.Flags().BoolVar(&opts.breakdown, "breakdown", opts.breakdown, "show the color breakdown")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the measurement cache")

	_ = cmd.RegisterFlagCompletionFunc("style", completeStyles)

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, opts previewOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := c.previewResult(ctx, runner, input, opts)
	if err != nil {
		return err
	}
	b := result.Board

	m, err := previewMeasurement(ctx, b, opts.width)
	if err != nil {
		return err
	}

	if input == "" {
		printInfo("%s %s", StyleTitle.Render(b.Style), StyleDim.Render(fmt.Sprintf("seed %d", result.Seed)))
	}
	fmt.Print(gridView(m))
	if opts.breakdown {
		fmt.Println(breakdownTable(result.Breakdown, result.Violations))
	}
	return nil
}

// previewResult generates a board, or measures the one in input at the
// configured resolution. The preview grid itself is too coarse for the
// breakdown.
func (c *CLI) previewResult(ctx context.Context, runner *pipeline.Runner, input string, opts previewOpts) (*pipeline.Result, error) {
	popts := c.baseOptions()
	if input != "" {
		b, err := readBoard(input)
		if err != nil {
			return nil, err
		}
		return runner.Measure(ctx, b, popts)
	}
	popts.Seed = opts.seed
	popts.Style = opts.style
	return runner.Generate(ctx, popts)
}

// checkPreviewWidth rejects terminal grids that cannot be drawn.
func checkPreviewWidth(width int) error {
	if width < 2 || width > maxPreviewWidth {
		return errors.New(errors.ErrCodeInvalidInput,
			"--width must be between 2 and %d", maxPreviewWidth)
	}
	return nil
}

// previewMeasurement samples b on a width-by-width grid, keeping the
// classified cells for drawing.
func previewMeasurement(ctx context.Context, b *board.Board, width int) (*sample.Measurement, error) {
	return sample.MeasureContext(ctx, b.Objects, sample.Square(width), sample.WithGrid())
}
