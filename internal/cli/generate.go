package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	seed      uint64
	style     string
	selection string
	count     int
	output    string
	formats   []string
	size      int
	res       int
	level     int
	noCache   bool
	refresh   bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{count: 1}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate boards and write them as SVG, PNG or JSON",
		Long: `Generate one or more boards. Each board is measured and regenerated until
every color is visible and the background is small enough.

Without --seed a random seed is drawn; with --count the following boards use
the next seeds. Boards from one run never repeat a style until every style
has been used.`,
		Example: `  mosaic generate
  mosaic generate --seed 42 -f svg,json
  mosaic generate --style voronoi -n 5 -o boards/voronoi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.count < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--count must be at least 1")
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = randomSeed()
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed of the first board (default random)")
	cmd.Flags().StringVar(&opts.style, "style", "", "use one style for every board (see 'mosaic styles')")
	cmd.Flags().StringVar(&opts.selection, "selection", "", "style selection: bag (default), uniform")
	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of boards")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single board and format) or base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().IntVar(&opts.size, "size", pipeline.DefaultSize, "artifact width in pixels")
	cmd.Flags().IntVar(&opts.res, "resolution", 0, "sampling grid side (default from config)")
	cmd.Flags().IntVar(&opts.level, "level", 0, "also draw a round at this level and report its target")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the measurement cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached measurements")

	_ = cmd.RegisterFlagCompletionFunc("style", completeStyles)

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	single := opts.count == 1

	for i := range opts.count {
		popts := c.baseOptions()
		popts.Seed = opts.seed + uint64(i)
		popts.Style = opts.style
		popts.Selection = opts.selection
		popts.Formats = opts.formats
		popts.Size = opts.size
		popts.Refresh = opts.refresh
		if opts.res > 0 {
			popts.Resolution = opts.res
		}

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating board %d/%d...", i+1, opts.count))
		spinner.Start()
		result, err := runner.Execute(ctx, popts)
		spinner.Stop()
		if err != nil {
			return err
		}

		printSuccess("Board %s (seed %d)", StyleTitle.Render(result.Board.Style), result.Seed)
		fmt.Println(boardStats(result.Stats.Objects, result.Attempts, result.CacheInfo.MeasureHits > 0))
		if result.Exhausted {
			printWarning("no attempt passed the constraints: %s", result.Violations)
		}
		if single {
			fmt.Println(breakdownTable(result.Breakdown, result.Violations))
		}

		for _, format := range opts.formats {
			path := outputPath(opts.output, result.Seed, format, single, len(opts.formats) == 1)
			if err := writeArtifact(path, result.Artifacts[format]); err != nil {
				return err
			}
			printFile(path)
		}

		if opts.level > 0 {
			printRound(popts.Seed, opts.level, result)
		}
	}

	if !single {
		prog.done(fmt.Sprintf("Generated %d boards", opts.count))
	}
	if single && len(opts.formats) == 1 && opts.formats[0] == pipeline.FormatJSON {
		printNextStep("Measure it again", fmt.Sprintf("%s measure %s", appName,
			outputPath(opts.output, opts.seed, pipeline.FormatJSON, true, true)))
	}
	return nil
}

// printRound draws a round for the board and prints its target.
func printRound(seed uint64, level int, result *pipeline.Result) {
	round := pipeline.NewRound(level, pipeline.NewRand(seed))
	round.Resolve(result.Breakdown)

	target := round.TargetColor.String()
	if round.Classified {
		target += " (classified)"
	}
	printKeyValue("Level", fmt.Sprint(round.Level))
	printKeyValue("Target", target)
	printKeyValue("Answer", fmt.Sprintf("%.2f%%", round.TargetArea))
	printKeyValue("Shown for", round.Duration.String())
}

// outputPath names the file for one artifact. A single board in a single
// format is written to base as given; otherwise the seed and format are
// appended to base with its extension removed.
func outputPath(base string, seed uint64, format string, singleBoard, singleFormat bool) string {
	if base == "" {
		return fmt.Sprintf("board-%d.%s", seed, format)
	}
	if singleBoard && singleFormat {
		return base
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if singleBoard {
		return stem + "." + format
	}
	return fmt.Sprintf("%s-%d.%s", stem, seed, format)
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
