package cli

import (
	"context"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/buildinfo"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/cache"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/config"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// cacheKeyPrefix versions cache keys so that a change to the board
	// format invalidates old entries.
	cacheKeyPrefix = "v1:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Mosaic generates color-estimation boards",
		Long: `Mosaic generates boards of overlapping colored shapes and measures how much
of the canvas each color covers. Boards that leave a color nearly invisible,
or too much of the canvas empty, are thrown away and regenerated.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/mosaic/config.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The runner shares one
// style selector for the whole command, so boards generated in one session
// deal every style before repeating.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, cache.NewScopedKeyer(nil, cacheKeyPrefix), c.Logger)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	sel, err := layout.NewSelectorMode(rng, c.cfg.Selector.Mode)
	if err != nil {
		store.Close()
		return nil, err
	}
	runner.Selector = sel
	runner.MeasureTTL = c.cfg.Cache.TTL
	return runner, nil
}

// newCache opens the configured cache backend. An unreachable file cache
// location degrades to no caching; an unreachable Redis is an error because
// it was asked for explicitly.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.cfg.Cache.RedisAddr,
			Password: c.cfg.Cache.RedisPassword,
			DB:       c.cfg.Cache.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := cacheDir(c.cfg)
	if err != nil {
		c.Logger.Debug("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache directory unusable, caching disabled", "dir", dir, "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the file cache directory: the configured one, or the XDG
// default (~/.cache/mosaic/).
func cacheDir(cfg config.Config) (string, error) {
	return cfg.CacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// baseOptions returns pipeline options carrying the configured sampler and
// constraints.
func (c *CLI) baseOptions() pipeline.Options {
	limits := c.cfg.Constraints
	return pipeline.Options{
		Resolution:  c.cfg.Sampler.Resolution,
		Constraints: &limits,
		Workers:     c.cfg.Sampler.Workers,
		Logger:      c.Logger,
	}
}

// randomSeed draws a seed for runs that did not ask for one.
func randomSeed() uint64 {
	return rand.Uint64()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
