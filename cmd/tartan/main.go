// Command tartan parses, generates, renders and exports tartan setts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tartan/internal/config"
	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/weave"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	pal    palette.Palette
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "tartan",
		Short: "Tartan sett and weave toolkit",
		Long: `tartan works with tartan threadcounts such as "B/24 W4 B24 R2 K24 G24 W/2".

It expands setts into thread sequences, weaves them through a fixed catalog of
weave structures, renders swatches, writes WIF loom drafts, estimates yarn and
generates new setts from constraints.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "tartan.yaml", "Path to the YAML config file")

	root.AddCommand(
		a.parseCmd(),
		a.expandCmd(),
		a.colorsCmd(),
		a.weavesCmd(),
		a.matchCmd(),
		a.generateCmd(),
		a.batchCmd(),
		a.mutateCmd(),
		a.breedCmd(),
		a.wifCmd(),
		a.importCmd(),
		a.renderCmd(),
		a.yarnCmd(),
	)
	return root
}

// init loads the config and builds the palette and logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", a.configPath, err)
	}
	pal, err := cfg.BuildPalette()
	if err != nil {
		return err
	}

	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zc.Level = level
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.Encoding = cfg.Logging.Encoding
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg, a.pal, a.logger = cfg, pal, logger
	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.Int("custom_colors", len(pal.Custom())),
		zap.String("output_dir", cfg.Output.Dir))
	return nil
}

// pattern resolves a weave id, falling back to the configured default.
func (a *app) pattern(id string) (weave.Pattern, error) {
	if id == "" {
		id = a.cfg.Output.Weave
	}
	return weave.Lookup(id)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
