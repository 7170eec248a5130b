package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/rto/internal/config"
	"github.com/alexisbeaulieu97/rto/internal/logger"
)

type generateOptions struct {
	configPath   string
	catalogPath  string
	outputDir    string
	attempts     int
	seed         uint64
	dryRun       bool
	autoSplitter bool
}

func (o *generateOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "Path to a YAML settings file")
	f.StringVar(&o.catalogPath, "catalog", "", "Path to a JSON or YAML tool catalog (default: built-in catalog)")
	f.StringVarP(&o.outputDir, "output-dir", "o", "", "Directory for the generated .lss file (default: working directory)")
	f.IntVar(&o.attempts, "attempts", 0, "Number of shuffles to try before giving up (default 1000)")
	f.Uint64Var(&o.seed, "seed", 0, "Seed for a reproducible order (0 picks a random seed)")
	f.BoolVar(&o.dryRun, "dry-run", false, "Print the order and total cost without writing a file")
	f.BoolVar(&o.autoSplitter, "auto-splitter", true, "Include the auto splitter settings block")
}

// resolve merges defaults, the optional settings file and explicitly set flags,
// in that order of precedence.
func (o *generateOptions) resolve(cmd *cobra.Command, root *rootFlags) (config.Settings, error) {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return config.Settings{}, err
	}

	f := cmd.Flags()
	if f.Changed("catalog") {
		settings.Catalog = o.catalogPath
	}
	if f.Changed("output-dir") {
		settings.OutputDir = o.outputDir
	}
	if f.Changed("attempts") {
		settings.BatchSize = o.attempts
	}
	if f.Changed("seed") {
		settings.Seed = o.seed
	}
	if f.Changed("dry-run") {
		settings.DryRun = o.dryRun
	}
	if f.Changed("auto-splitter") {
		settings.AutoSplitter = o.autoSplitter
	}
	if root.verbose {
		settings.Verbose = true
	}

	if err := config.Validate(settings); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func newLogger(cmd *cobra.Command, level string) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
}

// colorEnabled reports whether the report goes straight to an interactive terminal.
func colorEnabled(cmd *cobra.Command) bool {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}
