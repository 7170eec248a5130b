package config

import (
	"github.com/alexisbeaulieu97/rto/internal/ordering"
	"github.com/alexisbeaulieu97/rto/internal/splits"
)

// Settings holds the parameters of a single generation run.
type Settings struct {
	// Catalog is a path to a JSON or YAML item list; empty selects the embedded catalog.
	Catalog string `yaml:"catalog,omitempty"`
	// OutputDir receives the .lss file; empty means the working directory.
	OutputDir string `yaml:"output_dir,omitempty"`
	// BatchSize is the number of shuffles tried before giving up.
	BatchSize int `yaml:"batch_size,omitempty" validate:"min=1,max=10000000"`
	// Seed makes the search reproducible; zero picks a random seed.
	Seed               uint64 `yaml:"seed,omitempty"`
	GameName           string `yaml:"game_name,omitempty" validate:"required,max=200"`
	CategoryName       string `yaml:"category_name,omitempty" validate:"required,max=200"`
	AutoSplitter       bool   `yaml:"auto_splitter"`
	AutoSplitterScript string `yaml:"autosplitter_script,omitempty" validate:"required_if=AutoSplitter true,max=200"`
	DryRun             bool   `yaml:"dry_run,omitempty"`
	Verbose            bool   `yaml:"verbose,omitempty"`
}

// Default returns the settings used when neither a settings file nor flags
// override anything.
func Default() Settings {
	opts := splits.DefaultOptions()
	return Settings{
		BatchSize:          ordering.DefaultBatchSize,
		GameName:           opts.GameName,
		CategoryName:       opts.CategoryName,
		AutoSplitter:       opts.AutoSplitter,
		AutoSplitterScript: opts.AutoSplitterScript,
	}
}

// SplitsOptions maps the document-related settings onto the serializer.
func (s Settings) SplitsOptions() splits.Options {
	return splits.Options{
		GameName:           s.GameName,
		CategoryName:       s.CategoryName,
		AutoSplitter:       s.AutoSplitter,
		AutoSplitterScript: s.AutoSplitterScript,
	}
}

// LogLevel is "debug" for verbose runs and the logger default otherwise.
func (s Settings) LogLevel() string {
	if s.Verbose {
		return "debug"
	}
	return ""
}
