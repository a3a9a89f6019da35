// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// Default locations, relative to the working directory.
const (
	DefaultInputDir   = "../data/raw"
	DefaultPattern    = "article-data-*.xml"
	DefaultOutputDir  = "../data/processed"
	DefaultOutputName = "pmid_year_title.tsv"
)

// DefaultOutputPath is the TSV written when no output is configured.
var DefaultOutputPath = filepath.Join(DefaultOutputDir, DefaultOutputName)

// ExtractionConfig holds settings for the XML-to-TSV conversion.
type ExtractionConfig struct {
	// InputDir is the directory scanned for article XML files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// Pattern is the glob matched against file names in InputDir.
	Pattern string `json:"pattern" yaml:"pattern" mapstructure:"pattern"`

	// OutputPath is the TSV file to (over)write. Its directory is created if missing.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// CRLF terminates rows with "\r\n" instead of "\n".
	CRLF bool `json:"crlf" yaml:"crlf" mapstructure:"crlf"`
}

// DefaultExtractionConfig returns the fixed-path configuration.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		InputDir:   DefaultInputDir,
		Pattern:    DefaultPattern,
		OutputPath: DefaultOutputPath,
		CRLF:       true,
	}
}

// LogFormat selects the console log encoding.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// LoggingConfig holds console logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format LogFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings read by the CLI.
type Config struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging" mapstructure:"logging"`
}
