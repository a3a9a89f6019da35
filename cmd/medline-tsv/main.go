// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the medline-tsv CLI, which converts a
// directory of MEDLINE article XML files into a PMID/year/title TSV table.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/medline-tsv/internal/logging"
	"github.com/pdiddy/medline-tsv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the logging config before any command runs.
var logger *logrus.Logger

// rootCmd is the base command. Run without a subcommand it performs the
// conversion, so a bare invocation behaves like the fixed-path tool.
var rootCmd = &cobra.Command{
	Use:   "medline-tsv",
	Short: "Convert MEDLINE article XML files to a PMID/year/title TSV",
	Long: `medline-tsv reads every article-data-*.xml file in the input directory,
extracts the PubMed identifier, publication year, and article title from each,
and writes one tab-separated row per article that has a PMID.

Files that cannot be parsed are logged and skipped. With no arguments the
input is ../data/raw and the output ../data/processed/pmid_year_title.tsv.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Logging, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./medline-tsv.yaml or ~/.config/medline-tsv/medline-tsv.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", string(types.LogText), "log format: text or json")

	// Extraction flags are persistent so the root command and extract share them.
	def := types.DefaultExtractionConfig()
	pf.String("input-dir", def.InputDir, "directory containing article XML files")
	pf.String("pattern", def.Pattern, "glob for article XML file names")
	pf.String("output", def.OutputPath, "TSV output path (directory is created if missing)")
	pf.Bool("crlf", def.CRLF, "terminate rows with CRLF (use --crlf=false for LF)")

	bindFlag("logging.level", "log-level")
	bindFlag("logging.format", "log-format")
	bindFlag("extraction.input_dir", "input-dir")
	bindFlag("extraction.pattern", "pattern")
	bindFlag("extraction.output_path", "output")
	bindFlag("extraction.crlf", "crlf")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("medline-tsv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "medline-tsv"))
		}
	}

	viper.SetEnvPrefix("MEDLINE_TSV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves flags, environment, config file, and defaults into a
// Config.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		Extraction: types.DefaultExtractionConfig(),
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
