// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medline-tsv/internal/show"
	"github.com/pdiddy/medline-tsv/internal/tsv"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the first rows of a produced TSV as an aligned table",
	Long: `Show reads a table written by extract (default: the configured --output)
and prints its first --limit rows with columns aligned. Titles longer than
--width terminal cells are truncated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().Int("limit", 20, "maximum rows to print (0 = all)")
	showCmd.Flags().Int("width", 80, "maximum title width in terminal cells (0 = no limit)")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path = cfg.Extraction.OutputPath
	}
	limit, _ := cmd.Flags().GetInt("limit")
	width, _ := cmd.Flags().GetInt("width")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	recs, err := tsv.Read(f, limit)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return show.Table(cmd.OutOrStdout(), recs, width)
}
