// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medline-tsv/internal/convert"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Convert article XML files into the PMID/year/title table",
	Long: `Extract enumerates --input-dir for files matching --pattern, parses each
as MEDLINE XML, and writes PMID, year, and title to --output. Unparseable
files are logged and skipped; failures on the output file abort the run.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	summary, err := convert.Run(cmd.Context(), cfg.Extraction, convert.MedlineParser, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nBatch summary: %d written, %d skipped (no PMID), %d failed (total: %d)\n",
		summary.Written, summary.Skipped, summary.Failed, summary.Found)
	if summary.HasFailures() {
		logger.Warnf("%d file(s) could not be parsed; see errors above", summary.Failed)
	}
	return nil
}
