// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the batch conversion of article XML files into a
// PMID/year/title table.
//
// Files are processed one at a time in enumeration order. A file that
// cannot be read or parsed is logged and skipped; only failures writing the
// output table abort the run.
package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/medline-tsv/internal/medline"
	"github.com/pdiddy/medline-tsv/internal/tsv"
	"github.com/pdiddy/medline-tsv/pkg/types"
)

// Parser turns one input file into a record.
type Parser interface {
	ParseFile(path string) (types.ArticleRecord, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(path string) (types.ArticleRecord, error)

// ParseFile calls f(path).
func (f ParserFunc) ParseFile(path string) (types.ArticleRecord, error) { return f(path) }

// MedlineParser parses files with the medline package.
var MedlineParser Parser = ParserFunc(medline.ParseFile)

// RecordWriter receives accepted records in order.
type RecordWriter interface {
	Write(rec types.ArticleRecord) error
}

// Summary holds the outcome of a conversion run.
type Summary struct {
	Found   int
	Written int
	Skipped int // parsed, but no PMID
	Failed  int
}

// Processed returns the number of files handled so far.
func (s Summary) Processed() int {
	return s.Written + s.Skipped + s.Failed
}

// HasFailures reports whether any file failed to parse.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Enumerate returns the files in dir whose names match pattern, in the
// order filepath.Glob reports them. No matches is not an error.
func Enumerate(dir, pattern string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %q in %s: %w", pattern, dir, err)
	}
	return paths, nil
}

// ConvertFiles parses each path with p and writes every record that has a
// PMID to w. Parse failures are logged and counted; a write failure stops
// the run and is returned. Cancelling ctx stops the run between files.
func ConvertFiles(ctx context.Context, p Parser, paths []string, w RecordWriter, log logrus.FieldLogger) (Summary, error) {
	summary := Summary{Found: len(paths)}

	for i, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := filepath.Base(path)
		entry := log.WithFields(logrus.Fields{
			"file":  name,
			"index": i + 1,
			"total": len(paths),
		})

		rec, err := p.ParseFile(path)
		if err != nil {
			entry.WithError(err).Errorf("Error parsing %s", path)
			summary.Failed++
			continue
		}

		if rec.HasPMID() {
			if err := w.Write(rec); err != nil {
				return summary, err
			}
			summary.Written++
		} else {
			entry.Debug("no PMID, row omitted")
			summary.Skipped++
		}

		entry.WithField("pmid", rec.PMID).Infof("[%d/%d] Processed %s", i+1, len(paths), name)
	}

	return summary, nil
}

// Run enumerates cfg.InputDir, converts every matching file, and writes the
// table to cfg.OutputPath. The returned error is non-nil only for fatal
// problems: a bad pattern, output I/O, or cancellation.
func Run(ctx context.Context, cfg types.ExtractionConfig, p Parser, log logrus.FieldLogger) (Summary, error) {
	paths, err := Enumerate(cfg.InputDir, cfg.Pattern)
	if err != nil {
		return Summary{}, err
	}
	log.WithField("dir", cfg.InputDir).Infof("Found %d article XML files.", len(paths))

	out, err := tsv.Create(cfg.OutputPath, cfg.CRLF)
	if err != nil {
		return Summary{Found: len(paths)}, err
	}

	summary, err := ConvertFiles(ctx, p, paths, out, log)
	if err != nil {
		out.Abort()
		return summary, err
	}
	if err := out.Close(); err != nil {
		return summary, err
	}

	log.WithFields(logrus.Fields{
		"processed": summary.Processed(),
		"written":   summary.Written,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
	}).Infof("Done. TSV written to: %s", cfg.OutputPath)
	return summary, nil
}
