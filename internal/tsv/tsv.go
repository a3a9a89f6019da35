// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tsv writes ArticleRecords as a tab-separated table.
//
// Quoting follows the usual delimited-text rules: a field containing a tab,
// a double quote, CR or LF is wrapped in double quotes with embedded quotes
// doubled. The row terminator is applied after quoting, so line breaks
// inside a quoted field are written as they are.
package tsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/medline-tsv/pkg/types"
)

// Writer stages the table in a temp file next to the destination and moves
// it into place on Close.
type Writer struct {
	path   string
	tmp    *os.File
	out    *bufio.Writer
	row    bytes.Buffer // scratch space for one encoded row
	csv    *csv.Writer  // writes into row
	eol    string
	closed bool
}

// Create opens a table for writing at path, creating its directory if
// needed, and writes the header row. An existing file at path is replaced
// when the Writer is closed.
func Create(path string, crlf bool) (*Writer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}

	w := &Writer{path: path, tmp: tmp, out: bufio.NewWriter(tmp), eol: "\n"}
	if crlf {
		w.eol = "\r\n"
	}
	w.csv = csv.NewWriter(&w.row)
	w.csv.Comma = '\t'

	if err := w.writeRow(types.Header); err != nil {
		w.Abort()
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return w, nil
}

// Write appends one record as a row.
func (w *Writer) Write(rec types.ArticleRecord) error {
	if err := w.writeRow(rec.Row()); err != nil {
		return fmt.Errorf("writing row for PMID %s: %w", rec.PMID, err)
	}
	return nil
}

// writeRow quotes fields with encoding/csv, which always ends the row with
// "\n", then swaps that final newline for the configured terminator.
func (w *Writer) writeRow(fields []string) error {
	w.row.Reset()
	if err := w.csv.Write(fields); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	line := bytes.TrimSuffix(w.row.Bytes(), []byte("\n"))
	if _, err := w.out.Write(line); err != nil {
		return err
	}
	_, err := w.out.WriteString(w.eol)
	return err
}

// Close flushes the table and renames it to the destination path. On any
// error the temp file is removed and the destination is left untouched.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.out.Flush(); err != nil {
		w.discard()
		return fmt.Errorf("flushing %s: %w", w.path, err)
	}
	if err := w.tmp.Close(); err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("closing %s: %w", w.path, err)
	}
	if err := os.Chmod(w.tmp.Name(), 0o644); err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("setting mode on %s: %w", w.path, err)
	}
	if err := os.Rename(w.tmp.Name(), w.path); err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("moving output into place at %s: %w", w.path, err)
	}
	return nil
}

// Abort discards everything written so far. It is a no-op after Close.
func (w *Writer) Abort() {
	if w.closed {
		return
	}
	w.closed = true
	w.discard()
}

func (w *Writer) discard() {
	w.tmp.Close()
	os.Remove(w.tmp.Name())
}
