// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/pdiddy/medline-tsv/pkg/types"
)

// Read parses a table produced by Writer and returns up to limit records.
// A limit of zero or less reads every row. The header must match
// types.Header.
func Read(r io.Reader, limit int) ([]types.ArticleRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = len(types.Header)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty table: missing header")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !slices.Equal(header, types.Header) {
		return nil, fmt.Errorf("unexpected header %q", header)
	}

	var recs []types.ArticleRecord
	for limit <= 0 || len(recs) < limit {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return recs, fmt.Errorf("reading row %d: %w", len(recs)+1, err)
		}
		recs = append(recs, types.ArticleRecord{PMID: row[0], Year: row[1], Title: row[2]})
	}
	return recs, nil
}
