// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package show renders ArticleRecords as a column-aligned console table.
// Widths are measured in terminal cells, so wide (CJK) and combining
// characters line up.
package show

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/medline-tsv/pkg/types"
)

const (
	gap      = "  "
	ellipsis = "..."
)

// Table writes recs to w with a header, a rule, and one line per record.
// Titles wider than titleWidth cells are truncated; titleWidth <= 0 disables
// truncation. Control whitespace inside titles is flattened to spaces.
func Table(w io.Writer, recs []types.ArticleRecord, titleWidth int) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No rows.")
		return err
	}

	rows := make([][]string, len(recs))
	for i, r := range recs {
		title := flatten(r.Title)
		if titleWidth > 0 {
			title = runewidth.Truncate(title, titleWidth, ellipsis)
		}
		rows[i] = []string{r.PMID, r.Year, title}
	}

	widths := make([]int, len(types.Header))
	for i, h := range types.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	writeLine(&b, types.Header, widths)
	rule := make([]string, len(widths))
	for i, cw := range widths {
		rule[i] = strings.Repeat("-", cw)
	}
	writeLine(&b, rule, widths)
	for _, row := range rows {
		writeLine(&b, row, widths)
	}
	fmt.Fprintf(&b, "\n%d rows\n", len(recs))

	_, err := io.WriteString(w, b.String())
	return err
}

// writeLine pads every cell but the last to its column width.
func writeLine(b *strings.Builder, cells []string, widths []int) {
	last := len(cells) - 1
	for i, cell := range cells {
		if i == last {
			b.WriteString(cell)
			break
		}
		b.WriteString(runewidth.FillRight(cell, widths[i]))
		b.WriteString(gap)
	}
	b.WriteString("\n")
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
