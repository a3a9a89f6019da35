// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model and stage configuration shared by the
// medline-tsv packages.
package types

// ArticleRecord is the three-field projection of one MEDLINE article XML
// document. Records are built per input file and serialized immediately.
type ArticleRecord struct {
	// PMID is the PubMed identifier. Records with an empty PMID are not emitted.
	PMID string `json:"pmid" yaml:"pmid"`

	// Year is the four-digit publication year, or empty when none could be found.
	Year string `json:"year" yaml:"year"`

	// Title is the article title, or empty when the document has none.
	Title string `json:"title" yaml:"title"`
}

// HasPMID reports whether the record carries an identifier and should be
// written to the output table.
func (r ArticleRecord) HasPMID() bool {
	return r.PMID != ""
}

// Row returns the record as output columns in header order.
func (r ArticleRecord) Row() []string {
	return []string{r.PMID, r.Year, r.Title}
}

// Header lists the output column names in order.
var Header = []string{"PMID", "year", "title"}
