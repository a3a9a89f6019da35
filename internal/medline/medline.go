// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package medline parses per-article MEDLINE/PubMed XML documents into
// ArticleRecords.
//
// Fields are found by path lookups relative to the document root, so the
// same code handles a bare MedlineCitation, a PubmedArticle, or a
// PubmedArticleSet holding one article.
package medline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/beevik/etree"

	"github.com/pdiddy/medline-tsv/pkg/types"
)

const (
	pathCitationPMID = "MedlineCitation/PMID"
	pathPMID         = "PMID"
	pathTitle        = "Article/ArticleTitle"
	pathPubDate      = "Article/Journal/JournalIssue/PubDate"
)

// yearPattern matches a four-digit year in the 1900s or 2000s. Word
// boundaries are checked separately by isWordRune, since regexp's \b only
// knows ASCII and "2019年" must not count as a year.
var yearPattern = regexp.MustCompile(`(19|20)[0-9]{2}`)

// ReadError reports an input file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports an input document that is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing XML: %v", e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseFile reads and parses the article XML at path.
func ParseFile(path string) (types.ArticleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ArticleRecord{}, &ReadError{Path: path, Err: err}
	}
	root, err := decode(bytes.NewReader(data))
	if err != nil {
		return types.ArticleRecord{}, &ParseError{Path: path, Err: err}
	}
	return Extract(root), nil
}

// Parse parses one article XML document from r.
func Parse(r io.Reader) (types.ArticleRecord, error) {
	root, err := decode(r)
	if err != nil {
		return types.ArticleRecord{}, &ParseError{Err: err}
	}
	return Extract(root), nil
}

// Extract pulls PMID, year, and title out of a decoded document root.
// Missing fields come back empty; Extract never fails.
func Extract(root *etree.Element) types.ArticleRecord {
	return types.ArticleRecord{
		PMID:  extractPMID(root),
		Year:  extractYear(first(findBelow(root, pathPubDate))),
		Title: extractTitle(root),
	}
}

// extractPMID prefers the citation's own PMID and falls back to any PMID
// below the root.
func extractPMID(root *etree.Element) string {
	if pmid := firstText(findBelow(root, pathCitationPMID)); pmid != "" {
		return pmid
	}
	return firstText(findBelow(root, pathPMID))
}

// extractTitle returns the character data that opens ArticleTitle. Text
// inside or after inline markup such as <i> is not part of it.
func extractTitle(root *etree.Element) string {
	el := first(findBelow(root, pathTitle))
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// extractYear reads PubDate/Year, falling back to the first plausible year
// inside the free-form PubDate/MedlineDate (e.g. "1998 Dec-1999 Jan").
// A Year holding only whitespace counts as absent.
func extractYear(pubDate *etree.Element) string {
	if pubDate == nil {
		return ""
	}
	if y := pubDate.SelectElement("Year"); y != nil {
		if year := strings.TrimSpace(y.Text()); year != "" {
			return year
		}
	}
	if md := pubDate.SelectElement("MedlineDate"); md != nil {
		return findYear(strings.TrimSpace(md.Text()))
	}
	return ""
}

// findYear returns the first yearPattern match in s that is not joined to
// a neighbouring letter, digit, or underscore.
func findYear(s string) string {
	for _, loc := range yearPattern.FindAllStringIndex(s, -1) {
		before, _ := utf8.DecodeLastRuneInString(s[:loc[0]])
		after, _ := utf8.DecodeRuneInString(s[loc[1]:])
		if !isWordRune(before) && !isWordRune(after) {
			return s[loc[0]:loc[1]]
		}
	}
	return ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// firstText returns the first non-blank trimmed text among els.
func firstText(els []*etree.Element) string {
	for _, el := range els {
		if s := strings.TrimSpace(el.Text()); s != "" {
			return s
		}
	}
	return ""
}

func first(els []*etree.Element) *etree.Element {
	if len(els) == 0 {
		return nil
	}
	return els[0]
}
