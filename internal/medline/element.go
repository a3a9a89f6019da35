// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"errors"
	"io"
	"strings"

	"github.com/beevik/etree"
)

var (
	errNoRoot       = errors.New("no root element")
	errTrailingData = errors.New("content outside root element")
)

// decode reads a complete XML document and returns its root element. It
// fails on syntax errors, unclosed elements, an empty document, and any
// element or text besides the root at document level. A byte order mark
// counts as whitespace.
func decode(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}

	var root *etree.Element
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, errTrailingData
			}
			root = t
		case *etree.CharData:
			if strings.TrimSpace(strings.ReplaceAll(t.Data, "\ufeff", "")) != "" {
				return nil, errTrailingData
			}
		}
	}
	if root == nil {
		return nil, errNoRoot
	}
	return root, nil
}

// findBelow returns every match of path whose first step is an element
// strictly below e, ordered by the document position of that first step.
// It mirrors ElementTree's ".//A/B" lookup, which never matches e itself.
func findBelow(e *etree.Element, path string) []*etree.Element {
	first, rest, _ := strings.Cut(path, "/")
	var out []*etree.Element
	walk(e, func(d *etree.Element) {
		if d.Tag != first {
			return
		}
		if rest == "" {
			out = append(out, d)
			return
		}
		out = append(out, d.FindElements(rest)...)
	})
	return out
}

// walk visits every element below e in pre-order.
func walk(e *etree.Element, fn func(*etree.Element)) {
	for _, c := range e.ChildElements() {
		fn(c)
		walk(c, fn)
	}
}
