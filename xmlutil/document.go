package xmlutil

import (
	"strings"

	"github.com/andaru/scl/sclerr"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// Document is a parsed, immutable XML document.
type Document struct {
	root *xmlquery.Node
}

// Parse parses text as an XML document.
//
// Syntax errors are returned as a *sclerr.Error tagged
// malformed-document, wrapped with a stack trace.
func Parse(text string) (*Document, error) {
	root, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.WithStack(sclerr.MalformedDocument(sclerr.WithMessage(err.Error())))
	}
	return &Document{root: root}, nil
}

// Root returns the document node. It has no attributes; use its
// Children or Descendants to reach the document element.
func (d *Document) Root() Element { return element{d.root} }

// First returns the first element in the document with the local
// name, or nil.
func (d *Document) First(name string) Element {
	if n := xmlquery.QuerySelector(d.root, descendantSelector(name)); n != nil {
		return element{n}
	}
	return nil
}

// All returns every element in the document with the local name, in
// document order.
func (d *Document) All(name string) []Element {
	return d.Root().Descendants(name)
}
