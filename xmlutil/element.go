package xmlutil

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Element is an attribute-bearing XML element.
type Element interface {
	// Name returns the element's local name.
	Name() string
	// Attr returns the value of the named attribute, or "" if absent.
	Attr(name string) string
	// Text returns the element's text content with surrounding
	// whitespace removed.
	Text() string
	// Children returns the child elements having any of the given
	// local names, in document order.
	Children(names ...string) []Element
	// Child returns the first child element with the local name, or
	// nil.
	Child(name string) Element
	// Descendants returns all descendant elements with the local name,
	// in document order.
	Descendants(name string) []Element
}

type element struct{ n *xmlquery.Node }

var _ Element = element{}

func (e element) Name() string { return e.n.Data }

func (e element) Attr(name string) string { return e.n.SelectAttr(name) }

func (e element) Text() string { return strings.TrimSpace(e.n.InnerText()) }

func (e element) Children(names ...string) []Element {
	if len(names) == 0 {
		return nil
	}
	return wrap(xmlquery.QuerySelectorAll(e.n, childSelector(names)))
}

func (e element) Child(name string) Element {
	if n := xmlquery.QuerySelector(e.n, childSelector([]string{name})); n != nil {
		return element{n}
	}
	return nil
}

func (e element) Descendants(name string) []Element {
	return wrap(xmlquery.QuerySelectorAll(e.n, descendantSelector(name)))
}

func wrap(nodes []*xmlquery.Node) []Element {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, element{n})
	}
	return out
}
