package tree

import (
	"bytes"
	"fmt"
)

// Kind is the category of the entity a Node displays.
type Kind int

const (
	KindDevice Kind = iota
	KindLogicalDevice
	KindLogicalNode
	KindNodeType
	KindDataObject
	KindSubDataObject
	KindDataAttribute
	KindBasicDataAttribute
	KindEnumValue
)

var kindNames = [...]string{
	KindDevice:             "IED",
	KindLogicalDevice:      "LD",
	KindLogicalNode:        "LN",
	KindNodeType:           "LNodeType",
	KindDataObject:         "DO",
	KindSubDataObject:      "SDO",
	KindDataAttribute:      "DA",
	KindBasicDataAttribute: "BDA",
	KindEnumValue:          "ENUM",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", b)
}

// Node is one entry of a display tree. Nodes are values; a projected
// tree shares nothing with the templates it was built from.
type Node struct {
	Label string `json:"label" yaml:"label" cbor:"label"`
	Kind  Kind   `json:"kind" yaml:"kind" cbor:"kind"`
	// Truncated marks a node whose children were omitted because its
	// type is already being expanded on the path to it, or because the
	// maximum depth was reached.
	Truncated bool   `json:"truncated,omitempty" yaml:"truncated,omitempty" cbor:"truncated,omitempty"`
	Children  []Node `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty"`
}

// Count returns the number of nodes in the tree rooted at n.
func (n Node) Count() int {
	c := 1
	for _, child := range n.Children {
		c += child.Count()
	}
	return c
}

// Walk calls fn for n and each of its descendants, depth first, with
// the depth relative to n. Returning false skips the node's children.
func (n Node) Walk(fn func(n Node, depth int) bool) { n.walk(fn, 0) }

func (n Node) walk(fn func(Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Count returns the total number of nodes in nodes and their subtrees.
func Count(nodes []Node) (c int) {
	for _, n := range nodes {
		c += n.Count()
	}
	return c
}
