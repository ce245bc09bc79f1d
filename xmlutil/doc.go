// Copyright 2018 Andrew Fort

// Package xmlutil offers read-only access to parsed SCL documents.
//
// Elements are looked up by local name only; namespace prefixes and
// default namespace declarations are ignored, so an IED element in the
// SCL namespace and an unqualified IED element are treated alike.
//
// Attribute lookups never fail: a missing attribute reads as the empty
// string.
package xmlutil
