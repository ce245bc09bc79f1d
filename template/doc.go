/*
Package template builds the linked type graph of an SCL
DataTypeTemplates section.

The section declares four kinds of type, each in its own id space:
EnumType, DAType, DOType and LNodeType. Types refer to each other by id,
in any declaration order, and DATypes and DOTypes may refer to
themselves or to each other in cycles.

Registries are built flat first and linked afterwards, so references
are resolved regardless of declaration order. Resolved references are
pointers into the owning registry; nothing is copied, which means a
cyclic type structure is represented as a cyclic pointer graph. Code
walking the graph (see package tree) must bound its recursion.

A reference naming an id missing from its registry never fails a
build. The member is kept with an absent resolved type, and is listed by
Templates.Unresolved.

All registries are immutable once Build returns and may be shared
between goroutines.
*/
package template
