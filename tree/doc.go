/*
Package tree projects linked SCL templates and instance bindings into a
tree of labelled display nodes.

Two entry points are offered: Devices (and Bindings) walk the instance
view IED, LDevice, LN; Catalogue walks every LNodeType directly. Below a
logical node the walk is the same for both:

	DO -> SDO (recursively) and DA -> BDA (recursively) -> ENUM values

SDOs of a DOType are visited before its DAs. Members whose type did not
resolve become leaves labelled with what was declared.

Template types may form cycles. A member whose type is already on the
path from the logical node is emitted as a leaf marked Truncated, as is
any member at the configured maximum depth, so every walk terminates and
produces the same tree for the same input.

Nodes carry no presentation markup; see package report for encoders.
*/
package tree
