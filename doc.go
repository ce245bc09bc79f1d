/*
Package scl loads IEC 61850 SCL/ICD documents into a linked type model
and projects it into display trees.

Loading resolves the flat, id-referenced DataTypeTemplates section
(EnumType, DAType, DOType, LNodeType) into a graph of linked types, then
binds each logical node instance of each IED to its LNodeType. The
result can be projected per device, or as a catalogue of every
LNodeType, into labelled trees suitable for any presentation layer.

Loading tolerates incomplete templates: references that do not resolve
are reported as diagnostics and rendered as unexpanded leaves. Only XML
that fails to parse is an error.

See the template, instance and tree sub-packages for the individual
stages, and report for output encoders.
*/
package scl
